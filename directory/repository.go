package directory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ahinestrog/bookledger/sqlbuild"
	"github.com/ahinestrog/bookledger/store"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository { return &Repository{db: db} }

// Migrate crea las tablas si no existen. El cascade de phones depende de
// foreign_keys(ON) en la conexión (store.Open lo activa).
func (r *Repository) Migrate(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS clients(
  client_id  INTEGER PRIMARY KEY AUTOINCREMENT,
  first_name TEXT NOT NULL,
  last_name  TEXT NOT NULL,
  email      TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS phones(
  phone_id     INTEGER PRIMARY KEY AUTOINCREMENT,
  client_id    INTEGER NOT NULL REFERENCES clients(client_id) ON DELETE CASCADE,
  phone_number TEXT UNIQUE
);
CREATE INDEX IF NOT EXISTS idx_phones_client ON phones(client_id);
`
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

// CreateClient inserta el cliente y sus teléfonos en una transacción.
// Cualquier colisión (email o teléfono duplicado) revierte todo.
func (r *Repository) CreateClient(ctx context.Context, first, last, email string, phones []string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO clients(first_name,last_name,email) VALUES(?,?,?)`,
		first, last, email)
	if err != nil {
		return 0, store.Classify("create client", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := insertPhones(ctx, tx, id, phones); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, store.Classify("create client", err)
	}
	return id, nil
}

func insertPhones(ctx context.Context, tx *sql.Tx, clientID int64, phones []string) error {
	if len(phones) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO phones(client_id,phone_number) VALUES(?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, p := range phones {
		if _, err := stmt.ExecContext(ctx, clientID, p); err != nil {
			return store.Classify("insert phone", err)
		}
	}
	return nil
}

func (r *Repository) AddPhone(ctx context.Context, clientID int64, number string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO phones(client_id,phone_number) VALUES(?,?)`, clientID, number)
	if err != nil {
		return 0, store.Classify("add phone", err)
	}
	return res.LastInsertId()
}

// UpdateClient aplica un patch parcial. Un patch vacío es un no-op, no un
// error; un cliente inexistente es store.ErrNotFound.
func (r *Repository) UpdateClient(ctx context.Context, clientID int64, patch ClientPatch) error {
	if patch.empty() {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var assigns []sqlbuild.Assign
	if patch.FirstName != nil {
		assigns = append(assigns, sqlbuild.Set("first_name", *patch.FirstName))
	}
	if patch.LastName != nil {
		assigns = append(assigns, sqlbuild.Set("last_name", *patch.LastName))
	}
	if patch.Email != nil {
		assigns = append(assigns, sqlbuild.Set("email", *patch.Email))
	}

	if set, args := sqlbuild.BuildSet(assigns); set != "" {
		args = append(args, clientID)
		res, err := tx.ExecContext(ctx, `UPDATE clients SET `+set+` WHERE client_id = ?`, args...)
		if err != nil {
			return store.Classify("update client", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return store.ErrNotFound
		}
	} else {
		// solo cambia la lista de teléfonos: igual exigimos que el cliente exista
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM clients WHERE client_id = ?`, clientID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrNotFound
		}
		if err != nil {
			return err
		}
	}

	if patch.Phones != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM phones WHERE client_id = ?`, clientID); err != nil {
			return err
		}
		if err := insertPhones(ctx, tx, clientID, patch.Phones); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeletePhone borra las filas que coincidan; cero coincidencias no es error.
func (r *Repository) DeletePhone(ctx context.Context, clientID int64, number string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM phones WHERE client_id = ? AND phone_number = ?`, clientID, number)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteClient borra el cliente; el cascade elimina sus teléfonos.
// Devuelve cuántas filas se afectaron (0 si el id no existía).
func (r *Repository) DeleteClient(ctx context.Context, clientID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE client_id = ?`, clientID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// FindClients busca por cualquiera de los criterios dados (OR). El join con
// phones solo aporta cuando se busca por teléfono; DISTINCT evita duplicados
// por cliente con varios números.
func (r *Repository) FindClients(ctx context.Context, c FindCriteria) ([]Client, error) {
	var preds sqlbuild.Or
	if c.FirstName != "" {
		preds = append(preds, sqlbuild.Eq("c.first_name", c.FirstName))
	}
	if c.LastName != "" {
		preds = append(preds, sqlbuild.Eq("c.last_name", c.LastName))
	}
	if c.Email != "" {
		preds = append(preds, sqlbuild.Eq("c.email", c.Email))
	}
	if c.Phone != "" {
		preds = append(preds, sqlbuild.Eq("p.phone_number", c.Phone))
	}
	where, args := sqlbuild.Build(preds)
	if where == "" {
		return nil, store.ErrNoCriteria
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT c.client_id, c.first_name, c.last_name, c.email
		FROM clients c
		LEFT JOIN phones p ON p.client_id = c.client_id
		WHERE `+where+`
		ORDER BY c.client_id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Client
	for rows.Next() {
		var cl Client
		if err := rows.Scan(&cl.ID, &cl.FirstName, &cl.LastName, &cl.Email); err != nil {
			return nil, err
		}
		out = append(out, cl)
	}
	return out, rows.Err()
}

// ClientPhones lista los números del cliente en orden de inserción.
func (r *Repository) ClientPhones(ctx context.Context, clientID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT phone_number FROM phones WHERE client_id = ? ORDER BY phone_id`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
