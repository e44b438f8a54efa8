package ledger

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahinestrog/bookledger/store"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository { return &Repository{db: db} }

func (r *Repository) Migrate(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS publisher(
  id   INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS book(
  id           INTEGER PRIMARY KEY AUTOINCREMENT,
  title        TEXT NOT NULL,
  id_publisher INTEGER NOT NULL REFERENCES publisher(id)
);
CREATE TABLE IF NOT EXISTS shop(
  id   INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS stock(
  id      INTEGER PRIMARY KEY AUTOINCREMENT,
  id_book INTEGER NOT NULL REFERENCES book(id),
  id_shop INTEGER NOT NULL REFERENCES shop(id),
  count   INTEGER NOT NULL CHECK(count >= 0)
);
CREATE TABLE IF NOT EXISTS sale(
  id        INTEGER PRIMARY KEY AUTOINCREMENT,
  price     NUMERIC NOT NULL,
  date_sale TIMESTAMP NOT NULL,
  id_stock  INTEGER NOT NULL REFERENCES stock(id),
  count     INTEGER NOT NULL CHECK(count >= 1)
);
CREATE INDEX IF NOT EXISTS idx_book_publisher ON book(id_publisher);
CREATE INDEX IF NOT EXISTS idx_stock_book ON stock(id_book);
CREATE INDEX IF NOT EXISTS idx_sale_stock ON sale(id_stock);
`
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *Repository) CreatePublisher(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO publisher(name) VALUES(?)`, name)
	if err != nil {
		return 0, store.Classify("create publisher", err)
	}
	return res.LastInsertId()
}

func (r *Repository) CreateBook(ctx context.Context, title string, publisherID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO book(title,id_publisher) VALUES(?,?)`, title, publisherID)
	if err != nil {
		return 0, store.Classify("create book", err)
	}
	return res.LastInsertId()
}

func (r *Repository) CreateShop(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO shop(name) VALUES(?)`, name)
	if err != nil {
		return 0, store.Classify("create shop", err)
	}
	return res.LastInsertId()
}

func (r *Repository) CreateStock(ctx context.Context, bookID, shopID, count int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO stock(id_book,id_shop,count) VALUES(?,?,?)`, bookID, shopID, count)
	if err != nil {
		return 0, store.Classify("create stock", err)
	}
	return res.LastInsertId()
}

// CreateSale registra una venta. date nil usa el momento de inserción; la
// fecha no se modifica después. La venta no descuenta stock.count (misma
// semántica que el esquema original).
func (r *Repository) CreateSale(ctx context.Context, stockID int64, price decimal.Decimal, count int64, date *time.Time) (int64, error) {
	when := time.Now().UTC()
	if date != nil {
		when = *date
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sale(price,date_sale,id_stock,count) VALUES(?,?,?,?)`,
		price, when, stockID, count)
	if err != nil {
		return 0, store.Classify("create sale", err)
	}
	return res.LastInsertId()
}
