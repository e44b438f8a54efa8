package store

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound: la fila objetivo no existe y la operación la requiere.
	ErrNotFound = errors.New("row not found")
	// ErrNoCriteria: búsqueda sin ningún criterio; nunca devolvemos la tabla completa.
	ErrNoCriteria = errors.New("no search criteria supplied")
	// ErrNoData: el join del reporte no produjo filas (distinto de un error de ejecución).
	ErrNoData = errors.New("no data for the given filter")
)

type ConstraintKind int

const (
	ConstraintUnique ConstraintKind = iota + 1
	ConstraintForeignKey
	ConstraintCheck
	ConstraintOther
)

func (k ConstraintKind) String() string {
	switch k {
	case ConstraintUnique:
		return "unique"
	case ConstraintForeignKey:
		return "foreign key"
	case ConstraintCheck:
		return "check"
	default:
		return "constraint"
	}
}

// ConstraintError envuelve una violación de restricción del motor.
// La transacción que la provocó ya fue revertida; nunca se reintenta.
type ConstraintError struct {
	Kind ConstraintKind
	Op   string
	Err  error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s violation: %v", e.Op, e.Kind, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// Classify mapea errores del driver a errores tipados; cualquier otro error
// pasa sin tocar (QueryFailure para el llamador).
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	if se.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return err
	}
	kind := ConstraintOther
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		kind = ConstraintUnique
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		kind = ConstraintForeignKey
	case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		kind = ConstraintCheck
	}
	return &ConstraintError{Kind: kind, Op: op, Err: err}
}

// IsConstraint reporta si err es una violación del tipo dado.
func IsConstraint(err error, kind ConstraintKind) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Kind == kind
}
