package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // driver 100% Go
)

// Open abre la base sqlite con foreign keys activas.
// Use ":memory:" como path para una base efímera (tests).
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(ON)&_pragma=busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// una sola conexión: el modelo es síncrono y :memory: no se comparte
	db.SetMaxOpenConns(1)
	return db, nil
}
