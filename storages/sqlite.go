package storages

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriver = "sqlite"

// OpenSQLite opens the database at path, creating it if missing. ":memory:"
// opens a private in-memory database.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// ":memory:" databases exist per connection
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}
