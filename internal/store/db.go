// Package store keeps the history of generated ID tables in sqlite so a
// regeneration that re-values an existing entry can be caught.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"embed"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var sqlFiles embed.FS

var (
	db       *sql.DB
	dbErr    error
	dbCreate sync.Once
)

// DefaultPath is the database location when none is configured.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "akid", "akid.sqlite")
}

// GetDB opens the database at path once per process, creating it if needed.
// Later calls return the same handle (or error) whatever path they pass.
func GetDB(path string) (*sql.DB, error) {
	dbCreate.Do(func() {
		db, dbErr = Open(path)
	})
	return db, dbErr
}

// Open opens the sqlite database at path, creating the file and tables if
// needed.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("error creating db directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging db: %w", err)
	}

	schema, _ := sqlFiles.ReadFile("schema.sql")
	if _, err := db.Exec(string(schema)); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}
	return db, nil
}
