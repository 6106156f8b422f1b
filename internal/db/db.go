package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// busyTimeoutMS is how long a connection waits on a lock held by another
// lite process before failing with SQLITE_BUSY.
const busyTimeoutMS = 5000

// OpenDB opens the SQLite database at path, creating its directory, and runs
// migrations.
//
// File databases use WAL, a busy timeout and BEGIN IMMEDIATE transactions,
// set through the DSN so they apply to every pooled connection. Profile
// updates read then write in one transaction, so the write lock is taken at
// BEGIN.
func OpenDB(path string) (*sql.DB, error) {
	if path == MemoryPath {
		return openMemory()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_txlock=immediate",
		path, busyTimeoutMS)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s: %w", path, err)
	}
	return finishOpen(db)
}

// openMemory uses a single connection, since each connection to :memory: is
// a separate database.
func openMemory() (*sql.DB, error) {
	db, err := sql.Open("sqlite", MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return finishOpen(db)
}

func finishOpen(db *sql.DB) (*sql.DB, error) {
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}
