package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/lite/internal/db"
	"github.com/dgraph-io/badger/v4"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestBadger opens an in-memory Badger instance closed at test end.
func NewTestBadger(t *testing.T) *badger.DB {
	t.Helper()
	bdb, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("failed to open in-memory badger: %v", err)
	}
	t.Cleanup(func() {
		bdb.Close()
	})
	return bdb
}
