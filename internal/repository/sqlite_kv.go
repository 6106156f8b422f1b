package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lite/internal/db"
)

// SQLiteKVStore implements KVStore on the kv_store table.
type SQLiteKVStore struct {
	db  db.DBTX
	uow db.UnitOfWork
	now func() time.Time
}

// NewSQLiteKVStore creates a store whose transactions run through a
// SQLiteUnitOfWork on the same database.
func NewSQLiteKVStore(conn *sql.DB) *SQLiteKVStore {
	return NewSQLiteKVStoreWithUoW(conn, db.NewSQLiteUnitOfWork(conn))
}

// NewSQLiteKVStoreWithUoW lets callers supply the transaction boundary,
// which tests use to inject failures.
func NewSQLiteKVStoreWithUoW(conn db.DBTX, uow db.UnitOfWork) *SQLiteKVStore {
	return &SQLiteKVStore{db: conn, uow: uow, now: time.Now}
}

func (s *SQLiteKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	return sqliteKV{db: s.db, now: s.now}.Get(ctx, key)
}

func (s *SQLiteKVStore) Set(ctx context.Context, key string, value []byte) error {
	return sqliteKV{db: s.db, now: s.now}.Set(ctx, key, value)
}

func (s *SQLiteKVStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx KVTx) error) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, sqliteKV{db: tx, now: s.now})
	})
}

// Revision returns how many times the key has been overwritten after its
// first write.
func (s *SQLiteKVStore) Revision(ctx context.Context, key string) (int, error) {
	var rev int
	err := s.db.QueryRowContext(ctx, `SELECT revision FROM kv_store WHERE key = ?`, key).Scan(&rev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("kv %q: %w", key, ErrNotFound)
		}
		return 0, fmt.Errorf("reading revision: %w", err)
	}
	return rev, nil
}

// sqliteKV is bound to either the database or an open transaction.
type sqliteKV struct {
	db  db.DBTX
	now func() time.Time
}

func (k sqliteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := k.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("kv %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("reading kv %q: %w", key, err)
	}
	return value, nil
}

func (k sqliteKV) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_store (key, value, updated_at, revision) VALUES (?, ?, ?, 0)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at,
			revision = kv_store.revision + 1`
	_, err := k.db.ExecContext(ctx, query, key, value, k.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing kv %q: %w", key, err)
	}
	return nil
}
