package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerKVStore implements KVStore on an embedded Badger database.
type BadgerKVStore struct {
	db *badger.DB
}

func NewBadgerKVStore(db *badger.DB) *BadgerKVStore {
	return &BadgerKVStore{db: db}
}

// OpenBadger opens (or creates) a Badger directory with Badger's own logging
// silenced.
func OpenBadger(dir string) (*badger.DB, error) {
	bdb, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("opening badger at %s: %w", dir, err)
	}
	return bdb, nil
}

func (s *BadgerKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		value, err = badgerKV{txn: txn}.Get(ctx, key)
		return err
	})
	return value, err
}

func (s *BadgerKVStore) Set(ctx context.Context, key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return badgerKV{txn: txn}.Set(ctx, key, value)
	})
}

// maxConflictRetries bounds how often WithinTx re-runs fn after Badger
// reports a write conflict with a concurrent transaction.
const maxConflictRetries = 10

func (s *BadgerKVStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx KVTx) error) error {
	var err error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = s.db.Update(func(txn *badger.Txn) error {
			return fn(ctx, badgerKV{txn: txn})
		})
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("badger transaction: %w", err)
}

type badgerKV struct {
	txn *badger.Txn
}

func (k badgerKV) Get(_ context.Context, key string) ([]byte, error) {
	item, err := k.txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("kv %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading kv %q: %w", key, err)
	}
	value, err := item.ValueCopy(nil)
	if err != nil {
		return nil, fmt.Errorf("copying kv %q: %w", key, err)
	}
	return value, nil
}

func (k badgerKV) Set(_ context.Context, key string, value []byte) error {
	if err := k.txn.Set([]byte(key), value); err != nil {
		return fmt.Errorf("writing kv %q: %w", key, err)
	}
	return nil
}
