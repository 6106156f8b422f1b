package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by KV reads for absent keys.
	ErrNotFound = errors.New("not found")
	// ErrNoChange tells ProfileStore.Update to skip the write.
	ErrNoChange = errors.New("no change")
)

// KVTx reads and writes raw records. Values are opaque bytes; callers own
// the encoding.
type KVTx interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// KVStore is a durable key-value store. Get and Set on the store itself run
// in their own implicit transaction; WithinTx groups several calls so a
// read-modify-write is atomic.
type KVStore interface {
	KVTx
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx KVTx) error) error
}
