// Package kv provides the string key-value stores that back all persisted
// state. Values are opaque strings; encoding is the storage package's job.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written or
// has been deleted.
var ErrKeyNotFound = errors.New("kv: key not found")

// Store is a flat string key-value store.
// Implementations must be safe for concurrent use. There is no transaction
// spanning several keys: each Set is atomic on its own.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
