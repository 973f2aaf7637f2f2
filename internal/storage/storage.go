// Package storage provides the persistent key-value stores tasklist keeps
// its state in. A Store maps string keys to opaque byte values; the task
// package decides what the bytes mean.
//
// Three backends implement Store:
//   - FileStore: one file per key under a base directory, written atomically
//   - SQLiteStore: a single kv table in a SQLite database
//   - MemoryStore: process-local map, for tests and dry runs
package storage

import (
	"context"

	"github.com/Iron-Ham/tasklist/internal/errors"
)

// Backend names accepted by Open and the storage.backend config key.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.ErrNotFound

// Store is a persistent key-value store.
type Store interface {
	// Load returns the value stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the value stored under key in a single write.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key returns ErrNotFound.
	Delete(ctx context.Context, key string) error

	// Name identifies the backend in logs and errors.
	Name() string

	// Close releases resources held by the store.
	Close() error
}

// ValidBackends returns the list of supported backend names.
func ValidBackends() []string {
	return []string{BackendFile, BackendSQLite, BackendMemory}
}
