package storage

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/Iron-Ham/tasklist/internal/errors"
)

// Open returns the Store for backend rooted at path. path is a directory
// for both persistent backends and is ignored for the memory backend.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(path)
	case BackendSQLite:
		if err := ensureDir(path); err != nil {
			return nil, err
		}
		return NewSQLiteStoreDir(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownBackend, backend)
	}
}

func ensureDir(dir string) error {
	if err := afero.NewOsFs().MkdirAll(dir, 0755); err != nil {
		return errors.NewStorageError("create store directory", err).WithBackend(BackendSQLite)
	}
	return nil
}
