package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/Iron-Ham/tasklist/internal/errors"
)

// FileExt is appended to every key to form its file name.
const FileExt = ".json"

// FileStore is a Store that keeps each key in its own file under a base
// directory. Writes go to a temp file in the same directory and are renamed
// into place, so a crash mid-write never leaves a truncated value behind.
type FileStore struct {
	fs      afero.Fs
	baseDir string
	mu      sync.RWMutex
}

// NewFileStore creates a FileStore rooted at baseDir on the OS filesystem.
// The directory is created if it doesn't exist.
func NewFileStore(baseDir string) (*FileStore, error) {
	return NewFileStoreFs(afero.NewOsFs(), baseDir)
}

// NewFileStoreFs creates a FileStore on an arbitrary afero filesystem.
// Tests pass afero.NewMemMapFs().
func NewFileStoreFs(fsys afero.Fs, baseDir string) (*FileStore, error) {
	if err := fsys.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.NewStorageError("create store directory", err).WithBackend(BackendFile)
	}
	return &FileStore{fs: fsys, baseDir: baseDir}, nil
}

// Name implements Store.
func (s *FileStore) Name() string { return BackendFile }

// Close implements Store. FileStore holds no open handles.
func (s *FileStore) Close() error { return nil }

// Path returns the file path backing key.
func (s *FileStore) Path(key string) string {
	return s.keyToPath(key)
}

// Save persists data under key using an atomic write.
func (s *FileStore) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.keyToPath(key)
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("create directory", err).WithBackend(BackendFile).WithKey(key)
	}
	if err := s.atomicWriteFile(path, data, 0644); err != nil {
		return errors.NewStorageError("save", err).WithBackend(BackendFile).WithKey(key)
	}
	return nil
}

// Load retrieves data for key.
func (s *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := afero.ReadFile(s.fs, s.keyToPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.NewStorageError("load", err).WithBackend(BackendFile).WithKey(key)
	}
	return data, nil
}

// Delete removes the file backing key.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.keyToPath(key)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return errors.NewStorageError("delete", err).WithBackend(BackendFile).WithKey(key)
	}
	return nil
}

// keyToPath converts a key to a filesystem path. "/" in keys becomes a
// directory separator; ".." segments are dropped so a key can't escape the
// base directory.
func (s *FileStore) keyToPath(key string) string {
	parts := strings.Split(key, "/")
	clean := parts[:0]
	for _, p := range parts {
		if p == "" || p == "." || p == ".." {
			continue
		}
		clean = append(clean, p)
	}
	return filepath.Join(s.baseDir, filepath.Join(clean...)+FileExt)
}

// atomicWriteFile writes data to a temp file in the target directory and
// renames it over path.
func (s *FileStore) atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpFile, err := afero.TempFile(s.fs, filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = s.fs.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := s.fs.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := s.fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
