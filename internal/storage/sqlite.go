package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/Iron-Ham/tasklist/internal/errors"
)

// SQLiteFileName is the database file created under the storage path.
const SQLiteFileName = "tasklist.db"

const sqliteSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLiteStore is a Store backed by a single kv table.
type SQLiteStore struct {
	pool *sqlitex.Pool
	path string
}

// NewSQLiteStore opens (creating if needed) the database at path. The
// schema is applied on every new connection.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	pool, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		PoolSize:    2,
		PrepareConn: prepareConn,
	})
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("open %s", path), err).WithBackend(BackendSQLite)
	}
	return &SQLiteStore{pool: pool, path: path}, nil
}

// NewSQLiteStoreDir opens SQLiteFileName inside dir.
func NewSQLiteStoreDir(dir string) (*SQLiteStore, error) {
	return NewSQLiteStore(filepath.Join(dir, SQLiteFileName))
}

func prepareConn(conn *sqlite.Conn) error {
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	} {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if err := sqlitex.ExecuteTransient(conn, sqliteSchema, nil); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Name implements Store.
func (s *SQLiteStore) Name() string { return BackendSQLite }

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.path }

// Close closes every pooled connection.
func (s *SQLiteStore) Close() error {
	if err := s.pool.Close(); err != nil {
		return errors.NewStorageError("close", err).WithBackend(BackendSQLite)
	}
	return nil
}

// Load implements Store.
func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, errors.NewStorageError("take connection", err).WithBackend(BackendSQLite).WithKey(key)
	}
	defer s.pool.Put(conn)

	var (
		data  []byte
		found bool
	)
	err = sqlitex.Execute(conn, `SELECT value FROM kv WHERE key = ?`, &sqlitex.ExecOptions{
		Args: []any{key},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			data = make([]byte, stmt.ColumnLen(0))
			stmt.ColumnBytes(0, data)
			return nil
		},
	})
	if err != nil {
		return nil, errors.NewStorageError("load", err).WithBackend(BackendSQLite).WithKey(key)
	}
	if !found {
		return nil, ErrNotFound
	}
	return data, nil
}

// Save implements Store. The upsert is a single statement, so readers see
// either the old value or the new one.
func (s *SQLiteStore) Save(ctx context.Context, key string, data []byte) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return errors.NewStorageError("take connection", err).WithBackend(BackendSQLite).WithKey(key)
	}
	defer s.pool.Put(conn)

	if data == nil {
		data = []byte{}
	}
	err = sqlitex.Execute(conn,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		&sqlitex.ExecOptions{Args: []any{key, data}})
	if err != nil {
		return errors.NewStorageError("save", err).WithBackend(BackendSQLite).WithKey(key)
	}
	return nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return errors.NewStorageError("take connection", err).WithBackend(BackendSQLite).WithKey(key)
	}
	defer s.pool.Put(conn)

	if err := sqlitex.Execute(conn, `DELETE FROM kv WHERE key = ?`, &sqlitex.ExecOptions{
		Args: []any{key},
	}); err != nil {
		return errors.NewStorageError("delete", err).WithBackend(BackendSQLite).WithKey(key)
	}
	if conn.Changes() == 0 {
		return ErrNotFound
	}
	return nil
}
