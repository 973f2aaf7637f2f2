package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/Iron-Ham/tasklist/internal/config"
	"github.com/Iron-Ham/tasklist/internal/filter"
	"github.com/Iron-Ham/tasklist/internal/logging"
	"github.com/Iron-Ham/tasklist/internal/render"
	"github.com/Iron-Ham/tasklist/internal/session"
	"github.com/Iron-Ham/tasklist/internal/storage"
	"github.com/Iron-Ham/tasklist/internal/task"
)

// appEnv is everything a command needs: the loaded config, the open store,
// the logger, the data directory lock, and a session over the stored
// collection.
type appEnv struct {
	cfg     *config.Config
	store   storage.Store
	logger  *logging.Logger
	lock    *session.Lock
	session *session.Session
}

// openEnv loads the configuration, opens the configured store, takes the
// data directory lock and loads the collection into a new session. opts are
// applied after the options derived from the configuration.
func openEnv(ctx context.Context, opts ...session.Option) (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	dataDir := cfg.Storage.ResolvePath()

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(dataDir, cfg.Logging.Level)
		if err != nil {
			return nil, err
		}
	}

	store, err := storage.Open(cfg.Storage.Backend, dataDir)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	// Every session writes the whole collection back, so two processes on
	// the same store would overwrite each other's changes.
	lock, err := lockDataDir(store, dataDir, logger)
	if err != nil {
		_ = store.Close()
		_ = logger.Close()
		return nil, err
	}

	mode, err := filter.ParseMode(cfg.TUI.DefaultFilter)
	if err != nil {
		mode = filter.All
	}

	base := []session.Option{
		session.WithLogger(logger),
		session.WithFilter(mode),
		session.WithDeleteDelay(cfg.TUI.DeleteDelay()),
	}
	sess := session.New(task.NewRepository(store, cfg.Storage.Key, logger), append(base, opts...)...)
	sess.Open(ctx)

	logger.Debug("environment opened", "backend", store.Name(), "data_dir", dataDir)
	return &appEnv{cfg: cfg, store: store, logger: logger, lock: lock, session: sess}, nil
}

// lockDataDir takes the lock on dataDir. The memory backend shares nothing
// between processes and is not locked.
func lockDataDir(store storage.Store, dataDir string, logger *logging.Logger) (*session.Lock, error) {
	if store.Name() == storage.BackendMemory {
		return nil, nil
	}
	lock, err := session.AcquireLock(dataDir, logger)
	if errors.Is(err, session.ErrLocked) {
		return nil, fmt.Errorf("%w (quit the interactive list first)", err)
	}
	return lock, err
}

// locale returns the configured display locale, falling back to English.
func (e *appEnv) locale() render.Locale {
	l, err := render.ParseLocale(e.cfg.Display.Locale)
	if err != nil {
		return render.LocaleEnglish
	}
	return l
}

// Close releases the store, the lock and the log file.
func (e *appEnv) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("failed to close store", "error", err)
	}
	if err := e.lock.Release(); err != nil {
		e.logger.Warn("failed to release lock", "error", err)
	}
	_ = e.logger.Close()
}
