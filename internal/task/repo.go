package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/Iron-Ham/tasklist/internal/errors"
	"github.com/Iron-Ham/tasklist/internal/logging"
	"github.com/Iron-Ham/tasklist/internal/storage"
)

// DefaultKey is the storage key the collection is kept under.
const DefaultKey = "tasks"

// Repository loads and saves the whole task collection as one stored value.
type Repository struct {
	store  storage.Store
	key    string
	logger *logging.Logger
}

// NewRepository returns a Repository over store. An empty key means
// DefaultKey; a nil logger discards output.
func NewRepository(store storage.Store, key string, logger *logging.Logger) *Repository {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Repository{
		store:  store,
		key:    key,
		logger: logger.WithComponent("task-store"),
	}
}

// Key returns the storage key.
func (r *Repository) Key() string { return r.key }

// Load returns the stored collection. It never fails: a missing key, a read
// error, or an undecodable value all yield an empty collection. Records
// that decode but are invalid are skipped; the rest load.
func (r *Repository) Load(ctx context.Context) []Task {
	data, err := r.store.Load(ctx, r.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.logger.Warn("load failed, starting empty", "backend", r.store.Name(), "error", err)
		}
		return []Task{}
	}

	tasks, err := Decode(data, func(i int, err error) {
		r.logger.Warn("dropping invalid task record", "index", i, "error", err)
	})
	if err != nil {
		r.logger.Warn("stored tasks unreadable, starting empty", "backend", r.store.Name(), "error", err)
		return []Task{}
	}
	r.logger.Debug("loaded tasks", "count", len(tasks))
	return tasks
}

// Save writes the full collection in a single store write.
func (r *Repository) Save(ctx context.Context, tasks []Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return errors.NewStorageError("encode tasks", err).WithBackend(r.store.Name()).WithKey(r.key)
	}
	if err := r.store.Save(ctx, r.key, data); err != nil {
		r.logger.Error("save failed", "backend", r.store.Name(), "error", err)
		return err
	}
	r.logger.Debug("saved tasks", "count", len(tasks))
	return nil
}

// Encode serializes tasks in the persisted layout. A nil slice encodes as
// an empty array.
func Encode(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	return json.Marshal(tasks)
}

// Decode parses a persisted collection. Comments and trailing commas are
// accepted. onDrop, if non-nil, is called for each record that is skipped.
// An error is returned only when data is not a JSON array at all.
func Decode(data []byte, onDrop func(index int, err error)) ([]Task, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStoreCorrupted, err)
	}

	tasks := make([]Task, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, msg := range raw {
		var t Task
		err := json.Unmarshal(msg, &t)
		if err == nil && t.ID == "" {
			err = fmt.Errorf("task record is empty")
		}
		if err != nil {
			if onDrop != nil {
				onDrop(i, err)
			}
			continue
		}
		if seen[t.ID] {
			if onDrop != nil {
				onDrop(i, fmt.Errorf("duplicate id %s", t.ID))
			}
			continue
		}
		seen[t.ID] = true
		tasks = append(tasks, t)
	}
	return tasks, nil
}
