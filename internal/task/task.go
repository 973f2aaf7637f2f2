// Package task defines the Task entity, the operations that mutate an
// ordered task collection, and the Repository that loads and saves the
// collection through a storage.Store.
package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Iron-Ham/tasklist/internal/errors"
)

// CreatedAtLayout is the ISO 8601 form createdAt is written in (UTC,
// millisecond precision, "Z" suffix).
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Task is a single to-do item.
type Task struct {
	ID        string
	Text      string
	Due       Date
	Done      bool
	CreatedAt time.Time
}

// record is the persisted shape of a Task.
type record struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"createdAt"`
}

// New builds a pending task with a fresh id. text is trimmed; an empty
// result is rejected with ErrEmptyText.
func New(text string, due Date, now time.Time) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, errors.ErrEmptyText
	}
	return Task{
		ID:        uuid.NewString(),
		Text:      text,
		Due:       due,
		Done:      false,
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}, nil
}

// HasDue reports whether the task has a due date.
func (t Task) HasDue() bool {
	return !t.Due.IsZero()
}

// MarshalJSON writes the persisted layout.
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{
		ID:        t.ID,
		Text:      t.Text,
		Date:      t.Due.String(),
		Done:      t.Done,
		CreatedAt: t.CreatedAt.UTC().Format(CreatedAtLayout),
	})
}

// UnmarshalJSON reads the persisted layout. A record without an id, with
// blank text, or with an unparseable date is an error; an unparseable
// createdAt is tolerated and left zero.
func (t *Task) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("task record has no id")
	}
	text := strings.TrimSpace(r.Text)
	if text == "" {
		return fmt.Errorf("task %s: %w", r.ID, errors.ErrEmptyText)
	}
	due, err := ParseDate(r.Date)
	if err != nil {
		return fmt.Errorf("task %s: %w", r.ID, err)
	}

	var created time.Time
	if r.CreatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, r.CreatedAt); err == nil {
			created = parsed.UTC()
		}
	}

	*t = Task{
		ID:        r.ID,
		Text:      text,
		Due:       due,
		Done:      r.Done,
		CreatedAt: created,
	}
	return nil
}
