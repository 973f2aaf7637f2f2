package session

import (
	"time"

	"github.com/Iron-Ham/tasklist/internal/filter"
	"github.com/Iron-Ham/tasklist/internal/task"
)

// Command is a user intent applied by Update.
type Command interface {
	command()
}

// Add creates a task at the top of the collection.
type Add struct {
	Text string
	Due  task.Date
}

// Toggle flips a task between pending and done. It cancels a pending
// deletion of the same task.
type Toggle struct {
	ID string
}

// RequestDelete tags a task for deletion and schedules its removal.
type RequestDelete struct {
	ID string
}

// FinalizeDelete removes a task tagged by RequestDelete, if Token is still
// the task's current token.
type FinalizeDelete struct {
	ID    string
	Token DeletionToken
}

// RequestClear asks to delete every task. It has no effect on an empty
// collection; otherwise it waits for ConfirmClear.
type RequestClear struct{}

// ConfirmClear answers a RequestClear.
type ConfirmClear struct {
	Yes bool
}

// StartEdit opens a task for editing. It cancels a pending deletion of the
// same task.
type StartEdit struct {
	ID string
}

// SaveEdit commits new text and due date and closes the editor. Blank text
// discards the change.
type SaveEdit struct {
	ID   string
	Text string
	Due  task.Date
}

// CancelEdit closes the editor without changes.
type CancelEdit struct{}

// SetFilter changes the visibility mode.
type SetFilter struct {
	Mode filter.Mode
}

// CycleFilter advances to the next visibility mode.
type CycleFilter struct{}

func (Add) command() {}
func (Toggle) command() {}
func (RequestDelete) command() {}
func (FinalizeDelete) command() {}
func (RequestClear) command() {}
func (ConfirmClear) command() {}
func (StartEdit) command() {}
func (SaveEdit) command() {}
func (CancelEdit) command() {}
func (SetFilter) command() {}
func (CycleFilter) command() {}

// Effect is work Update asks the caller to perform.
type Effect interface {
	effect()
}

// ScheduleDelete asks the caller to dispatch FinalizeDelete{ID, Token}
// after Delay.
type ScheduleDelete struct {
	ID    string
	Token DeletionToken
	Delay time.Duration
}

func (ScheduleDelete) effect() {}

// Result reports what a command did.
type Result struct {
	// Changed is true when the collection was modified and must be saved.
	Changed bool

	// Rejected is set when the command was refused, e.g. ErrEmptyText on
	// Add. The state is unchanged apart from closing an editor on SaveEdit.
	Rejected error

	// TaskID is the task the command acted on, when there is one. For Add
	// it is the new task's id.
	TaskID string

	Effects []Effect
}
