// Package session holds the in-memory state of one tasklist session and the
// typed commands that change it.
//
// [Update] is a pure function from (State, Command) to (State, Result): it
// never touches storage, the clock, or timers. [Session] wraps it, loads the
// collection at start, and saves after every command that reports
// Result.Changed. Timed behavior (the deferred delete) is expressed as an
// [Effect] the caller schedules and later answers with a FinalizeDelete
// command.
package session

import (
	"maps"
	"time"

	"github.com/Iron-Ham/tasklist/internal/filter"
	"github.com/Iron-Ham/tasklist/internal/render"
	"github.com/Iron-Ham/tasklist/internal/task"
)

// DefaultDeleteDelay is how long a deleted task stays visible, marked as
// removing, before it leaves the collection.
const DefaultDeleteDelay = 300 * time.Millisecond

// DeletionToken identifies one delete request. A FinalizeDelete carrying a
// token that is no longer current is ignored.
type DeletionToken uint64

// State is the complete session state.
type State struct {
	// Tasks is the collection, newest first.
	Tasks []task.Task

	// Filter is the current visibility mode. Never persisted.
	Filter filter.Mode

	// EditingID is the id of the task being edited, or "" when idle.
	EditingID string

	// ConfirmingClear is set between RequestClear and ConfirmClear.
	ConfirmingClear bool

	// PendingDeletes maps task ids tagged for deletion to their current
	// token.
	PendingDeletes map[string]DeletionToken

	// DeleteDelay is the delay attached to ScheduleDelete effects. Zero
	// deletes immediately.
	DeleteDelay time.Duration

	lastToken DeletionToken
}

// NewState returns a State over tasks with the given filter and delay.
func NewState(tasks []task.Task, mode filter.Mode, delay time.Duration) State {
	if !mode.Valid() {
		mode = filter.All
	}
	if delay < 0 {
		delay = 0
	}
	return State{
		Tasks:          task.Clone(tasks),
		Filter:         mode,
		PendingDeletes: map[string]DeletionToken{},
		DeleteDelay:    delay,
	}
}

// Editing reports whether a task is being edited.
func (s State) Editing() bool {
	return s.EditingID != ""
}

// IsRemoving reports whether the task with id is tagged for deletion.
func (s State) IsRemoving(id string) bool {
	_, ok := s.PendingDeletes[id]
	return ok
}

// Visible returns the tasks shown under the current filter.
func (s State) Visible() []task.Task {
	return filter.Apply(s.Tasks, s.Filter)
}

// RenderInput returns the renderer's view of s.
func (s State) RenderInput() render.Input {
	removing := make(map[string]bool, len(s.PendingDeletes))
	for id := range s.PendingDeletes {
		removing[id] = true
	}
	return render.Input{
		Tasks:     s.Tasks,
		Filter:    s.Filter,
		EditingID: s.EditingID,
		Removing:  removing,
	}
}

// withTasks returns a copy of s owning a fresh copy of the collection, safe
// to mutate in place.
func (s State) withTasks() State {
	s.Tasks = task.Clone(s.Tasks)
	return s
}

// withPending returns a copy of s owning a fresh PendingDeletes map.
func (s State) withPending() State {
	if s.PendingDeletes == nil {
		s.PendingDeletes = map[string]DeletionToken{}
	} else {
		s.PendingDeletes = maps.Clone(s.PendingDeletes)
	}
	return s
}

// cancelDelete drops any pending deletion of id.
func (s State) cancelDelete(id string) State {
	if !s.IsRemoving(id) {
		return s
	}
	s = s.withPending()
	delete(s.PendingDeletes, id)
	return s
}
