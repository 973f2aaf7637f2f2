package session

import (
	"fmt"
	"time"

	"github.com/Iron-Ham/tasklist/internal/errors"
	"github.com/Iron-Ham/tasklist/internal/task"
)

// Update applies cmd to s and returns the new state. s is not modified; the
// returned state shares no mutable data with it. now stamps new tasks.
func Update(s State, cmd Command, now time.Time) (State, Result) {
	switch c := cmd.(type) {
	case Add:
		tasks, t, err := task.Add(s.Tasks, c.Text, c.Due, now)
		if err != nil {
			return s, Result{Rejected: err}
		}
		s.Tasks = tasks
		return s, Result{Changed: true, TaskID: t.ID}

	case Toggle:
		if task.Index(s.Tasks, c.ID) < 0 {
			return s, Result{Rejected: notFound(c.ID)}
		}
		s = s.withTasks().cancelDelete(c.ID)
		task.Toggle(s.Tasks, c.ID)
		return s, Result{Changed: true, TaskID: c.ID}

	case RequestDelete:
		if task.Index(s.Tasks, c.ID) < 0 {
			return s, Result{Rejected: notFound(c.ID)}
		}
		if s.DeleteDelay <= 0 {
			return remove(s, c.ID)
		}
		s = s.withPending()
		s.lastToken++
		s.PendingDeletes[c.ID] = s.lastToken
		return s, Result{
			TaskID:  c.ID,
			Effects: []Effect{ScheduleDelete{ID: c.ID, Token: s.lastToken, Delay: s.DeleteDelay}},
		}

	case FinalizeDelete:
		token, ok := s.PendingDeletes[c.ID]
		if !ok || token != c.Token {
			return s, Result{}
		}
		return remove(s, c.ID)

	case RequestClear:
		if len(s.Tasks) == 0 {
			return s, Result{}
		}
		s.ConfirmingClear = true
		return s, Result{}

	case ConfirmClear:
		if !s.ConfirmingClear {
			return s, Result{}
		}
		s.ConfirmingClear = false
		if !c.Yes {
			return s, Result{}
		}
		s.Tasks = []task.Task{}
		s.EditingID = ""
		s.PendingDeletes = map[string]DeletionToken{}
		return s, Result{Changed: true}

	case StartEdit:
		if task.Index(s.Tasks, c.ID) < 0 {
			return s, Result{Rejected: notFound(c.ID)}
		}
		s = s.cancelDelete(c.ID)
		s.EditingID = c.ID
		return s, Result{TaskID: c.ID}

	case SaveEdit:
		s.EditingID = ""
		if task.Index(s.Tasks, c.ID) < 0 {
			return s, Result{Rejected: notFound(c.ID)}
		}
		next := s.withTasks()
		if !task.Update(next.Tasks, c.ID, c.Text, c.Due) {
			return s, Result{Rejected: errors.ErrEmptyText, TaskID: c.ID}
		}
		return next, Result{Changed: true, TaskID: c.ID}

	case CancelEdit:
		s.EditingID = ""
		return s, Result{}

	case SetFilter:
		if !c.Mode.Valid() {
			return s, Result{Rejected: fmt.Errorf("unknown filter %q", c.Mode)}
		}
		s.Filter = c.Mode
		return s, Result{}

	case CycleFilter:
		s.Filter = s.Filter.Next()
		return s, Result{}
	}

	return s, Result{Rejected: fmt.Errorf("unsupported command %T", cmd)}
}

// remove drops id from the collection along with any pending deletion or
// open editor that refers to it.
func remove(s State, id string) (State, Result) {
	tasks, ok := task.Remove(s.Tasks, id)
	if !ok {
		return s, Result{}
	}
	s.Tasks = tasks
	s = s.cancelDelete(id)
	if s.EditingID == id {
		s.EditingID = ""
	}
	return s, Result{Changed: true, TaskID: id}
}

func notFound(id string) error {
	return errors.NewTaskError("no such task", errors.ErrTaskNotFound).WithTaskID(id)
}
