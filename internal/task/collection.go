package task

import (
	"slices"
	"strings"
	"time"

	"github.com/Iron-Ham/tasklist/internal/errors"
)

// Add prepends a new task built from text and due. The returned slice is a
// new slice; tasks is not modified. Blank text returns tasks unchanged and
// ErrEmptyText.
func Add(tasks []Task, text string, due Date, now time.Time) ([]Task, Task, error) {
	t, err := New(text, due, now)
	if err != nil {
		return tasks, Task{}, err
	}
	out := make([]Task, 0, len(tasks)+1)
	out = append(out, t)
	out = append(out, tasks...)
	return out, t, nil
}

// Index returns the position of the task with id, or -1.
func Index(tasks []Task, id string) int {
	return slices.IndexFunc(tasks, func(t Task) bool { return t.ID == id })
}

// Find returns the task with id.
func Find(tasks []Task, id string) (Task, bool) {
	i := Index(tasks, id)
	if i < 0 {
		return Task{}, false
	}
	return tasks[i], true
}

// Toggle flips Done on the task with id in place. Returns false if no task
// has that id.
func Toggle(tasks []Task, id string) bool {
	i := Index(tasks, id)
	if i < 0 {
		return false
	}
	tasks[i].Done = !tasks[i].Done
	return true
}

// Remove returns tasks without the task with id. The second result is false
// (and tasks is returned as is) when no task has that id.
func Remove(tasks []Task, id string) ([]Task, bool) {
	i := Index(tasks, id)
	if i < 0 {
		return tasks, false
	}
	out := make([]Task, 0, len(tasks)-1)
	out = append(out, tasks[:i]...)
	out = append(out, tasks[i+1:]...)
	return out, true
}

// Update overwrites Text and Due of the task with id in place. Blank text
// leaves the task untouched. Returns true only when the task was changed.
func Update(tasks []Task, id, text string, due Date) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	i := Index(tasks, id)
	if i < 0 {
		return false
	}
	tasks[i].Text = text
	tasks[i].Due = due
	return true
}

// CountDone returns the number of completed tasks.
func CountDone(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Done {
			n++
		}
	}
	return n
}

// Clone returns a copy of tasks that shares no backing array.
func Clone(tasks []Task) []Task {
	if tasks == nil {
		return []Task{}
	}
	return slices.Clone(tasks)
}

// ResolveID finds the task whose id equals ref or starts with ref. It is
// used by the CLI, where typing a full UUID is impractical.
func ResolveID(tasks []Task, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.NewTaskError("resolve id", errors.ErrTaskNotFound)
	}
	if i := Index(tasks, ref); i >= 0 {
		return ref, nil
	}

	var match string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			if match != "" {
				return "", errors.NewTaskError("resolve id", errors.ErrAmbiguousID).WithTaskID(ref)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", errors.NewTaskError("resolve id", errors.ErrTaskNotFound).WithTaskID(ref)
	}
	return match, nil
}
