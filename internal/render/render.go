// Package render turns session state into row descriptors: what each visible
// task shows, which actions it offers, whether it is overdue, and the
// summary line. It has no terminal dependencies; the TUI and the list
// command both draw from the same View.
package render

import (
	"fmt"

	"github.com/Iron-Ham/tasklist/internal/filter"
	"github.com/Iron-Ham/tasklist/internal/task"
)

// RowKind distinguishes a read-only row from the row being edited.
type RowKind int

const (
	KindDisplay RowKind = iota
	KindEdit
)

// ActionKind identifies a per-row action.
type ActionKind string

const (
	ActionToggle ActionKind = "toggle"
	ActionEdit   ActionKind = "edit"
	ActionDelete ActionKind = "delete"
	ActionSave   ActionKind = "save"
	ActionCancel ActionKind = "cancel"
)

// Badge labels.
const (
	BadgeDone    = "Done"
	BadgePending = "Pending"
)

// NoDate is the label shown for a task without a due date.
const NoDate = "-"

// Action is one control offered on a row.
type Action struct {
	Kind  ActionKind
	Label string
	Hint  string
}

// Row describes one visible task.
type Row struct {
	ID   string
	Kind RowKind

	// Display fields.
	Text     string
	Done     bool
	DueLabel string
	Overdue  bool
	Removing bool

	// Edit fields, prefilled from the task.
	EditText string
	EditDate string

	Badge   string
	Actions []Action
}

// Stats summarizes the whole collection regardless of filter.
type Stats struct {
	Completed int
	Total     int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d / %d completed", s.Completed, s.Total)
}

// View is everything needed to draw the task table.
type View struct {
	Rows   []Row
	Empty  bool
	Stats  Stats
	Filter filter.Mode
}

// Input is the state a View is built from. Tasks is the full, unfiltered
// collection and is not modified.
type Input struct {
	Tasks     []task.Task
	Filter    filter.Mode
	EditingID string
	Removing  map[string]bool
}

// Options controls presentation details that come from configuration.
type Options struct {
	Locale Locale
}

// Build derives the View for in at the calendar date today.
func Build(in Input, today task.Date, opts Options) View {
	visible := filter.Apply(in.Tasks, in.Filter)

	rows := make([]Row, 0, len(visible))
	for _, t := range visible {
		if in.EditingID != "" && t.ID == in.EditingID {
			rows = append(rows, editRow(t))
			continue
		}
		rows = append(rows, displayRow(t, today, opts, in.Removing[t.ID]))
	}

	return View{
		Rows:   rows,
		Empty:  len(visible) == 0,
		Stats:  ComputeStats(in.Tasks),
		Filter: in.Filter,
	}
}

// ComputeStats counts completed and total tasks.
func ComputeStats(tasks []task.Task) Stats {
	return Stats{Completed: task.CountDone(tasks), Total: len(tasks)}
}

// IsOverdue reports whether t is still pending and was due before today.
// A task due today is not overdue.
func IsOverdue(t task.Task, today task.Date) bool {
	return !t.Done && t.HasDue() && t.Due.Before(today)
}

// BadgeFor returns the status badge label for t.
func BadgeFor(t task.Task) string {
	if t.Done {
		return BadgeDone
	}
	return BadgePending
}

func displayRow(t task.Task, today task.Date, opts Options, removing bool) Row {
	toggle := Action{Kind: ActionToggle, Label: "✓", Hint: "Mark done"}
	if t.Done {
		toggle = Action{Kind: ActionToggle, Label: "↩", Hint: "Mark pending"}
	}
	return Row{
		ID:       t.ID,
		Kind:     KindDisplay,
		Text:     t.Text,
		Done:     t.Done,
		DueLabel: FormatDate(t.Due, opts.Locale),
		Overdue:  IsOverdue(t, today),
		Removing: removing,
		Badge:    BadgeFor(t),
		Actions: []Action{
			toggle,
			{Kind: ActionEdit, Label: "✎", Hint: "Edit"},
			{Kind: ActionDelete, Label: "✕", Hint: "Delete"},
		},
	}
}

func editRow(t task.Task) Row {
	return Row{
		ID:       t.ID,
		Kind:     KindEdit,
		Text:     t.Text,
		Done:     t.Done,
		EditText: t.Text,
		EditDate: t.Due.String(),
		Badge:    BadgeFor(t),
		Actions: []Action{
			{Kind: ActionSave, Label: "Save", Hint: "Save"},
			{Kind: ActionCancel, Label: "Cancel", Hint: "Cancel"},
		},
	}
}
