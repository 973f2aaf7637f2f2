package filter

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Iron-Ham/tasklist/internal/task"
)

// Mode is a visibility filter over the task collection.
type Mode string

const (
	All     Mode = "all"
	Pending Mode = "pending"
	Done    Mode = "done"
)

// Option describes a mode for display in help text and the filter bar.
type Option struct {
	Mode     Mode
	Label    string // Display label (e.g., "Pending")
	Shortcut string // Keyboard shortcut (e.g., "2")
}

// Options is the set of modes in cycle order.
var Options = []Option{
	{Mode: All, Label: "All", Shortcut: "1"},
	{Mode: Pending, Label: "Pending", Shortcut: "2"},
	{Mode: Done, Label: "Done", Shortcut: "3"},
}

// Modes returns the valid modes in cycle order.
func Modes() []Mode {
	modes := make([]Mode, len(Options))
	for i, o := range Options {
		modes[i] = o.Mode
	}
	return modes
}

// ParseMode parses a mode name, case-insensitively. The empty string is All.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return All, nil
	}
	for _, o := range Options {
		if string(o.Mode) == s {
			return o.Mode, nil
		}
	}
	return "", fmt.Errorf("invalid filter %q (want one of: all, pending, done)", s)
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	for _, o := range Options {
		if o.Mode == m {
			return true
		}
	}
	return false
}

// Label returns the display label for m.
func (m Mode) Label() string {
	for _, o := range Options {
		if o.Mode == m {
			return o.Label
		}
	}
	return string(m)
}

// Next returns the mode after m in cycle order. Unknown modes cycle to All.
func (m Mode) Next() Mode {
	for i, o := range Options {
		if o.Mode == m {
			return Options[(i+1)%len(Options)].Mode
		}
	}
	return All
}

// Matches reports whether t is visible under m.
func (m Mode) Matches(t task.Task) bool {
	switch m {
	case Pending:
		return !t.Done
	case Done:
		return t.Done
	default:
		return true
	}
}

// Apply returns the tasks visible under mode, in collection order. The
// input slice is never modified. All returns a copy of tasks.
func Apply(tasks []task.Task, mode Mode) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if mode.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Flag is a pflag.Value that parses into a Mode.
type Flag struct {
	mode *Mode
}

var _ pflag.Value = (*Flag)(nil)

// NewFlag returns a Flag writing to mode.
func NewFlag(mode *Mode) *Flag {
	return &Flag{mode: mode}
}

func (f *Flag) String() string {
	if f.mode == nil {
		return string(All)
	}
	return string(*f.mode)
}

func (f *Flag) Set(s string) error {
	m, err := ParseMode(s)
	if err != nil {
		return err
	}
	*f.mode = m
	return nil
}

func (f *Flag) Type() string { return "filter" }
