package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/tasklist/internal/filter"
	"github.com/Iron-Ham/tasklist/internal/render"
	"github.com/Iron-Ham/tasklist/internal/session"
	"github.com/Iron-Ham/tasklist/internal/task"
)

func TestView_OverdueAndBadges(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := context.Background()
	if _, err := env.sess.Dispatch(ctx, session.Add{Text: "late", Due: task.NewDate(2026, 10, 1)}); err != nil {
		t.Fatal(err)
	}
	if _, err := env.sess.Dispatch(ctx, session.Add{Text: "today", Due: task.NewDate(2026, 10, 16)}); err != nil {
		t.Fatal(err)
	}

	view := env.model().View()
	if !strings.Contains(view, overduePrefix+"01 Oct 2026") {
		t.Errorf("overdue task not flagged:\n%s", view)
	}
	if strings.Contains(view, overduePrefix+"16 Oct 2026") {
		t.Errorf("task due today flagged as overdue:\n%s", view)
	}
	if !strings.Contains(view, render.BadgePending) {
		t.Errorf("view missing pending badge:\n%s", view)
	}
}

func TestView_RowsFitWidth(t *testing.T) {
	env := newTestEnv(t, 0, strings.Repeat("very long task text ", 20))
	m := env.model()

	for _, line := range strings.Split(m.View(), "\n") {
		if w := lipgloss.Width(line); w > 100 {
			t.Errorf("line width %d exceeds terminal width: %q", w, line)
		}
	}
}

func TestView_EmptyMessages(t *testing.T) {
	tests := []struct {
		mode  filter.Mode
		total int
		want  string
	}{
		{filter.All, 0, "No tasks yet"},
		{filter.Pending, 0, "No tasks yet"},
		{filter.Pending, 3, "Nothing pending"},
		{filter.Done, 3, "No completed tasks"},
	}
	for _, tt := range tests {
		if got := emptyMessage(tt.mode, tt.total); !strings.Contains(got, tt.want) {
			t.Errorf("emptyMessage(%s, %d) = %q, want containing %q", tt.mode, tt.total, got, tt.want)
		}
	}
}

func TestView_Help(t *testing.T) {
	env := newTestEnv(t, 0)
	m := env.model()

	if !strings.Contains(m.View(), "space/x") {
		t.Errorf("short help missing merged toggle keys:\n%s", m.View())
	}

	m, _ = press(t, m, runeKey("?"))
	view := m.View()
	for _, want := range []string{"Navigation", "Filter", "G Bottom"} {
		if !strings.Contains(view, want) {
			t.Errorf("full help missing %q:\n%s", want, view)
		}
	}
}
