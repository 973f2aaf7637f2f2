package render

import (
	"testing"
	"time"

	"github.com/Iron-Ham/tasklist/internal/filter"
	"github.com/Iron-Ham/tasklist/internal/task"
)

var today = task.NewDate(2026, time.October, 16)

func TestIsOverdue(t *testing.T) {
	tests := []struct {
		name string
		task task.Task
		want bool
	}{
		{"due yesterday, pending", task.Task{Due: today.AddDays(-1)}, true},
		{"due today, pending", task.Task{Due: today}, false},
		{"due tomorrow, pending", task.Task{Due: today.AddDays(1)}, false},
		{"due yesterday, done", task.Task{Due: today.AddDays(-1), Done: true}, false},
		{"no due date", task.Task{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.task, today); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := task.NewDate(2026, time.August, 5)

	tests := []struct {
		locale Locale
		date   task.Date
		want   string
	}{
		{LocaleEnglish, d, "05 Aug 2026"},
		{LocaleIndonesian, d, "05 Agu 2026"},
		{LocaleIndonesian, task.NewDate(2026, time.May, 1), "01 Mei 2026"},
		{LocaleEnglish, task.Date{}, NoDate},
		{LocaleIndonesian, task.Date{}, NoDate},
	}

	for _, tt := range tests {
		t.Run(string(tt.locale)+"/"+tt.want, func(t *testing.T) {
			if got := FormatDate(tt.date, tt.locale); got != tt.want {
				t.Errorf("FormatDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLocale(t *testing.T) {
	for input, want := range map[string]Locale{"": LocaleEnglish, "en": LocaleEnglish, "id-ID": LocaleIndonesian, "ID": LocaleIndonesian} {
		got, err := ParseLocale(input)
		if err != nil || got != want {
			t.Errorf("ParseLocale(%q) = %q, %v; want %q", input, got, err, want)
		}
	}
	if _, err := ParseLocale("fr"); err == nil {
		t.Error("ParseLocale(fr) should fail")
	}
}

func TestBuild_StatsIgnoreFilter(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Text: "one", Done: true},
		{ID: "b", Text: "two"},
		{ID: "c", Text: "three"},
	}

	for _, mode := range filter.Modes() {
		v := Build(Input{Tasks: tasks, Filter: mode}, today, Options{})
		if got := v.Stats.String(); got != "1 / 3 completed" {
			t.Errorf("filter %s: stats = %q, want %q", mode, got, "1 / 3 completed")
		}
	}

	v := Build(Input{Tasks: tasks, Filter: filter.Done}, today, Options{})
	if len(v.Rows) != 1 || v.Rows[0].ID != "a" {
		t.Errorf("done filter rows = %+v", v.Rows)
	}
}

func TestBuild_Empty(t *testing.T) {
	v := Build(Input{Filter: filter.All}, today, Options{})
	if !v.Empty || len(v.Rows) != 0 {
		t.Errorf("empty collection: Empty = %v, rows = %d", v.Empty, len(v.Rows))
	}
	if v.Stats.String() != "0 / 0 completed" {
		t.Errorf("stats = %q", v.Stats.String())
	}

	v = Build(Input{Tasks: []task.Task{{ID: "a", Text: "x"}}, Filter: filter.Done}, today, Options{})
	if !v.Empty {
		t.Error("filter with no matches should be Empty")
	}
	if v.Stats.Total != 1 {
		t.Errorf("Total = %d, want 1", v.Stats.Total)
	}
}

func TestBuild_DisplayRow(t *testing.T) {
	tasks := []task.Task{
		{ID: "late", Text: "Pay rent", Due: today.AddDays(-2)},
		{ID: "fin", Text: "Read", Done: true},
	}
	v := Build(Input{Tasks: tasks, Removing: map[string]bool{"fin": true}}, today, Options{Locale: LocaleEnglish})

	late := v.Rows[0]
	if late.Kind != KindDisplay || !late.Overdue || late.Badge != BadgePending {
		t.Errorf("late row = %+v", late)
	}
	if late.DueLabel != "14 Oct 2026" {
		t.Errorf("DueLabel = %q", late.DueLabel)
	}
	if late.Removing {
		t.Error("late row should not be removing")
	}
	if len(late.Actions) != 3 || late.Actions[0].Hint != "Mark done" {
		t.Errorf("actions = %+v", late.Actions)
	}

	fin := v.Rows[1]
	if fin.Badge != BadgeDone || !fin.Done || fin.DueLabel != NoDate || !fin.Removing {
		t.Errorf("done row = %+v", fin)
	}
	if fin.Actions[0].Hint != "Mark pending" {
		t.Errorf("toggle hint = %q", fin.Actions[0].Hint)
	}
}

func TestBuild_EditRow(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Text: "Buy milk", Due: task.NewDate(2026, time.October, 20)},
		{ID: "b", Text: "Walk"},
	}
	v := Build(Input{Tasks: tasks, EditingID: "a"}, today, Options{})

	edit := v.Rows[0]
	if edit.Kind != KindEdit {
		t.Fatalf("row 0 kind = %v, want edit", edit.Kind)
	}
	if edit.EditText != "Buy milk" || edit.EditDate != "2026-10-20" {
		t.Errorf("edit prefill = %q, %q", edit.EditText, edit.EditDate)
	}
	if len(edit.Actions) != 2 || edit.Actions[0].Kind != ActionSave || edit.Actions[1].Kind != ActionCancel {
		t.Errorf("edit actions = %+v", edit.Actions)
	}
	if v.Rows[1].Kind != KindDisplay {
		t.Error("only the edited task should be an edit row")
	}
}

func TestBuild_EditingHiddenByFilter(t *testing.T) {
	tasks := []task.Task{{ID: "a", Text: "x"}}
	v := Build(Input{Tasks: tasks, Filter: filter.Done, EditingID: "a"}, today, Options{})
	if len(v.Rows) != 0 {
		t.Errorf("rows = %+v, want none", v.Rows)
	}
}
