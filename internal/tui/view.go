package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/tasklist/internal/filter"
	"github.com/Iron-Ham/tasklist/internal/render"
	"github.com/Iron-Ham/tasklist/internal/tui/keymap"
	"github.com/Iron-Ham/tasklist/internal/tui/styles"
	"github.com/Iron-Ham/tasklist/internal/util"
)

// Column widths of the task table. The text column takes the rest.
const (
	cursorWidth  = 2
	badgeWidth   = 9
	dueWidth     = 14
	actionsWidth = 7
	columnGap    = 2

	defaultWidth  = 80
	minTextWidth  = 12
	overduePrefix = "⚠ "
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := styles.Active()
	v := m.session.View(render.Options{Locale: m.locale})
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(st, v, width))
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar(st, v.Filter))
	b.WriteString("\n\n")

	if m.adding {
		b.WriteString(m.renderForm(st, "New task"))
		b.WriteString("\n")
	}

	if v.Empty {
		b.WriteString(st.Empty.Render(emptyMessage(v.Filter, v.Stats.Total)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTable(st, v, width))
	}

	if m.mode() == keymap.ModeConfirm {
		b.WriteString("\n")
		b.WriteString(st.Confirm.Render(render.ClearPrompt(m.locale) + "  [y/N]"))
		b.WriteString("\n")
	}

	if status := m.renderStatus(st); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp(st))
	return b.String()
}

func (m Model) renderHeader(st *styles.Styles, v render.View, width int) string {
	title := st.Title.Render("Tasks")
	stats := st.Stats.Render(v.Stats.String())
	gap := width - lipgloss.Width(title) - lipgloss.Width(stats)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + stats
}

func (m Model) renderFilterBar(st *styles.Styles, active filter.Mode) string {
	parts := make([]string, 0, len(filter.Options))
	for _, o := range filter.Options {
		label := o.Shortcut + " " + o.Label
		if o.Mode == active {
			parts = append(parts, st.FilterActive.Render(label))
		} else {
			parts = append(parts, st.FilterInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func emptyMessage(mode filter.Mode, total int) string {
	if total == 0 {
		return "No tasks yet. Press a to add one."
	}
	switch mode {
	case filter.Pending:
		return "Nothing pending. Nice work."
	case filter.Done:
		return "No completed tasks."
	default:
		return "No tasks."
	}
}

func textWidth(width int) int {
	w := width - cursorWidth - badgeWidth - dueWidth - actionsWidth - 4*columnGap
	return max(w, minTextWidth)
}

func (m Model) renderTable(st *styles.Styles, v render.View, width int) string {
	tw := textWidth(width)
	gap := strings.Repeat(" ", columnGap)

	var b strings.Builder
	header := strings.Repeat(" ", cursorWidth) + gap +
		util.PadRight("Status", badgeWidth) + gap +
		util.PadRight("Task", tw) + gap +
		util.PadRight("Due", dueWidth) + gap +
		util.PadRight("", actionsWidth)
	b.WriteString(st.Header.Render(header))
	b.WriteString("\n")

	for i, row := range v.Rows {
		selected := i == m.cursor && m.mode() != keymap.ModeAdd
		if row.Kind == render.KindEdit {
			b.WriteString(m.renderForm(st, "Editing"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(renderRow(st, row, selected, tw))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(st *styles.Styles, row render.Row, selected bool, tw int) string {
	gap := strings.Repeat(" ", columnGap)

	cursor := strings.Repeat(" ", cursorWidth)
	if selected {
		cursor = st.Cursor.Render(util.PadRight(">", cursorWidth))
	}

	badgeStyle := st.BadgePending
	if row.Done {
		badgeStyle = st.BadgeDone
	}
	badge := badgeStyle.Render(util.PadRight(row.Badge, badgeWidth-2))

	text := util.PadRight(util.SingleLine(row.Text), tw)
	switch {
	case row.Removing:
		text = st.Removing.Render(text)
	case row.Done:
		text = st.DoneText.Render(text)
	default:
		text = st.Cell.Render(text)
	}

	var due string
	switch {
	case row.Overdue:
		due = st.Overdue.Render(util.PadRight(overduePrefix+row.DueLabel, dueWidth))
	case row.DueLabel == render.NoDate:
		due = st.NoDate.Render(util.PadRight(row.DueLabel, dueWidth))
	default:
		due = st.Cell.Render(util.PadRight(row.DueLabel, dueWidth))
	}

	labels := make([]string, 0, len(row.Actions))
	for _, a := range row.Actions {
		labels = append(labels, a.Label)
	}
	actions := st.Action.Render(util.PadRight(strings.Join(labels, " "), actionsWidth))

	line := cursor + gap + badge + gap + text + gap + due + gap + actions
	if selected {
		return st.Selected.Render(line)
	}
	return line
}

func (m Model) renderForm(st *styles.Styles, label string) string {
	box := st.InputFocused
	if m.shaking {
		box = st.InputRejected
	}

	textLabel, dateLabel := "Task", "Due"
	if m.focus == fieldText {
		textLabel = st.HelpKey.Render(textLabel)
		dateLabel = st.InputLabel.Render(dateLabel)
	} else {
		textLabel = st.InputLabel.Render(textLabel)
		dateLabel = st.HelpKey.Render(dateLabel)
	}

	body := st.InputLabel.Render(label) + "\n" +
		textLabel + " " + m.textInput.View() + "\n" +
		dateLabel + "  " + m.dateInput.View()
	return box.Render(body)
}

func (m Model) renderStatus(st *styles.Styles) string {
	switch {
	case m.errorMessage != "":
		return st.ErrorMsg.Render(m.errorMessage)
	case m.infoMessage != "":
		return st.SuccessMsg.Render(m.infoMessage)
	}
	return ""
}

func (m Model) renderHelp(st *styles.Styles) string {
	mode := m.mode()
	if m.showHelp && mode == keymap.ModeNormal {
		return m.renderFullHelp(st)
	}

	entries := m.keymap.Help(mode)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, st.HelpKey.Render(e.Keys)+" "+e.Description)
	}
	return st.HelpBar.Render(strings.Join(parts, "  "))
}

// renderFullHelp lists every normal-mode binding, hidden ones included,
// grouped by category.
func (m Model) renderFullHelp(st *styles.Styles) string {
	var (
		order  []string
		groups = map[string][]string{}
	)
	for _, kb := range m.keymap.GetModeBindings(keymap.ModeNormal) {
		if _, ok := groups[kb.Category]; !ok {
			order = append(order, kb.Category)
		}
		groups[kb.Category] = append(groups[kb.Category], st.HelpKey.Render(kb.String())+" "+kb.Description)
	}

	lines := make([]string, 0, len(order))
	for _, cat := range order {
		lines = append(lines, util.PadRight(cat, 12)+strings.Join(groups[cat], "  "))
	}
	return st.HelpBar.Render(strings.Join(lines, "\n"))
}
