package tui

import (
	"errors"
	"maps"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	tlerrors "github.com/Iron-Ham/tasklist/internal/errors"
	"github.com/Iron-Ham/tasklist/internal/filter"
	"github.com/Iron-Ham/tasklist/internal/session"
	"github.com/Iron-Ham/tasklist/internal/task"
	"github.com/Iron-Ham/tasklist/internal/tui/keymap"
)

// handleKeypress routes a key to the handler of the active mode. In the
// add and edit forms, keys without a binding go to the focused input.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.mode()
	cmd, ok := m.keymap.GetBinding(msg, mode)

	switch mode {
	case keymap.ModeConfirm:
		if !ok {
			return m, nil
		}
		return m.handleConfirm(cmd)
	case keymap.ModeAdd, keymap.ModeEdit:
		if !ok {
			return m.updateFocusedInput(msg)
		}
		return m.handleForm(cmd, mode)
	default:
		if !ok {
			return m, nil
		}
		return m.handleNormal(cmd)
	}
}

func (m Model) handleNormal(cmd keymap.Command) (tea.Model, tea.Cmd) {
	m.infoMessage = ""

	switch cmd {
	case keymap.CmdQuit:
		return m.quit()

	case keymap.CmdAdd:
		m.adding = true
		focus := m.openForm("", "")
		return m, focus

	case keymap.CmdToggle:
		id := m.selectedID()
		if id == "" {
			return m, nil
		}
		_, tcmd := m.dispatch(session.Toggle{ID: id})
		m.clampCursor()
		return m, tcmd

	case keymap.CmdEdit:
		id := m.selectedID()
		if id == "" {
			return m, nil
		}
		res, tcmd := m.dispatch(session.StartEdit{ID: id})
		if res.Rejected != nil {
			return m, tcmd
		}
		t, _ := task.Find(m.session.State().Tasks, id)
		focus := m.openForm(t.Text, t.Due.String())
		return m, tea.Batch(tcmd, focus)

	case keymap.CmdDelete:
		id := m.selectedID()
		if id == "" {
			return m, nil
		}
		_, tcmd := m.dispatch(session.RequestDelete{ID: id})
		m.clampCursor()
		return m, tcmd

	case keymap.CmdDeleteAll:
		_, tcmd := m.dispatch(session.RequestClear{})
		return m, tcmd

	case keymap.CmdCycleFilter:
		return m.setFilter(m.session.State().Filter.Next())
	case keymap.CmdFilterAll:
		return m.setFilter(filter.All)
	case keymap.CmdFilterPending:
		return m.setFilter(filter.Pending)
	case keymap.CmdFilterDone:
		return m.setFilter(filter.Done)

	case keymap.CmdCursorDown:
		m.cursor++
		m.clampCursor()
	case keymap.CmdCursorUp:
		m.cursor--
		m.clampCursor()
	case keymap.CmdCursorTop:
		m.cursor = 0
	case keymap.CmdCursorBottom:
		m.cursor = len(m.session.State().Visible()) - 1
		m.clampCursor()

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// setFilter changes the filter and keeps the cursor on the same task when
// it is still visible.
func (m Model) setFilter(mode filter.Mode) (tea.Model, tea.Cmd) {
	id := m.selectedID()
	_, tcmd := m.dispatch(session.SetFilter{Mode: mode})
	m.moveCursorTo(id)
	return m, tcmd
}

func (m Model) handleForm(cmd keymap.Command, mode keymap.Mode) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdQuit:
		return m.quit()

	case keymap.CmdSwitchField:
		focus := m.switchField()
		return m, focus

	case keymap.CmdCancel:
		if mode == keymap.ModeEdit {
			_, tcmd := m.dispatch(session.CancelEdit{})
			m.closeForm()
			return m, tcmd
		}
		m.closeForm()
		return m, nil

	case keymap.CmdSubmit:
		due, err := task.ParseDate(m.dateInput.Value())
		if err != nil {
			m.errorMessage = "Due date must be YYYY-MM-DD"
			shake := m.shake()
			return m, shake
		}
		if mode == keymap.ModeEdit {
			return m.submitEdit(due)
		}
		return m.submitAdd(due)
	}

	return m, nil
}

func (m Model) submitAdd(due task.Date) (tea.Model, tea.Cmd) {
	res, tcmd := m.dispatch(session.Add{Text: m.textInput.Value(), Due: due})
	if res.Rejected != nil {
		if errors.Is(res.Rejected, tlerrors.ErrEmptyText) {
			m.focus = fieldText
			m.dateInput.Blur()
			focus := m.textInput.Focus()
			shake := m.shake()
			return m, tea.Batch(tcmd, focus, shake)
		}
		m.errorMessage = res.Rejected.Error()
		return m, tcmd
	}
	m.closeForm()
	m.moveCursorTo(res.TaskID)
	return m, tcmd
}

func (m Model) submitEdit(due task.Date) (tea.Model, tea.Cmd) {
	id := m.session.State().EditingID
	res, tcmd := m.dispatch(session.SaveEdit{ID: id, Text: m.textInput.Value(), Due: due})
	m.closeForm()
	if res.Rejected != nil {
		if errors.Is(res.Rejected, tlerrors.ErrEmptyText) {
			m.infoMessage = "Edit discarded: task text cannot be empty"
		} else {
			m.errorMessage = res.Rejected.Error()
		}
	}
	m.moveCursorTo(id)
	return m, tcmd
}

func (m Model) handleConfirm(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdQuit:
		return m.quit()
	case keymap.CmdConfirmYes:
		res, tcmd := m.dispatch(session.ConfirmClear{Yes: true})
		if res.Changed {
			m.infoMessage = "All tasks deleted"
		}
		m.closeForm()
		m.cursor = 0
		return m, tcmd
	case keymap.CmdConfirmNo:
		_, tcmd := m.dispatch(session.ConfirmClear{Yes: false})
		return m, tcmd
	}
	return m, nil
}

// updateFocusedInput forwards a key to the focused text field.
func (m Model) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == fieldDate {
		m.dateInput, cmd = m.dateInput.Update(msg)
	} else {
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

// quit finalizes deletions still waiting on their timer, so a task deleted
// just before quitting does not come back on the next start.
func (m Model) quit() (tea.Model, tea.Cmd) {
	pending := m.session.State().PendingDeletes
	for _, id := range slices.Sorted(maps.Keys(pending)) {
		m.dispatch(session.FinalizeDelete{ID: id, Token: pending[id]})
	}
	m.quitting = true
	return m, tea.Quit
}
