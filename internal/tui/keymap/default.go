package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the built-in key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeNormal:  defaultNormalBindings(),
			ModeAdd:     defaultEntryBindings(ModeAdd, "Add task"),
			ModeEdit:    defaultEntryBindings(ModeEdit, "Save"),
			ModeConfirm: defaultConfirmBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Tasks
			{KeyType: tea.KeyRunes, Rune: 'a', Command: CmdAdd, Description: "Add", Category: "Tasks"},
			{KeyType: tea.KeySpace, Command: CmdToggle, Description: "Toggle done", Category: "Tasks"},
			{KeyType: tea.KeyRunes, Rune: ' ', Command: CmdToggle, Description: "Toggle done", Category: "Tasks", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'x', Command: CmdToggle, Description: "Toggle done", Category: "Tasks"},
			{KeyType: tea.KeyRunes, Rune: 'e', Command: CmdEdit, Description: "Edit", Category: "Tasks"},
			{KeyType: tea.KeyEnter, Command: CmdEdit, Description: "Edit", Category: "Tasks", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdDelete, Description: "Delete", Category: "Tasks"},
			{KeyType: tea.KeyRunes, Rune: 'D', Command: CmdDeleteAll, Description: "Delete all", Category: "Tasks"},

			// Filter
			{KeyType: tea.KeyRunes, Rune: 'f', Command: CmdCycleFilter, Description: "Filter", Category: "Filter"},
			{KeyType: tea.KeyRunes, Rune: '1', Command: CmdFilterAll, Description: "All", Category: "Filter", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: '2', Command: CmdFilterPending, Description: "Pending", Category: "Filter", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: '3', Command: CmdFilterDone, Description: "Done", Category: "Filter", Hidden: true},

			// Navigation
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Down", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Down", Category: "Navigation", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Up", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Up", Category: "Navigation", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdCursorTop, Description: "Top", Category: "Navigation", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdCursorBottom, Description: "Bottom", Category: "Navigation", Hidden: true},

			// Application
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Help", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application", Hidden: true},
		},
	}
}

// defaultEntryBindings covers add and edit mode. Every key not listed here
// goes to the focused text field.
func defaultEntryBindings(mode Mode, submit string) *ModeBindings {
	return &ModeBindings{
		Mode: mode,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdSubmit, Description: submit, Category: "Entry"},
			{KeyType: tea.KeyTab, Command: CmdSwitchField, Description: "Text/date", Category: "Entry"},
			{KeyType: tea.KeyShiftTab, Command: CmdSwitchField, Description: "Text/date", Category: "Entry", Hidden: true},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Cancel", Category: "Entry"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application", Hidden: true},
		},
	}
}

func defaultConfirmBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeConfirm,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'y', Command: CmdConfirmYes, Description: "Yes", Category: "Confirm"},
			{KeyType: tea.KeyRunes, Rune: 'Y', Command: CmdConfirmYes, Description: "Yes", Category: "Confirm", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdConfirmNo, Description: "No", Category: "Confirm"},
			{KeyType: tea.KeyRunes, Rune: 'N', Command: CmdConfirmNo, Description: "No", Category: "Confirm", Hidden: true},
			{KeyType: tea.KeyEsc, Command: CmdConfirmNo, Description: "No", Category: "Confirm"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application", Hidden: true},
		},
	}
}
