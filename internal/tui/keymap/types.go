// Package keymap maps key presses to named commands, per input mode. The
// TUI looks a key up here first and only falls back to the focused text
// field when nothing matches.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeNormal  Mode = "normal"  // Browsing the task table
	ModeAdd     Mode = "add"     // Typing a new task
	ModeEdit    Mode = "edit"    // Editing the selected task in place
	ModeConfirm Mode = "confirm" // Answering the delete-all question
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Normal mode commands
const (
	CmdAdd           Command = "add"
	CmdToggle        Command = "toggle"
	CmdEdit          Command = "edit"
	CmdDelete        Command = "delete"
	CmdDeleteAll     Command = "delete_all"
	CmdCycleFilter   Command = "cycle_filter"
	CmdFilterAll     Command = "filter_all"
	CmdFilterPending Command = "filter_pending"
	CmdFilterDone    Command = "filter_done"
	CmdCursorDown    Command = "cursor_down"
	CmdCursorUp      Command = "cursor_up"
	CmdCursorTop     Command = "cursor_top"
	CmdCursorBottom  Command = "cursor_bottom"
	CmdToggleHelp    Command = "toggle_help"
	CmdQuit          Command = "quit"
)

// Text entry commands (add and edit modes)
const (
	CmdSwitchField Command = "switch_field"
	CmdSubmit      Command = "submit"
	CmdCancel      Command = "cancel"
)

// Confirm mode commands
const (
	CmdConfirmYes Command = "confirm_yes"
	CmdConfirmNo  Command = "confirm_no"
)

// Modifier represents keyboard modifiers. Only Alt is reported separately
// by bubbletea; Ctrl combinations arrive as their own key types.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1
)

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key. For printable characters use tea.KeyRunes and
	// set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys.
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string

	// Hidden bindings work but are left out of the help bar, e.g. the
	// arrow-key twins of j/k.
	Hidden bool
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	if msg.Alt != (kb.Modifiers&ModAlt != 0) {
		return false
	}
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := ""
	if kb.Modifiers&ModAlt != 0 {
		prefix = "alt+"
	}
	switch {
	case kb.KeyType == tea.KeySpace, kb.KeyType == tea.KeyRunes && kb.Rune == ' ':
		return prefix + "space"
	case kb.KeyType == tea.KeyRunes:
		return prefix + string(kb.Rune)
	default:
		return prefix + kb.KeyType.String()
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// HelpEntry is one key/description pair in the help bar.
type HelpEntry struct {
	Keys        string
	Description string
}

// Help returns the visible bindings of mode, merging bindings that share a
// command into one entry ("space/x"). Order follows the first binding of
// each command.
func (km *Keymap) Help(mode Mode) []HelpEntry {
	var (
		entries []HelpEntry
		index   = map[Command]int{}
	)
	for _, b := range km.GetModeBindings(mode) {
		if b.Hidden {
			continue
		}
		if i, ok := index[b.Command]; ok {
			entries[i].Keys += "/" + b.String()
			continue
		}
		index[b.Command] = len(entries)
		entries = append(entries, HelpEntry{Keys: b.String(), Description: b.Description})
	}
	return entries
}
