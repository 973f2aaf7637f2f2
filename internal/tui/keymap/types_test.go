package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyBindingMatches(t *testing.T) {
	tests := []struct {
		name     string
		binding  KeyBinding
		msg      tea.KeyMsg
		expected bool
	}{
		{"rune match", KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'}, runeKey('j'), true},
		{"rune mismatch", KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'}, runeKey('k'), false},
		{"case sensitive", KeyBinding{KeyType: tea.KeyRunes, Rune: 'D'}, runeKey('d'), false},
		{"special key match", KeyBinding{KeyType: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter}, true},
		{"special key mismatch", KeyBinding{KeyType: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc}, false},
		{"rune binding ignores special key", KeyBinding{KeyType: tea.KeyRunes, Rune: 'a'}, tea.KeyMsg{Type: tea.KeyEnter}, false},
		{"pasted text is not a binding", KeyBinding{KeyType: tea.KeyRunes, Rune: 'a'}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, false},
		{"alt required", KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt}, runeKey('x'), false},
		{"alt not wanted", KeyBinding{KeyType: tea.KeyRunes, Rune: 'x'}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.binding.Matches(tt.msg); got != tt.expected {
				t.Errorf("Matches() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDefaultKeymap_Normal(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		msg  tea.KeyMsg
		want Command
	}{
		{runeKey('a'), CmdAdd},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, CmdToggle},
		{runeKey('x'), CmdToggle},
		{runeKey('e'), CmdEdit},
		{tea.KeyMsg{Type: tea.KeyEnter}, CmdEdit},
		{runeKey('d'), CmdDelete},
		{runeKey('D'), CmdDeleteAll},
		{runeKey('f'), CmdCycleFilter},
		{runeKey('1'), CmdFilterAll},
		{runeKey('2'), CmdFilterPending},
		{runeKey('3'), CmdFilterDone},
		{runeKey('j'), CmdCursorDown},
		{tea.KeyMsg{Type: tea.KeyUp}, CmdCursorUp},
		{runeKey('q'), CmdQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, CmdQuit},
	}

	for _, tt := range tests {
		t.Run(string(tt.want)+"/"+tt.msg.String(), func(t *testing.T) {
			got, ok := km.GetBinding(tt.msg, ModeNormal)
			if !ok || got != tt.want {
				t.Errorf("GetBinding(%q) = %q, %v; want %q", tt.msg.String(), got, ok, tt.want)
			}
		})
	}

	if _, ok := km.GetBinding(runeKey('z'), ModeNormal); ok {
		t.Error("unbound key should not match")
	}
}

func TestDefaultKeymap_EntryModesPassTextThrough(t *testing.T) {
	km := DefaultKeymap()

	for _, mode := range []Mode{ModeAdd, ModeEdit} {
		// Letters must reach the text field, including the ones that are
		// commands in normal mode.
		for _, r := range "aqdx " {
			if cmd, ok := km.GetBinding(runeKey(r), mode); ok {
				t.Errorf("%s mode: %q bound to %q", mode, r, cmd)
			}
		}
		if cmd, _ := km.GetBinding(tea.KeyMsg{Type: tea.KeyEnter}, mode); cmd != CmdSubmit {
			t.Errorf("%s mode: enter = %q", mode, cmd)
		}
		if cmd, _ := km.GetBinding(tea.KeyMsg{Type: tea.KeyTab}, mode); cmd != CmdSwitchField {
			t.Errorf("%s mode: tab = %q", mode, cmd)
		}
		if cmd, _ := km.GetBinding(tea.KeyMsg{Type: tea.KeyEsc}, mode); cmd != CmdCancel {
			t.Errorf("%s mode: esc = %q", mode, cmd)
		}
	}
}

func TestDefaultKeymap_Confirm(t *testing.T) {
	km := DefaultKeymap()

	if cmd, _ := km.GetBinding(runeKey('y'), ModeConfirm); cmd != CmdConfirmYes {
		t.Errorf("y = %q", cmd)
	}
	if cmd, _ := km.GetBinding(tea.KeyMsg{Type: tea.KeyEsc}, ModeConfirm); cmd != CmdConfirmNo {
		t.Errorf("esc = %q", cmd)
	}
	if _, ok := km.GetBinding(runeKey('a'), ModeConfirm); ok {
		t.Error("confirm mode should swallow other keys")
	}
}

func TestKeymap_Help(t *testing.T) {
	help := DefaultKeymap().Help(ModeNormal)

	var toggle *HelpEntry
	for i := range help {
		if help[i].Description == "Toggle done" {
			toggle = &help[i]
		}
		if help[i].Description == "Down" && help[i].Keys != "j" {
			t.Errorf("hidden arrow binding leaked into help: %q", help[i].Keys)
		}
	}
	if toggle == nil || toggle.Keys != "space/x" {
		t.Errorf("toggle help = %+v, want keys space/x", toggle)
	}
}

func TestKeyBindingString(t *testing.T) {
	tests := []struct {
		binding KeyBinding
		want    string
	}{
		{KeyBinding{KeyType: tea.KeyRunes, Rune: 'a'}, "a"},
		{KeyBinding{KeyType: tea.KeySpace}, "space"},
		{KeyBinding{KeyType: tea.KeyEnter}, "enter"},
		{KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt}, "alt+x"},
	}
	for _, tt := range tests {
		if got := tt.binding.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
