package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/tasklist/internal/config"
	"github.com/Iron-Ham/tasklist/internal/session"
)

// shakeDuration is how long a rejected input stays highlighted.
const shakeDuration = 400 * time.Millisecond

// finalizeDeleteMsg fires when a scheduled deletion is due.
type finalizeDeleteMsg struct {
	id    string
	token session.DeletionToken
}

// shakeDoneMsg ends the rejected-input highlight started with the same seq.
type shakeDoneMsg struct {
	seq int
}

// configReloadedMsg carries a configuration re-read after the config file
// changed on disk.
type configReloadedMsg struct {
	cfg *config.Config
	err error
}

func scheduleDelete(e session.ScheduleDelete) tea.Cmd {
	return tea.Tick(e.Delay, func(time.Time) tea.Msg {
		return finalizeDeleteMsg{id: e.ID, token: e.Token}
	})
}

func endShake(seq int) tea.Cmd {
	return tea.Tick(shakeDuration, func(time.Time) tea.Msg {
		return shakeDoneMsg{seq: seq}
	})
}
