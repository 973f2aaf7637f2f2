package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/tasklist/internal/config"
	"github.com/Iron-Ham/tasklist/internal/logging"
	"github.com/Iron-Ham/tasklist/internal/render"
	"github.com/Iron-Ham/tasklist/internal/session"
	"github.com/Iron-Ham/tasklist/internal/task"
	"github.com/Iron-Ham/tasklist/internal/tui/keymap"
	"github.com/Iron-Ham/tasklist/internal/tui/styles"
)

// field identifies the focused input of the add and edit forms.
type field int

const (
	fieldText field = iota
	fieldDate
)

// Model is the bubbletea model of the task list screen.
type Model struct {
	ctx     context.Context
	session *session.Session
	keymap  *keymap.Keymap
	logger  *logging.Logger
	locale  render.Locale

	// UI state
	width    int
	height   int
	ready    bool
	cursor   int
	adding   bool
	focus    field
	showHelp bool
	quitting bool

	textInput textinput.Model
	dateInput textinput.Model

	// Rejected-input highlight. shakeSeq discards stale shakeDoneMsgs.
	shaking  bool
	shakeSeq int

	errorMessage string
	infoMessage  string
}

// NewModel returns a Model over an opened session.
func NewModel(ctx context.Context, sess *session.Session, cfg *config.Config, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.NopLogger()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	locale, err := render.ParseLocale(cfg.Display.Locale)
	if err != nil {
		locale = render.LocaleEnglish
	}

	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.Prompt = ""
	ti.CharLimit = 500

	di := textinput.New()
	di.Placeholder = task.DateLayout
	di.Prompt = ""
	di.CharLimit = len(task.DateLayout)

	return Model{
		ctx:       ctx,
		session:   sess,
		keymap:    keymap.DefaultKeymap(),
		logger:    logger.WithComponent("tui"),
		locale:    locale,
		textInput: ti,
		dateInput: di,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeInputs()
		return m, nil

	case finalizeDeleteMsg:
		_, cmd := m.dispatch(session.FinalizeDelete{ID: msg.id, Token: msg.token})
		m.clampCursor()
		return m, cmd

	case shakeDoneMsg:
		if msg.seq == m.shakeSeq {
			m.shaking = false
		}
		return m, nil

	case configReloadedMsg:
		m.applyConfig(msg.cfg, msg.err)
		return m, nil
	}

	return m, nil
}

// mode derives the active keymap mode. Confirmation and editing live in
// the session state; only the add form is local to the model.
func (m Model) mode() keymap.Mode {
	st := m.session.State()
	switch {
	case st.ConfirmingClear:
		return keymap.ModeConfirm
	case st.Editing():
		return keymap.ModeEdit
	case m.adding:
		return keymap.ModeAdd
	default:
		return keymap.ModeNormal
	}
}

// dispatch sends cmd to the session and turns its effects into tea
// commands. A save failure is shown in the status line; the session keeps
// the change in memory.
func (m *Model) dispatch(cmd session.Command) (session.Result, tea.Cmd) {
	res, err := m.session.Dispatch(m.ctx, cmd)
	if err != nil {
		m.errorMessage = fmt.Sprintf("Failed to save: %v", err)
	} else if res.Changed {
		m.errorMessage = ""
	}

	var cmds []tea.Cmd
	for _, e := range res.Effects {
		if sd, ok := e.(session.ScheduleDelete); ok {
			cmds = append(cmds, scheduleDelete(sd))
		}
	}
	return res, tea.Batch(cmds...)
}

// shake starts the rejected-input highlight.
func (m *Model) shake() tea.Cmd {
	m.shaking = true
	m.shakeSeq++
	return endShake(m.shakeSeq)
}

// selectedID returns the id of the task under the cursor, or "".
func (m Model) selectedID() string {
	visible := m.session.State().Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return ""
	}
	return visible[m.cursor].ID
}

// clampCursor keeps the cursor on a visible row.
func (m *Model) clampCursor() {
	n := len(m.session.State().Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// moveCursorTo places the cursor on the task with id, if visible.
func (m *Model) moveCursorTo(id string) {
	for i, t := range m.session.State().Visible() {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) resizeInputs() {
	w := m.width - 30
	if w < 20 {
		w = 20
	}
	m.textInput.Width = w
	m.dateInput.Width = len(task.DateLayout) + 1
}

// openForm resets the add/edit inputs to text and date and focuses the
// text field.
func (m *Model) openForm(text, date string) tea.Cmd {
	m.textInput.SetValue(text)
	m.textInput.CursorEnd()
	m.dateInput.SetValue(date)
	m.dateInput.CursorEnd()
	m.focus = fieldText
	m.dateInput.Blur()
	return m.textInput.Focus()
}

func (m *Model) closeForm() {
	m.adding = false
	m.shaking = false
	m.textInput.Blur()
	m.dateInput.Blur()
	m.textInput.SetValue("")
	m.dateInput.SetValue("")
}

func (m *Model) switchField() tea.Cmd {
	if m.focus == fieldText {
		m.focus = fieldDate
		m.textInput.Blur()
		return m.dateInput.Focus()
	}
	m.focus = fieldText
	m.dateInput.Blur()
	return m.textInput.Focus()
}

// applyConfig picks up theme and locale changes from a reloaded config.
func (m *Model) applyConfig(cfg *config.Config, err error) {
	if err != nil {
		m.logger.Warn("config reload failed", "error", err)
		m.errorMessage = fmt.Sprintf("Config not reloaded: %v", err)
		return
	}
	palette, err := styles.ResolvePalette(cfg.TUI.Theme, cfg.TUI.ThemeFile)
	if err != nil {
		m.logger.Warn("theme reload failed", "error", err)
		m.errorMessage = fmt.Sprintf("Theme not reloaded: %v", err)
		return
	}
	styles.SetActivePalette(palette)
	if locale, err := render.ParseLocale(cfg.Display.Locale); err == nil {
		m.locale = locale
	}
	m.logger.Info("config reloaded", "theme", cfg.TUI.Theme, "locale", string(m.locale))
	m.infoMessage = "Config reloaded"
}
