// Package tui is the interactive task list: a bubbletea program over a
// session.Session. All state changes go through session commands; the TUI
// only owns the cursor, the add form, and transient messages.
package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Iron-Ham/tasklist/internal/config"
	"github.com/Iron-Ham/tasklist/internal/logging"
	"github.com/Iron-Ham/tasklist/internal/session"
	"github.com/Iron-Ham/tasklist/internal/tui/styles"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	cfg     *config.Config
	logger  *logging.Logger
}

// New creates a new TUI application over an opened session.
func New(ctx context.Context, sess *session.Session, cfg *config.Config, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.NopLogger()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	palette, err := styles.ResolvePalette(cfg.TUI.Theme, cfg.TUI.ThemeFile)
	if err != nil {
		logger.Warn("falling back to default theme", "error", err)
		palette = styles.DefaultPalette()
	}
	styles.SetActivePalette(palette)

	model := NewModel(ctx, sess, cfg, logger)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		model.width, model.height = w, h
		model.resizeInputs()
	}

	return &App{
		program: tea.NewProgram(model, tea.WithAltScreen()),
		model:   model,
		cfg:     cfg,
		logger:  logger.WithComponent("tui"),
	}
}

// WatchConfig reloads theme and locale whenever the config file behind v
// changes. It does nothing when v was not read from a file.
func (a *App) WatchConfig(v *viper.Viper) {
	if v == nil || v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := config.LoadFrom(v)
		a.program.Send(configReloadedMsg{cfg: cfg, err: err})
	})
	v.WatchConfig()
	a.logger.Debug("watching config file", "path", v.ConfigFileUsed())
}

// Run runs the program until the user quits. The caller holds the data
// directory lock.
func (a *App) Run() error {
	// Pending deletions are finalized on quit, so route signals through
	// the model instead of letting the process die.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	defer func() {
		signal.Stop(sigChan)
		close(done)
	}()
	go forwardSignals(sigChan, done, a.program.Send)

	a.logger.Info("tui started")
	_, err := a.program.Run()
	a.logger.Info("tui stopped")
	return err
}

// forwardSignals turns the first signal into a quit key for the program.
// It returns once done is closed.
func forwardSignals(sigChan <-chan os.Signal, done <-chan struct{}, send func(tea.Msg)) {
	select {
	case <-sigChan:
		send(tea.KeyMsg{Type: tea.KeyCtrlC})
	case <-done:
	}
}
