package session

import (
	"context"
	"time"

	"github.com/Iron-Ham/tasklist/internal/filter"
	"github.com/Iron-Ham/tasklist/internal/logging"
	"github.com/Iron-Ham/tasklist/internal/render"
	"github.com/Iron-Ham/tasklist/internal/task"
)

// Session owns the state of one run and persists it through a Repository.
// It is not safe for concurrent use; the TUI drives it from its event loop
// and the CLI from a single goroutine.
type Session struct {
	state  State
	repo   *task.Repository
	logger *logging.Logger
	now    func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithFilter sets the initial filter mode.
func WithFilter(mode filter.Mode) Option {
	return func(s *Session) {
		if mode.Valid() {
			s.state.Filter = mode
		}
	}
}

// WithDeleteDelay sets how long deleted tasks linger before removal.
func WithDeleteDelay(d time.Duration) Option {
	return func(s *Session) {
		if d < 0 {
			d = 0
		}
		s.state.DeleteDelay = d
	}
}

// New returns a Session over repo with an empty collection. Call Open to
// load the stored one.
func New(repo *task.Repository, opts ...Option) *Session {
	s := &Session{
		state:  NewState(nil, filter.All, DefaultDeleteDelay),
		repo:   repo,
		logger: logging.NopLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("session")
	return s
}

// Open loads the collection. It never fails; see Repository.Load.
func (s *Session) Open(ctx context.Context) {
	s.state.Tasks = s.repo.Load(ctx)
	s.state.EditingID = ""
	s.state.ConfirmingClear = false
	s.state.PendingDeletes = map[string]DeletionToken{}
	s.logger.Info("session opened", "tasks", len(s.state.Tasks), "filter", string(s.state.Filter))
}

// Dispatch applies cmd and saves the collection if it changed. A save
// error is returned, but the in-memory state keeps the change so the
// session stays usable.
func (s *Session) Dispatch(ctx context.Context, cmd Command) (Result, error) {
	next, res := Update(s.state, cmd, s.now())
	s.state = next

	if res.Rejected != nil {
		s.logger.Debug("command rejected", "command", commandName(cmd), "reason", res.Rejected.Error())
	}
	if !res.Changed {
		return res, nil
	}

	s.logger.Debug("command applied", "command", commandName(cmd), "task_id", res.TaskID)
	if err := s.repo.Save(ctx, s.state.Tasks); err != nil {
		s.logger.Error("failed to persist tasks", "command", commandName(cmd), "error", err)
		return res, err
	}
	return res, nil
}

// State returns a snapshot of the current state. The caller must not
// mutate the returned collection.
func (s *Session) State() State {
	return s.state
}

// Today returns the local calendar date according to the session clock.
func (s *Session) Today() task.Date {
	return task.Today(s.now())
}

// View renders the current state.
func (s *Session) View(opts render.Options) render.View {
	return render.Build(s.state.RenderInput(), s.Today(), opts)
}

func commandName(cmd Command) string {
	switch cmd.(type) {
	case Add:
		return "add"
	case Toggle:
		return "toggle"
	case RequestDelete:
		return "request_delete"
	case FinalizeDelete:
		return "finalize_delete"
	case RequestClear:
		return "request_clear"
	case ConfirmClear:
		return "confirm_clear"
	case StartEdit:
		return "start_edit"
	case SaveEdit:
		return "save_edit"
	case CancelEdit:
		return "cancel_edit"
	case SetFilter:
		return "set_filter"
	case CycleFilter:
		return "cycle_filter"
	}
	return "unknown"
}
