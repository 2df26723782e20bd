package tui

import (
	"context"
	"io"
	"log/slog"

	"automarket/config"
	"automarket/internal/errors"
	"automarket/internal/usecase"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"
)

// DashboardParams holds the dashboard dependencies.
type DashboardParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	DashboardUC usecase.DashboardUsecase
	SessionUC   usecase.SessionUsecase
}

// Dashboard runs the terminal dashboard.
type Dashboard struct {
	cfg       *config.Config
	logger    *slog.Logger
	dashboard usecase.DashboardUsecase
	sessions  usecase.SessionUsecase

	input  io.Reader
	output io.Writer

	loggedOut bool
}

// Option customizes the program terminal.
type Option func(*Dashboard)

// WithIO replaces the terminal the program reads from and renders to.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(d *Dashboard) {
		d.input = in
		d.output = out
	}
}

// NewDashboard creates the dashboard runner.
func NewDashboard(params DashboardParams) *Dashboard {
	return &Dashboard{
		cfg:       params.Config,
		logger:    params.Logger,
		dashboard: params.DashboardUC,
		sessions:  params.SessionUC,
	}
}

// Serve blocks until the seller quits or ctx is cancelled. The stored session must be valid.
func (d *Dashboard) Serve(ctx context.Context, opts ...Option) error {
	for _, opt := range opts {
		opt(d)
	}

	if _, err := d.sessions.DashboardSession(ctx); err != nil {
		return errors.Wrap(err, "dashboard session")
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if d.input != nil || d.output != nil {
		programOpts = append(programOpts, tea.WithInput(d.input), tea.WithOutput(d.output))
	} else {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	m := newModel(ctx, d.dashboard, d.sessions, d.logger, d.cfg.Dashboard.ToastDuration)
	d.logger.Info("[Dashboard] Starting")

	final, err := tea.NewProgram(m, programOpts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "run dashboard")
	}

	if fm, ok := final.(*model); ok {
		d.loggedOut = fm.loggedOut
		if fm.fatal != nil {
			return errors.Wrap(fm.fatal, "fetch current user")
		}
	}

	return nil
}

// LoggedOut reports whether the last run ended with the seller logging out.
func (d *Dashboard) LoggedOut() bool {
	return d.loggedOut
}
