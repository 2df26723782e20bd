package tui

import (
	"context"
	"log/slog"
	"strconv"

	"automarket/internal/usecase"
	"automarket/internal/util"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type summaryLoadedMsg struct {
	summary *usecase.Summary
	err     error
}

type summaryScreen struct {
	ctx    context.Context
	uc     usecase.DashboardUsecase
	logger *slog.Logger
	styles *styles

	loading bool
	summary *usecase.Summary
}

func newSummaryScreen(ctx context.Context, uc usecase.DashboardUsecase, logger *slog.Logger, st *styles) *summaryScreen {
	return &summaryScreen{ctx: ctx, uc: uc, logger: logger, styles: st}
}

func (s *summaryScreen) title() string { return "Summary" }

func (s *summaryScreen) help() string { return "r refresh" }

func (s *summaryScreen) capturing() bool { return false }

func (s *summaryScreen) init() tea.Cmd {
	return s.load()
}

func (s *summaryScreen) load() tea.Cmd {
	s.loading = true

	return func() tea.Msg {
		summary, err := s.uc.Summary(s.ctx)

		return summaryLoadedMsg{summary: summary, err: err}
	}
}

func (s *summaryScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case summaryLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.logger.Error("[Dashboard] Error fetching dashboard data", slog.Any("error", msg.err))

			return notify(toastError, "Failed to fetch dashboard data")
		}
		s.summary = msg.summary
	case tea.KeyMsg:
		if msg.String() == "r" && !s.loading {
			return s.load()
		}
	}

	return nil
}

func (s *summaryScreen) view(spin string) string {
	if s.loading {
		return spin + " Loading dashboard..."
	}

	summary := s.summary
	if summary == nil {
		summary = &usecase.Summary{}
	}

	return s.styles.title.Render("Dashboard") + "\n" + lipgloss.JoinHorizontal(lipgloss.Top,
		s.card("Products", strconv.Itoa(summary.ProductCount)),
		s.card("Orders", strconv.Itoa(summary.OrderCount)),
		s.card("Total Sales", util.FormatPrice(summary.TotalSales)),
	)
}

func (s *summaryScreen) card(label, value string) string {
	return s.styles.card.Render(s.styles.cardLabel.Render(label) + "\n" + s.styles.cardValue.Render(value))
}
