// Package tui implements the seller dashboard as a bubbletea program.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"automarket/internal/domain/entity"
	"automarket/internal/usecase"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// screen is one dashboard tab. Screens share no state; each loads its own data.
type screen interface {
	title() string
	init() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	view(spin string) string
	help() string
	// capturing reports whether keys belong to the screen (text input, confirmation prompt).
	capturing() bool
}

type toastLevel int

const (
	toastSuccess toastLevel = iota
	toastError
)

type toastMsg struct {
	level toastLevel
	text  string
}

type toastExpiredMsg struct {
	seq int
}

type userLoadedMsg struct {
	user *entity.User
	err  error
}

type loggedOutMsg struct {
	err error
}

func notify(level toastLevel, text string) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{level: level, text: text}
	}
}

type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// model is the root dashboard model: header, tabs, the active screen and a toast line.
type model struct {
	ctx      context.Context
	uc       usecase.DashboardUsecase
	sessions usecase.SessionUsecase
	logger   *slog.Logger
	styles   *styles
	spinner  spinner.Model

	screens []screen
	active  int

	user *entity.User

	toast    *toastMsg
	toastSeq int
	toastTTL time.Duration
	tick     tickFunc

	// fatal ends the program, e.g. when the session is no longer accepted
	fatal     error
	loggedOut bool
}

func newModel(ctx context.Context, uc usecase.DashboardUsecase, sessions usecase.SessionUsecase, logger *slog.Logger, toastTTL time.Duration) *model {
	st := newStyles()
	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return &model{
		ctx:      ctx,
		uc:       uc,
		sessions: sessions,
		logger:   logger,
		styles:   st,
		spinner:  spin,
		screens: []screen{
			newSummaryScreen(ctx, uc, logger, st),
			newProductsScreen(ctx, uc, logger, st),
			newOrdersScreen(ctx, uc, logger, st),
			newChatScreen(ctx, uc, logger, st),
		},
		toastTTL: toastTTL,
		tick:     tea.Tick,
	}
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.loadUser()}
	for _, s := range m.screens {
		cmds = append(cmds, s.init())
	}

	return tea.Batch(cmds...)
}

func (m *model) loadUser() tea.Cmd {
	return func() tea.Msg {
		user, err := m.uc.CurrentUser(m.ctx)

		return userLoadedMsg{user: user, err: err}
	}
}

func (m *model) logout() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.sessions.DashboardLogout(m.ctx)}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case toastMsg:
		m.toastSeq++
		m.toast = &msg
		seq := m.toastSeq

		return m, m.tick(m.toastTTL, func(time.Time) tea.Msg {
			return toastExpiredMsg{seq: seq}
		})
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}

		return m, nil
	case userLoadedMsg:
		if msg.err != nil {
			m.logger.Error("[Dashboard] Failed to fetch user", slog.Any("error", msg.err))
			m.fatal = msg.err

			return m, tea.Quit
		}
		m.user = msg.user

		return m, nil
	case loggedOutMsg:
		if msg.err != nil {
			m.logger.Error("[Dashboard] Logout failed", slog.Any("error", msg.err))

			return m, notify(toastError, "Failed to log out")
		}
		m.loggedOut = true

		return m, tea.Quit
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	// Everything else is a screen result or a resize; screens ignore what is not theirs
	cmds := make([]tea.Cmd, 0, len(m.screens))
	for _, s := range m.screens {
		cmds = append(cmds, s.update(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	current := m.screens[m.active]
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if current.capturing() {
		return current.update(msg)
	}

	switch key := msg.String(); key {
	case "q":
		return tea.Quit
	case "L":
		return m.logout()
	case "tab", "right":
		m.active = (m.active + 1) % len(m.screens)

		return nil
	case "shift+tab", "left":
		m.active = (m.active + len(m.screens) - 1) % len(m.screens)

		return nil
	case "1", "2", "3", "4":
		m.active = int(key[0]-'1') % len(m.screens)

		return nil
	}

	return current.update(msg)
}

func (m *model) View() string {
	var b strings.Builder

	header := m.styles.header.Render("AUTO Marketplace")
	if m.user != nil {
		name := m.user.FullName
		if name == "" {
			name = m.user.Email
		}
		header += "  " + m.styles.user.Render(name)
	}
	b.WriteString(header + "\n\n")

	tabs := make([]string, 0, len(m.screens))
	for i, s := range m.screens {
		label := fmt.Sprintf("%d %s", i+1, s.title())
		if i == m.active {
			tabs = append(tabs, m.styles.tabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.tabInactive.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")

	current := m.screens[m.active]
	b.WriteString(current.view(m.spinner.View()) + "\n")

	if m.toast != nil {
		style := m.styles.toastSuccess
		if m.toast.level == toastError {
			style = m.styles.toastError
		}
		b.WriteString("\n" + style.Render(m.toast.text) + "\n")
	}

	help := current.help()
	if !current.capturing() {
		help += " • tab/1-4 switch • L logout • q quit"
	}
	b.WriteString(m.styles.help.Render(help))

	return b.String()
}
