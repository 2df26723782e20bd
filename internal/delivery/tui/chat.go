package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"automarket/internal/domain/entity"
	"automarket/internal/usecase"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const (
	welcomeMessage  = "Hello! How can I assist you today?"
	fallbackMessage = "Sorry, I encountered an error. Please try again later."

	// transcriptLines is how many trailing messages the chat view keeps on screen
	transcriptLines = 12
)

type chatReplyMsg struct {
	reply *entity.Message
	err   error
}

type agentConfigLoadedMsg struct {
	config *entity.AgentConfig
	err    error
}

type agentToggledMsg struct {
	config *entity.AgentConfig
	err    error
}

type chatScreen struct {
	ctx    context.Context
	uc     usecase.DashboardUsecase
	logger *slog.Logger
	styles *styles

	input    textinput.Model
	messages []entity.Message
	sending  bool

	config        *entity.AgentConfig
	configLoading bool
	toggling      bool
}

func newChatScreen(ctx context.Context, uc usecase.DashboardUsecase, logger *slog.Logger, st *styles) *chatScreen {
	input := textinput.New()
	input.Placeholder = "Type your message..."
	input.CharLimit = 1000
	input.Width = 60

	return &chatScreen{
		ctx:    ctx,
		uc:     uc,
		logger: logger,
		styles: st,
		input:  input,
		messages: []entity.Message{{
			ID:        "welcome",
			Content:   welcomeMessage,
			Sender:    entity.SenderAI,
			Timestamp: time.Now(),
		}},
	}
}

func (s *chatScreen) title() string { return "Chat" }

func (s *chatScreen) help() string {
	if s.input.Focused() {
		return "enter send • esc stop typing"
	}
	if s.config == nil {
		return "r reload config"
	}
	if s.config.IsActive {
		return "i type • a disable agent • r reload config"
	}

	return "a enable agent • r reload config"
}

func (s *chatScreen) capturing() bool { return s.input.Focused() }

func (s *chatScreen) init() tea.Cmd {
	return s.loadConfig()
}

func (s *chatScreen) loadConfig() tea.Cmd {
	s.configLoading = true

	return func() tea.Msg {
		config, err := s.uc.AgentConfig(s.ctx)

		return agentConfigLoadedMsg{config: config, err: err}
	}
}

// canType is false while a message is in flight or the agent is switched off
func (s *chatScreen) canType() bool {
	return !s.sending && (s.config == nil || s.config.IsActive)
}

func (s *chatScreen) send(content string) tea.Cmd {
	s.messages = append(s.messages, entity.Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    entity.SenderUser,
		Timestamp: time.Now(),
	})
	s.input.Reset()
	s.input.Blur()
	s.sending = true

	return func() tea.Msg {
		reply, err := s.uc.SendChatMessage(s.ctx, content)

		return chatReplyMsg{reply: reply, err: err}
	}
}

func (s *chatScreen) toggle() tea.Cmd {
	current := s.config
	active := !current.IsActive
	s.toggling = true

	return func() tea.Msg {
		config, err := s.uc.SetAgentActive(s.ctx, current, active)

		return agentToggledMsg{config: config, err: err}
	}
}

func (s *chatScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case agentConfigLoadedMsg:
		s.configLoading = false
		s.config = msg.config
		if s.config == nil {
			fallback := entity.DefaultAgentConfig()
			s.config = &fallback
		}
		if msg.err != nil {
			s.logger.Error("[Dashboard] Error fetching agent config", slog.Any("error", msg.err))

			return notify(toastError, "Failed to fetch AI agent configuration")
		}
	case agentToggledMsg:
		s.toggling = false
		if msg.err != nil || msg.config == nil {
			s.logger.Error("[Dashboard] Error updating agent config", slog.Any("error", msg.err))

			return notify(toastError, "Failed to update AI agent configuration")
		}
		s.config = msg.config
		if !s.config.IsActive {
			s.input.Blur()

			return notify(toastSuccess, "AI agent disabled successfully")
		}

		return notify(toastSuccess, "AI agent enabled successfully")
	case chatReplyMsg:
		s.sending = false
		if msg.err != nil || msg.reply == nil {
			s.logger.Error("[Dashboard] Error sending message", slog.Any("error", msg.err))
			s.messages = append(s.messages, entity.Message{
				ID:        uuid.NewString(),
				Content:   fallbackMessage,
				Sender:    entity.SenderAI,
				Timestamp: time.Now(),
			})

			return notify(toastError, "Failed to send message")
		}
		s.messages = append(s.messages, *msg.reply)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return nil
}

func (s *chatScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.input.Focused() {
		switch msg.String() {
		case "esc":
			s.input.Blur()

			return nil
		case "enter":
			content := strings.TrimSpace(s.input.Value())
			if content == "" || !s.canType() {
				return nil
			}

			return s.send(content)
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)

		return cmd
	}

	switch msg.String() {
	case "i", "enter":
		if s.canType() {
			return s.input.Focus()
		}
	case "a":
		if s.config != nil && !s.configLoading && !s.toggling {
			return s.toggle()
		}
	case "r":
		if !s.configLoading {
			return s.loadConfig()
		}
	}

	return nil
}

func (s *chatScreen) view(spin string) string {
	var b strings.Builder

	b.WriteString(s.styles.title.Render("AI Chat") + "\n")
	switch {
	case s.configLoading:
		b.WriteString(spin + " Loading agent configuration...\n\n")
	case s.toggling:
		b.WriteString(spin + " Updating agent...\n\n")
	case s.config != nil && s.config.IsActive:
		b.WriteString(s.styles.muted.Render("AI agent: enabled (a: Disable AI Agent)") + "\n\n")
	case s.config != nil:
		b.WriteString(s.styles.muted.Render("AI agent: disabled (a: Enable AI Agent)") + "\n\n")
	}

	messages := s.messages
	if len(messages) > transcriptLines {
		messages = messages[len(messages)-transcriptLines:]
	}
	for _, message := range messages {
		who := s.styles.aiMessage.Render("AI")
		if message.Sender == entity.SenderUser {
			who = s.styles.userMessage.Render("You")
		}
		b.WriteString(s.styles.muted.Render(message.Timestamp.Format("15:04")) + " " + who + ": " + message.Content + "\n")
	}
	b.WriteString("\n")

	switch {
	case s.sending:
		b.WriteString(spin + " Sending...")
	case s.config != nil && !s.config.IsActive:
		b.WriteString(s.styles.muted.Render("Enable the AI agent to chat."))
	default:
		b.WriteString(s.input.View())
	}

	return b.String()
}
