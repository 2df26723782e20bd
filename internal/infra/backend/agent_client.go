package backend

import (
	"context"
	"net/http"
	"strconv"

	"automarket/internal/domain/entity"
)

// SendChatMessage sends one chat turn to the AI sales agent
func (c *Client) SendChatMessage(ctx context.Context, session entity.Session, message *entity.ChatMessage) (*entity.ChatResponse, error) {
	var reply entity.ChatResponse
	if err := c.send(ctx, session, http.MethodPost, "/api/chat/send", message, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// GetAgentConfig returns the agent configuration
func (c *Client) GetAgentConfig(ctx context.Context, session entity.Session) (*entity.AgentConfig, error) {
	var cfg entity.AgentConfig
	if err := c.get(ctx, session, "/api/ai/config", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigureAgent replaces the agent configuration
func (c *Client) ConfigureAgent(ctx context.Context, session entity.Session, cfg *entity.AgentConfig) (*entity.AgentResponse, error) {
	var resp entity.AgentResponse
	if err := c.send(ctx, session, http.MethodPost, "/api/ai/configure", cfg, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// QueryFAQ searches the seller's FAQ
func (c *Client) QueryFAQ(ctx context.Context, session entity.Session, query *entity.FAQQuery) (map[string]any, error) {
	result := map[string]any{}
	if err := c.send(ctx, session, http.MethodPost, "/api/ai/faq", query, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetUserMemory returns what the agent remembers about a buyer
func (c *Client) GetUserMemory(ctx context.Context, session entity.Session, userID int64) (map[string]any, error) {
	result := map[string]any{}
	if err := c.get(ctx, session, "/api/ai/memory/"+strconv.FormatInt(userID, 10), &result); err != nil {
		return nil, err
	}

	return result, nil
}
