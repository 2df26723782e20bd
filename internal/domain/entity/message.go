package entity

import "time"

// Sender identifies who wrote a chat message.
type Sender string

const (
	// SenderUser is the seller typing in the dashboard.
	SenderUser Sender = "user"
	// SenderAI is the backend agent.
	SenderAI Sender = "ai"
)

// Message is one turn of the dashboard chat transcript. It lives only in memory.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatMessage is the payload sent to the chat endpoint.
type ChatMessage struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ChatResponse is the agent's reply.
type ChatResponse struct {
	Message string `json:"message"`
}
