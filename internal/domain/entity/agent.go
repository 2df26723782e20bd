package entity

// StoreLevel is the granularity at which the AI agent's memory and config are scoped.
type StoreLevel string

const (
	// StoreLevelStore scopes the agent to the whole store.
	StoreLevelStore StoreLevel = "store"
	// StoreLevelProduct scopes the agent per product.
	StoreLevelProduct StoreLevel = "product"
	// StoreLevelUserID scopes the agent per buyer.
	StoreLevelUserID StoreLevel = "user_id"
)

// AgentConfig is the seller's AI sales agent configuration.
type AgentConfig struct {
	IsActive     bool       `json:"is_active"`
	StoreLevel   StoreLevel `json:"store_level"`
	FAQThreshold float64    `json:"faq_threshold"`
	CustomPrompt *string    `json:"custom_prompt,omitempty"`
}

// DefaultAgentConfig is shown when the configuration cannot be fetched.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		IsActive:     true,
		StoreLevel:   StoreLevelUserID,
		FAQThreshold: 0.75,
	}
}

// AgentResponse is returned by the configure endpoint.
type AgentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FAQQuery asks the backend FAQ search.
type FAQQuery struct {
	Question string         `json:"question" validate:"required"`
	Context  map[string]any `json:"context,omitempty"`
}
