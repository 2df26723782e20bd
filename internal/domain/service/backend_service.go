// Package service defines the contracts of external systems the use cases depend on.
package service

import (
	"context"

	"automarket/internal/domain/entity"
)

// OrderAPI covers the order endpoints of the platform backend.
type OrderAPI interface {
	ListOrders(ctx context.Context, session entity.Session) ([]*entity.Order, error)
	GetOrder(ctx context.Context, session entity.Session, orderID int64) (*entity.Order, error)
	CreateOrder(ctx context.Context, session entity.Session, input *entity.CreateOrderInput) (*entity.Order, error)
	UpdateOrder(ctx context.Context, session entity.Session, orderID int64, input *entity.UpdateOrderInput) (*entity.Order, error)

	// DeliverOrder succeeds only when the backend answers 200.
	DeliverOrder(ctx context.Context, session entity.Session, orderID int64) error
}

// ProductAPI covers the product endpoints of the platform backend.
type ProductAPI interface {
	ListProducts(ctx context.Context, session entity.Session) ([]*entity.Product, error)
	GetProduct(ctx context.Context, session entity.Session, productID int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, session entity.Session, input *entity.CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, session entity.Session, productID int64, input *entity.UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, session entity.Session, productID int64) error
}

// AuthAPI covers dashboard authentication. Login and Register are unauthenticated.
type AuthAPI interface {
	Login(ctx context.Context, baseURL string, credentials *entity.LoginCredentials) (*entity.AuthResponse, error)
	Register(ctx context.Context, baseURL string, input *entity.RegisterInput) (*entity.User, error)
	CurrentUser(ctx context.Context, session entity.Session) (*entity.User, error)
}

// AgentAPI covers the AI sales agent endpoints.
type AgentAPI interface {
	SendChatMessage(ctx context.Context, session entity.Session, message *entity.ChatMessage) (*entity.ChatResponse, error)
	GetAgentConfig(ctx context.Context, session entity.Session) (*entity.AgentConfig, error)
	ConfigureAgent(ctx context.Context, session entity.Session, cfg *entity.AgentConfig) (*entity.AgentResponse, error)
	QueryFAQ(ctx context.Context, session entity.Session, query *entity.FAQQuery) (map[string]any, error)
	GetUserMemory(ctx context.Context, session entity.Session, userID int64) (map[string]any, error)
}
