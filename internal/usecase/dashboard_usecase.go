package usecase

import (
	"context"

	"automarket/internal/domain/entity"
)

// Summary is the dashboard overview.
type Summary struct {
	ProductCount int
	OrderCount   int
	// TotalSales sums orders that are paid or delivered.
	TotalSales float64
}

// DashboardUsecase backs the dashboard screens. Every call loads the dashboard session itself.
type DashboardUsecase interface {
	CurrentUser(ctx context.Context) (*entity.User, error)
	Summary(ctx context.Context) (*Summary, error)

	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *entity.CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID int64, input *entity.UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error

	ListOrders(ctx context.Context) ([]*entity.Order, error)
	DeliverOrder(ctx context.Context, orderID int64) error

	// SendChatMessage returns the agent's reply as a transcript message.
	SendChatMessage(ctx context.Context, content string) (*entity.Message, error)

	// AgentConfig returns the agent configuration, or the default one together with the fetch error.
	AgentConfig(ctx context.Context) (*entity.AgentConfig, error)

	// SetAgentActive sends the toggled configuration and returns it only once the backend confirmed.
	SetAgentActive(ctx context.Context, current *entity.AgentConfig, active bool) (*entity.AgentConfig, error)
}
