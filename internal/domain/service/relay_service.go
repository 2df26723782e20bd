package service

import (
	"context"

	"automarket/internal/domain/entity"
)

// AgentRelay sends typed messages to the running agent.
type AgentRelay interface {
	FetchOrders(ctx context.Context) ([]*entity.Order, error)
	DeliverOrder(ctx context.Context, orderID int64) (bool, error)
	ProcessMarketplaceOrder(ctx context.Context, order *entity.MarketplaceOrder) (bool, error)
}
