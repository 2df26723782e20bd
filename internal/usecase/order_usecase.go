package usecase

import (
	"context"

	"automarket/internal/domain/entity"
)

// OrderUsecase is the agent side of order polling and delivery.
type OrderUsecase interface {
	// FetchOrders lists orders with the stored credentials. Missing credentials
	// or any failure yield an empty list.
	FetchOrders(ctx context.Context) []*entity.Order

	// CheckForNewOrders raises at most one notification for paid, undelivered orders
	// and returns how many orders it reported.
	CheckForNewOrders(ctx context.Context) int

	// DeliverOrder triggers delivery and reports whether the backend accepted it.
	DeliverOrder(ctx context.Context, orderID int64) bool

	// ProcessMarketplaceOrder delivers the backend order matching a marketplace order.
	ProcessMarketplaceOrder(ctx context.Context, order *entity.MarketplaceOrder) (bool, error)
}
