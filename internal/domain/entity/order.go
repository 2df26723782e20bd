package entity

import (
	"strings"
	"time"
)

// OrderStatus represents the backend lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending indicates the order has not been paid yet.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusPaid indicates the buyer paid and the product awaits delivery.
	OrderStatusPaid OrderStatus = "paid"
	// OrderStatusDelivered indicates the digital product was handed over.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates the order was cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// Is compares statuses case-insensitively; the backend and the marketplace disagree on casing.
func (s OrderStatus) Is(other OrderStatus) bool {
	return strings.EqualFold(string(s), string(other))
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch OrderStatus(strings.ToLower(string(s))) {
	case OrderStatusPending, OrderStatusPaid, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is a snapshot of a backend order.
type Order struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"user_id"`
	ProductID     int64       `json:"product_id"`
	Quantity      int         `json:"quantity"`
	TotalPrice    float64     `json:"total_price"`
	Status        OrderStatus `json:"status"`
	ShopeeOrderID *string     `json:"shopee_order_id,omitempty"` // Marketplace order reference, if imported.
	DeliveryData  *string     `json:"delivery_data,omitempty"`   // Delivery payload written by the backend.
	IsDelivered   bool        `json:"is_delivered"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     *time.Time  `json:"updated_at,omitempty"`
}

// AwaitingDelivery reports whether the order is paid and not yet delivered.
func (o *Order) AwaitingDelivery() bool {
	return o.Status.Is(OrderStatusPaid) && !o.IsDelivered
}

// MarketplaceID returns the marketplace order reference or an empty string.
func (o *Order) MarketplaceID() string {
	if o.ShopeeOrderID == nil {
		return ""
	}

	return *o.ShopeeOrderID
}

// CreateOrderInput is the payload for creating an order.
type CreateOrderInput struct {
	ProductID     int64   `json:"product_id" validate:"required,gt=0"`
	Quantity      *int    `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	TotalPrice    float64 `json:"total_price" validate:"gte=0"`
	ShopeeOrderID *string `json:"shopee_order_id,omitempty"`
}

// UpdateOrderInput is the payload for updating an order; nil fields are left unchanged.
type UpdateOrderInput struct {
	Status      *OrderStatus `json:"status,omitempty"`
	IsDelivered *bool        `json:"is_delivered,omitempty"`
}

// FilterAwaitingDelivery returns the orders that are paid and not yet delivered.
func FilterAwaitingDelivery(orders []*Order) []*Order {
	pending := make([]*Order, 0, len(orders))
	for _, order := range orders {
		if order != nil && order.AwaitingDelivery() {
			pending = append(pending, order)
		}
	}

	return pending
}
