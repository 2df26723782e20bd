package backend

import (
	"context"
	"net/http"
	"strconv"

	"automarket/internal/domain/entity"
)

const ordersPath = "/api/orders"

func orderPath(orderID int64) string {
	return ordersPath + "/" + strconv.FormatInt(orderID, 10)
}

// ListOrders returns every order visible to the session
func (c *Client) ListOrders(ctx context.Context, session entity.Session) ([]*entity.Order, error) {
	var orders []*entity.Order
	if err := c.get(ctx, session, ordersPath, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetOrder returns a single order
func (c *Client) GetOrder(ctx context.Context, session entity.Session, orderID int64) (*entity.Order, error) {
	var order entity.Order
	if err := c.get(ctx, session, orderPath(orderID), &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// CreateOrder creates an order
func (c *Client) CreateOrder(ctx context.Context, session entity.Session, input *entity.CreateOrderInput) (*entity.Order, error) {
	var order entity.Order
	if err := c.send(ctx, session, http.MethodPost, ordersPath, input, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateOrder updates the given fields of an order
func (c *Client) UpdateOrder(ctx context.Context, session entity.Session, orderID int64, input *entity.UpdateOrderInput) (*entity.Order, error) {
	var order entity.Order
	if err := c.send(ctx, session, http.MethodPut, orderPath(orderID), input, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// DeliverOrder asks the backend to deliver the order. Only 200 counts as success.
func (c *Client) DeliverOrder(ctx context.Context, session entity.Session, orderID int64) error {
	_, err := c.executeExact(c.request(ctx, session), http.MethodPost, session.BaseURL, orderPath(orderID)+"/deliver", http.StatusOK)

	return err
}
