package backend

import (
	"context"
	"net/http"
	"strconv"

	"automarket/internal/domain/entity"
)

const productsPath = "/api/products"

func productPath(productID int64) string {
	return productsPath + "/" + strconv.FormatInt(productID, 10)
}

// ListProducts returns the seller's products
func (c *Client) ListProducts(ctx context.Context, session entity.Session) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := c.get(ctx, session, productsPath, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct returns one product
func (c *Client) GetProduct(ctx context.Context, session entity.Session, productID int64) (*entity.Product, error) {
	var product entity.Product
	if err := c.get(ctx, session, productPath(productID), &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// CreateProduct creates a product
func (c *Client) CreateProduct(ctx context.Context, session entity.Session, input *entity.CreateProductInput) (*entity.Product, error) {
	var product entity.Product
	if err := c.send(ctx, session, http.MethodPost, productsPath, input, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateProduct updates the given fields of a product
func (c *Client) UpdateProduct(ctx context.Context, session entity.Session, productID int64, input *entity.UpdateProductInput) (*entity.Product, error) {
	var product entity.Product
	if err := c.send(ctx, session, http.MethodPut, productPath(productID), input, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// DeleteProduct deletes a product
func (c *Client) DeleteProduct(ctx context.Context, session entity.Session, productID int64) error {
	return c.send(ctx, session, http.MethodDelete, productPath(productID), nil, nil)
}
