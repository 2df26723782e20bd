// Package shopee holds the Shopee order page selectors and labels.
package shopee

import (
	"strings"

	"automarket/internal/domain/entity"
	"automarket/internal/domain/service"
)

const (
	selectorOrderID     = ".order-id"
	selectorOrderStatus = ".order-status"
	selectorProductName = ".product-name"
	selectorActions     = ".order-actions"

	buttonID    = "auto-deliver-button"
	buttonLabel = "Deliver with AUTO"
	buttonColor = "#4f46e5"

	deliveredLabel = "Delivered ✓"
	deliveredColor = "#22c55e"
)

type adapter struct{}

// NewAdapter returns the Shopee page adapter
func NewAdapter() service.PageAdapter {
	return adapter{}
}

// Matches requires both "shopee" and "order" in the URL
func (adapter) Matches(url string) bool {
	return strings.Contains(url, "shopee") && strings.Contains(url, "order")
}

// ExtractOrder reads id, status and product name; all three must be present
func (a adapter) ExtractOrder(dom service.PageDOM) (*entity.MarketplaceOrder, bool) {
	if !a.Matches(dom.URL()) {
		return nil, false
	}

	orderID, ok := dom.Text(selectorOrderID)
	if !ok {
		return nil, false
	}
	status, ok := dom.Text(selectorOrderStatus)
	if !ok {
		return nil, false
	}
	productName, ok := dom.Text(selectorProductName)
	if !ok {
		return nil, false
	}

	return &entity.MarketplaceOrder{
		ShopeeOrderID: orderID,
		Status:        entity.NormalizeMarketplaceStatus(status),
		ProductName:   productName,
	}, true
}

// CanInject reports whether the actions container exists and holds no button yet
func (adapter) CanInject(dom service.PageDOM) bool {
	return dom.Exists(selectorActions) && !dom.Exists("#"+buttonID)
}

// InjectButton appends the deliver button to the actions container
func (adapter) InjectButton(dom service.PageDOM) error {
	return dom.AppendButton(selectorActions, buttonID, service.ButtonState{
		Label:      buttonLabel,
		Background: buttonColor,
	})
}

// MarkDelivered turns the button green and disables it
func (adapter) MarkDelivered(dom service.PageDOM) error {
	return dom.SetButtonState(buttonID, service.ButtonState{
		Label:      deliveredLabel,
		Background: deliveredColor,
		Disabled:   true,
	})
}

// ButtonID returns the injected button id
func (adapter) ButtonID() string {
	return buttonID
}
