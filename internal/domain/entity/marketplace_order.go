package entity

// MarketplaceOrder is the order information read from a marketplace order page.
type MarketplaceOrder struct {
	ShopeeOrderID string      `json:"shopee_order_id" validate:"required"`
	Status        OrderStatus `json:"status" validate:"required"`
	ProductName   string      `json:"product_name"`
}

// NormalizeMarketplaceStatus maps the page label "Paid" to "PAID"; other labels pass through unchanged.
func NormalizeMarketplaceStatus(label string) OrderStatus {
	if label == "Paid" {
		return "PAID"
	}

	return OrderStatus(label)
}
