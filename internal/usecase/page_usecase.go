package usecase

import (
	"context"

	"automarket/internal/domain/entity"
	"automarket/internal/domain/service"
)

// PageUsecase runs the marketplace page integration against any PageDOM.
type PageUsecase interface {
	// Supports reports whether url is a marketplace order page.
	Supports(url string) bool

	// Inspect extracts the order shown on the page.
	Inspect(dom service.PageDOM) (*entity.MarketplaceOrder, bool)

	// Inject adds the deliver button when the page qualifies and the seller is logged in.
	// It reports whether a button was added.
	Inject(ctx context.Context, dom service.PageDOM) (bool, error)

	// HandleDeliverClick runs the click flow and reports whether the order was delivered.
	HandleDeliverClick(ctx context.Context, dom service.PageDOM) bool
}
