package impl

import (
	"context"
	"log/slog"

	"automarket/internal/domain/entity"
	"automarket/internal/domain/repository"
	"automarket/internal/domain/service"
	"automarket/internal/errors"
	"automarket/internal/usecase"

	"go.uber.org/fx"
)

const (
	alertExtractionFailed = "Could not extract order information"
	alertProcessed        = "Order processed successfully!"
	alertProcessFailed    = "Failed to process order. Please try again."
)

// pageService implements the PageUsecase interface.
type pageService struct {
	adapter        service.PageAdapter
	credentialRepo repository.CredentialRepository
	relay          service.AgentRelay
	logger         *slog.Logger
}

// PageServiceParams holds dependencies for PageService, injected by Fx.
type PageServiceParams struct {
	fx.In

	Adapter        service.PageAdapter
	CredentialRepo repository.CredentialRepository
	Relay          service.AgentRelay
	Logger         *slog.Logger
}

// NewPageService is the constructor for pageService.
func NewPageService(params PageServiceParams) usecase.PageUsecase {
	return &pageService{
		adapter:        params.Adapter,
		credentialRepo: params.CredentialRepo,
		relay:          params.Relay,
		logger:         params.Logger,
	}
}

// Supports reports whether the adapter handles url.
func (s *pageService) Supports(url string) bool {
	return s.adapter.Matches(url)
}

// Inspect extracts the order without touching the page.
func (s *pageService) Inspect(dom service.PageDOM) (*entity.MarketplaceOrder, bool) {
	return s.adapter.ExtractOrder(dom)
}

// Inject adds the deliver button once per page, only for a logged in seller.
func (s *pageService) Inject(ctx context.Context, dom service.PageDOM) (bool, error) {
	if !s.adapter.Matches(dom.URL()) {
		return false, nil
	}

	creds, err := s.credentialRepo.Load(ctx)
	if err != nil {
		return false, errors.Wrap(err, "load credentials")
	}
	if !creds.IsLoggedIn {
		s.logger.Debug("[Page] Not logged in, skipping injection", slog.String("url", dom.URL()))

		return false, nil
	}

	if !s.adapter.CanInject(dom) {
		return false, nil
	}

	if err := s.adapter.InjectButton(dom); err != nil {
		return false, errors.Wrap(err, "inject button")
	}

	s.logger.Info("[Page] Deliver button injected", slog.String("url", dom.URL()))

	return true, nil
}

// HandleDeliverClick relays the page order to the agent and reports the outcome with alerts.
func (s *pageService) HandleDeliverClick(ctx context.Context, dom service.PageDOM) bool {
	order, ok := s.adapter.ExtractOrder(dom)
	if !ok {
		dom.Alert(alertExtractionFailed)

		return false
	}

	delivered, err := s.relay.ProcessMarketplaceOrder(ctx, order)
	if err != nil || !delivered {
		s.logger.Error("[Page] Failed to process order",
			slog.String("shopee_order_id", order.ShopeeOrderID),
			slog.Any("error", err),
		)
		dom.Alert(alertProcessFailed)

		return false
	}

	dom.Alert(alertProcessed)
	if err := s.adapter.MarkDelivered(dom); err != nil {
		s.logger.Warn("[Page] Failed to mark button delivered", slog.Any("error", err))
	}

	return true
}
