package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	"automarket/internal/domain/service"
	"automarket/internal/errors"
	"automarket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	sessions   usecase.SessionUsecase
	authAPI    service.AuthAPI
	orderAPI   service.OrderAPI
	productAPI service.ProductAPI
	agentAPI   service.AgentAPI
	now        func() time.Time
	logger     *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	Sessions   usecase.SessionUsecase
	AuthAPI    service.AuthAPI
	OrderAPI   service.OrderAPI
	ProductAPI service.ProductAPI
	AgentAPI   service.AgentAPI
	Logger     *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		sessions:   params.Sessions,
		authAPI:    params.AuthAPI,
		orderAPI:   params.OrderAPI,
		productAPI: params.ProductAPI,
		agentAPI:   params.AgentAPI,
		now:        time.Now,
		logger:     params.Logger,
	}
}

// CurrentUser returns the logged in account.
func (s *dashboardService) CurrentUser(ctx context.Context) (*entity.User, error) {
	session, err := s.sessions.DashboardSession(ctx)
	if err != nil {
		return nil, err
	}

	return s.authAPI.CurrentUser(ctx, session)
}

// Summary loads products and orders concurrently.
func (s *dashboardService) Summary(ctx context.Context) (*usecase.Summary, error) {
	session, err := s.sessions.DashboardSession(ctx)
	if err != nil {
		return nil, err
	}

	var (
		products []*entity.Product
		orders   []*entity.Order
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		products, err = s.productAPI.ListProducts(groupCtx, session)

		return errors.Wrap(err, "list products")
	})
	group.Go(func() error {
		var err error
		orders, err = s.orderAPI.ListOrders(groupCtx, session)

		return errors.Wrap(err, "list orders")
	})
	if err := group.Wait(); err != nil {
		s.logger.Error("[Dashboard] Error fetching dashboard data", slog.Any("error", err))

		return nil, err
	}

	summary := &usecase.Summary{
		ProductCount: len(products),
		OrderCount:   len(orders),
	}
	for _, order := range orders {
		if order.Status.Is(entity.OrderStatusPaid) || order.Status.Is(entity.OrderStatusDelivered) {
			summary.TotalSales += order.TotalPrice
		}
	}

	return summary, nil
}

// ListProducts returns the seller's products.
func (s *dashboardService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	session, err := s.sessions.DashboardSession(ctx)
	if err != nil {
		return nil, err
	}

	return s.productAPI.ListProducts(ctx, session)
}

// GetProduct returns one product as the backend currently has it.
func (s *dashboardService) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	session, err := s.sessions.DashboardSession(ctx)
	if err != nil {
		return nil, err
	}

	return s.productAPI.GetProduct(ctx, session, productID)
}

// CreateProduct adds a product.
func (s *dashboardService) CreateProduct(ctx context.Context, input *entity.CreateProductInput) (*entity.Product, error) {
	session, err := s.sessions.DashboardSession(ctx)
	if err != nil {
		return nil, err
	}

	return s.productAPI.CreateProduct(ctx, session, input)
}

// UpdateProduct changes the given fields of a product.
func (s *dashboardService) UpdateProduct(ctx context.Context, productID int64, input *entity.UpdateProductInput) (*entity.Product, error) {
	session, err := s.sessions.DashboardSession(ctx)
	if err != nil {
		return nil, err
	}

	return s.productAPI.UpdateProduct(ctx, session, productID, input)
}

// DeleteProduct removes a product.
func (s *dashboardService) DeleteProduct(ctx context.Context, productID int64) error {
	session, err := s.sessions.DashboardSession(ctx)
	if err != nil {
		return err
	}

	return s.productAPI.DeleteProduct(ctx, session, productID)
}

// ListOrders returns every order of the seller.
func (s *dashboardService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	session, err := s.sessions.DashboardSession(ctx)
	if err != nil {
		return nil, err
	}

	return s.orderAPI.ListOrders(ctx, session)
}

// DeliverOrder triggers delivery with the dashboard token.
func (s *dashboardService) DeliverOrder(ctx context.Context, orderID int64) error {
	session, err := s.sessions.DashboardSession(ctx)
	if err != nil {
		return err
	}

	return s.orderAPI.DeliverOrder(ctx, session, orderID)
}

// SendChatMessage forwards content to the agent and wraps the reply as a transcript message.
func (s *dashboardService) SendChatMessage(ctx context.Context, content string) (*entity.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is empty")
	}

	session, err := s.sessions.DashboardSession(ctx)
	if err != nil {
		return nil, err
	}

	reply, err := s.agentAPI.SendChatMessage(ctx, session, &entity.ChatMessage{Content: content})
	if err != nil {
		s.logger.Error("[Dashboard] Error sending message", slog.Any("error", err))

		return nil, err
	}

	return &entity.Message{
		ID:        uuid.NewString(),
		Content:   reply.Message,
		Sender:    entity.SenderAI,
		Timestamp: s.now(),
	}, nil
}

// AgentConfig falls back to the default configuration and still reports the error.
func (s *dashboardService) AgentConfig(ctx context.Context) (*entity.AgentConfig, error) {
	fallback := entity.DefaultAgentConfig()

	session, err := s.sessions.DashboardSession(ctx)
	if err != nil {
		return &fallback, err
	}

	cfg, err := s.agentAPI.GetAgentConfig(ctx, session)
	if err != nil {
		s.logger.Error("[Dashboard] Error fetching AI config", slog.Any("error", err))

		return &fallback, err
	}

	return cfg, nil
}

// SetAgentActive returns the new configuration only after the backend confirmed it.
func (s *dashboardService) SetAgentActive(ctx context.Context, current *entity.AgentConfig, active bool) (*entity.AgentConfig, error) {
	if current == nil {
		fallback := entity.DefaultAgentConfig()
		current = &fallback
	}

	session, err := s.sessions.DashboardSession(ctx)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.IsActive = active

	resp, err := s.agentAPI.ConfigureAgent(ctx, session, &updated)
	if err != nil {
		s.logger.Error("[Dashboard] Error updating AI config", slog.Any("error", err))

		return nil, err
	}
	if resp != nil && !resp.Success {
		return nil, domainerrors.ErrUnexpectedStatus.WithDetails(resp.Message)
	}

	return &updated, nil
}
