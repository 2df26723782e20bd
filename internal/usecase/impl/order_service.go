package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"automarket/config"
	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	"automarket/internal/domain/repository"
	"automarket/internal/domain/service"
	"automarket/internal/usecase"

	"go.uber.org/fx"
)

const defaultNotificationTitle = "AUTO Marketplace"

// orderService implements the OrderUsecase interface.
type orderService struct {
	credentialRepo repository.CredentialRepository
	orderAPI       service.OrderAPI
	notifier       service.Notifier
	recorder       service.ActivityRecorder
	title          string
	notified       *notifiedSet
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	OrderAPI       service.OrderAPI
	Notifier       service.Notifier
	Recorder       service.ActivityRecorder
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	svc := &orderService{
		credentialRepo: params.CredentialRepo,
		orderAPI:       params.OrderAPI,
		notifier:       params.Notifier,
		recorder:       params.Recorder,
		title:          defaultNotificationTitle,
		logger:         params.Logger,
	}

	if params.Config != nil {
		if params.Config.Poller.NotificationTitle != "" {
			svc.title = params.Config.Poller.NotificationTitle
		}
		if params.Config.Poller.Dedupe {
			svc.notified = newNotifiedSet()
		}
	}

	return svc
}

// FetchOrders lists orders, degrading to an empty list on any failure.
func (s *orderService) FetchOrders(ctx context.Context) []*entity.Order {
	orders, err := s.listOrders(ctx)
	if err != nil {
		s.logger.Error("[Orders] Error fetching orders", slog.Any("error", err))

		return []*entity.Order{}
	}

	return orders
}

// CheckForNewOrders notifies once about every paid order awaiting delivery.
func (s *orderService) CheckForNewOrders(ctx context.Context) int {
	creds, err := s.credentialRepo.Load(ctx)
	if err != nil {
		s.logger.Error("[Orders] Failed to load credentials", slog.Any("error", err))
		s.recorder.PollCompleted(0, err)

		return 0
	}
	if !creds.Ready() {
		s.logger.Debug("[Orders] Not logged in, skipping check")

		return 0
	}

	orders, err := s.orderAPI.ListOrders(ctx, creds.AgentSession())
	if err != nil {
		s.logger.Error("[Orders] Error fetching orders", slog.Any("error", err))
		s.recorder.PollCompleted(0, err)

		return 0
	}

	pending := entity.FilterAwaitingDelivery(orders)
	s.recorder.PollCompleted(len(pending), nil)

	if s.notified != nil {
		pending = s.notified.unseen(pending)
	}
	if len(pending) == 0 {
		return 0
	}

	message := fmt.Sprintf("You have %d new paid order(s) ready for delivery!", len(pending))
	err = s.notifier.Notify(ctx, s.title, message)
	s.recorder.NotificationSent(err)
	if err != nil {
		s.logger.Error("[Orders] Failed to send notification", slog.Any("error", err))

		return len(pending)
	}
	if s.notified != nil {
		s.notified.remember(pending)
	}

	return len(pending)
}

// DeliverOrder triggers delivery; false covers missing credentials, transport errors and non-200 answers.
func (s *orderService) DeliverOrder(ctx context.Context, orderID int64) bool {
	creds, err := s.credentialRepo.Load(ctx)
	if err != nil {
		s.logger.Error("[Orders] Failed to load credentials", slog.Any("error", err))

		return false
	}
	if !creds.Ready() {
		s.logger.Error("[Orders] API URL or API Key not set")

		return false
	}

	err = s.orderAPI.DeliverOrder(ctx, creds.AgentSession(), orderID)
	s.recorder.DeliveryAttempted(err == nil)
	if err != nil {
		s.logger.Error("[Orders] Error delivering product",
			slog.Int64("order_id", orderID),
			slog.Any("error", err),
		)

		return false
	}

	s.logger.Info("[Orders] Order delivered", slog.Int64("order_id", orderID))

	return true
}

// ProcessMarketplaceOrder finds the backend order for a marketplace reference and delivers it.
func (s *orderService) ProcessMarketplaceOrder(ctx context.Context, order *entity.MarketplaceOrder) (bool, error) {
	if order == nil || strings.TrimSpace(order.ShopeeOrderID) == "" {
		return false, domainerrors.ErrExtractionFailed
	}

	orders, err := s.listOrders(ctx)
	if err != nil {
		return false, err
	}

	var match *entity.Order
	for _, candidate := range orders {
		if candidate != nil && candidate.MarketplaceID() == order.ShopeeOrderID {
			match = candidate

			break
		}
	}

	switch {
	case match == nil:
		return false, domainerrors.ErrOrderNotFound.WithDetails(order.ShopeeOrderID)
	case match.IsDelivered || match.Status.Is(entity.OrderStatusDelivered):
		return true, nil
	case !match.Status.Is(entity.OrderStatusPaid):
		return false, domainerrors.ErrOrderNotPaid.WithDetails(match.Status.String())
	}

	if !s.DeliverOrder(ctx, match.ID) {
		return false, domainerrors.ErrDeliveryFailed.WithDetails(fmt.Sprintf("order %d", match.ID))
	}

	return true, nil
}

func (s *orderService) listOrders(ctx context.Context) ([]*entity.Order, error) {
	creds, err := s.credentialRepo.Load(ctx)
	if err != nil {
		return nil, domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}
	if !creds.Ready() {
		return nil, domainerrors.ErrMissingCredentials
	}

	orders, err := s.orderAPI.ListOrders(ctx, creds.AgentSession())
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// notifiedSet remembers which orders were already reported.
type notifiedSet struct {
	mu  sync.Mutex
	ids map[int64]struct{}
}

func newNotifiedSet() *notifiedSet {
	return &notifiedSet{ids: make(map[int64]struct{})}
}

// unseen returns the orders not reported yet and forgets ids that left the pending set.
func (n *notifiedSet) unseen(pending []*entity.Order) []*entity.Order {
	n.mu.Lock()
	defer n.mu.Unlock()

	kept := make(map[int64]struct{}, len(n.ids))
	fresh := make([]*entity.Order, 0, len(pending))
	for _, order := range pending {
		if _, seen := n.ids[order.ID]; seen {
			kept[order.ID] = struct{}{}

			continue
		}
		fresh = append(fresh, order)
	}
	n.ids = kept

	return fresh
}

// remember marks orders as reported once their notification went out
func (n *notifiedSet) remember(orders []*entity.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, order := range orders {
		n.ids[order.ID] = struct{}{}
	}
}
