package impl

import (
	"context"
	"testing"

	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	mockRepo "automarket/internal/mocks/repository"
	mockSvc "automarket/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var readyCreds = &entity.Credentials{APIURL: "http://localhost:8000", APIKey: "key", IsLoggedIn: true}

type orderFixture struct {
	repo     *mockRepo.MockCredentialRepository
	orders   *mockSvc.MockOrderAPI
	notifier *mockSvc.MockNotifier
	recorder *mockSvc.MockActivityRecorder
	service  *orderService
}

func newOrderFixture(t *testing.T, dedupe bool) *orderFixture {
	t.Helper()

	f := &orderFixture{
		repo:     mockRepo.NewMockCredentialRepository(t),
		orders:   mockSvc.NewMockOrderAPI(t),
		notifier: mockSvc.NewMockNotifier(t),
		recorder: mockSvc.NewMockActivityRecorder(t),
	}
	f.service = NewOrderService(OrderServiceParams{
		CredentialRepo: f.repo,
		OrderAPI:       f.orders,
		Notifier:       f.notifier,
		Recorder:       f.recorder,
		Config:         newTestConfig(dedupe),
		Logger:         newDiscardLogger(),
	}).(*orderService)

	return f
}

func marketplaceID(id string) *string {
	return &id
}

func TestOrderService_FetchOrders(t *testing.T) {
	orders := []*entity.Order{{ID: 1, Status: entity.OrderStatusPaid}}

	tests := []struct {
		name    string
		creds   *entity.Credentials
		listErr error
		list    bool
		want    []*entity.Order
	}{
		{name: "returns backend list", creds: readyCreds, list: true, want: orders},
		{name: "missing credentials", creds: &entity.Credentials{IsLoggedIn: true}, want: []*entity.Order{}},
		{name: "backend failure", creds: readyCreds, list: true, listErr: domainerrors.ErrBackendUnavailable, want: []*entity.Order{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t, false)
			ctx := context.Background()

			f.repo.EXPECT().Load(ctx).Return(tt.creds, nil)
			if tt.list {
				f.orders.EXPECT().ListOrders(ctx, tt.creds.AgentSession()).Return(orders, tt.listErr)
			}

			assert.Equal(t, tt.want, f.service.FetchOrders(ctx))
		})
	}
}

func TestOrderService_CheckForNewOrdersNotifiesOnce(t *testing.T) {
	f := newOrderFixture(t, false)
	ctx := context.Background()
	orders := []*entity.Order{
		{ID: 1, Status: "PAID"},
		{ID: 2, Status: entity.OrderStatusPaid},
		{ID: 3, Status: entity.OrderStatusPaid, IsDelivered: true},
		{ID: 4, Status: entity.OrderStatusPending},
	}

	f.repo.EXPECT().Load(ctx).Return(readyCreds, nil)
	f.orders.EXPECT().ListOrders(ctx, readyCreds.AgentSession()).Return(orders, nil)
	f.recorder.EXPECT().PollCompleted(2, nil).Return()
	f.notifier.EXPECT().
		Notify(ctx, "AUTO Marketplace", "You have 2 new paid order(s) ready for delivery!").
		Return(nil).
		Once()
	f.recorder.EXPECT().NotificationSent(nil).Return()

	assert.Equal(t, 2, f.service.CheckForNewOrders(ctx))
}

func TestOrderService_CheckForNewOrdersSkipsWhenNotReady(t *testing.T) {
	f := newOrderFixture(t, false)
	ctx := context.Background()

	f.repo.EXPECT().Load(ctx).Return(&entity.Credentials{APIURL: "http://localhost:8000", APIKey: "key"}, nil)

	assert.Zero(t, f.service.CheckForNewOrders(ctx))
}

func TestOrderService_CheckForNewOrdersNothingPending(t *testing.T) {
	f := newOrderFixture(t, false)
	ctx := context.Background()

	f.repo.EXPECT().Load(ctx).Return(readyCreds, nil)
	f.orders.EXPECT().ListOrders(ctx, mock.Anything).Return([]*entity.Order{{ID: 1, Status: entity.OrderStatusDelivered, IsDelivered: true}}, nil)
	f.recorder.EXPECT().PollCompleted(0, nil).Return()

	assert.Zero(t, f.service.CheckForNewOrders(ctx))
}

func TestOrderService_CheckForNewOrdersFetchFailure(t *testing.T) {
	f := newOrderFixture(t, false)
	ctx := context.Background()
	fetchErr := errors.New("timeout")

	f.repo.EXPECT().Load(ctx).Return(readyCreds, nil)
	f.orders.EXPECT().ListOrders(ctx, mock.Anything).Return(nil, fetchErr)
	f.recorder.EXPECT().PollCompleted(0, fetchErr).Return()

	assert.Zero(t, f.service.CheckForNewOrders(ctx))
}

func TestOrderService_CheckForNewOrdersRenotifiesWithoutDedupe(t *testing.T) {
	f := newOrderFixture(t, false)
	ctx := context.Background()
	orders := []*entity.Order{{ID: 1, Status: entity.OrderStatusPaid}}

	f.repo.EXPECT().Load(ctx).Return(readyCreds, nil)
	f.orders.EXPECT().ListOrders(ctx, mock.Anything).Return(orders, nil)
	f.recorder.EXPECT().PollCompleted(1, nil).Return()
	f.notifier.EXPECT().Notify(ctx, mock.Anything, "You have 1 new paid order(s) ready for delivery!").Return(nil).Twice()
	f.recorder.EXPECT().NotificationSent(nil).Return()

	assert.Equal(t, 1, f.service.CheckForNewOrders(ctx))
	assert.Equal(t, 1, f.service.CheckForNewOrders(ctx))
}

func TestOrderService_CheckForNewOrdersDedupe(t *testing.T) {
	f := newOrderFixture(t, true)
	ctx := context.Background()

	first := []*entity.Order{{ID: 1, Status: entity.OrderStatusPaid}}
	second := []*entity.Order{{ID: 1, Status: entity.OrderStatusPaid}, {ID: 2, Status: entity.OrderStatusPaid}}
	third := []*entity.Order{{ID: 2, Status: entity.OrderStatusPaid}}
	fourth := []*entity.Order{{ID: 1, Status: entity.OrderStatusPaid}, {ID: 2, Status: entity.OrderStatusPaid}}

	f.repo.EXPECT().Load(ctx).Return(readyCreds, nil)
	f.orders.EXPECT().ListOrders(ctx, mock.Anything).Return(first, nil).Once()
	f.orders.EXPECT().ListOrders(ctx, mock.Anything).Return(second, nil).Once()
	f.orders.EXPECT().ListOrders(ctx, mock.Anything).Return(third, nil).Once()
	f.orders.EXPECT().ListOrders(ctx, mock.Anything).Return(fourth, nil).Once()
	f.recorder.EXPECT().PollCompleted(mock.Anything, nil).Return()
	f.recorder.EXPECT().NotificationSent(nil).Return()
	f.notifier.EXPECT().Notify(ctx, mock.Anything, "You have 1 new paid order(s) ready for delivery!").Return(nil).Times(3)

	assert.Equal(t, 1, f.service.CheckForNewOrders(ctx))
	assert.Equal(t, 1, f.service.CheckForNewOrders(ctx))
	assert.Zero(t, f.service.CheckForNewOrders(ctx))
	// order 1 left the pending set and came back, so it counts again
	assert.Equal(t, 1, f.service.CheckForNewOrders(ctx))
}

func TestOrderService_CheckForNewOrdersDedupeRetriesFailedNotification(t *testing.T) {
	f := newOrderFixture(t, true)
	ctx := context.Background()
	orders := []*entity.Order{{ID: 7, Status: entity.OrderStatusPaid}}
	notifyErr := errors.New("notification daemon unavailable")

	f.repo.EXPECT().Load(ctx).Return(readyCreds, nil)
	f.orders.EXPECT().ListOrders(ctx, mock.Anything).Return(orders, nil).Times(3)
	f.recorder.EXPECT().PollCompleted(1, nil).Return()
	f.notifier.EXPECT().Notify(ctx, mock.Anything, "You have 1 new paid order(s) ready for delivery!").Return(notifyErr).Once()
	f.recorder.EXPECT().NotificationSent(notifyErr).Return().Once()
	f.notifier.EXPECT().Notify(ctx, mock.Anything, "You have 1 new paid order(s) ready for delivery!").Return(nil).Once()
	f.recorder.EXPECT().NotificationSent(nil).Return().Once()

	assert.Equal(t, 1, f.service.CheckForNewOrders(ctx))
	// the failed alert did not count, so the order is reported again
	assert.Equal(t, 1, f.service.CheckForNewOrders(ctx))
	assert.Zero(t, f.service.CheckForNewOrders(ctx))
}

func TestOrderService_DeliverOrder(t *testing.T) {
	tests := []struct {
		name       string
		creds      *entity.Credentials
		deliverErr error
		call       bool
		want       bool
	}{
		{name: "accepted", creds: readyCreds, call: true, want: true},
		{name: "rejected", creds: readyCreds, call: true, deliverErr: domainerrors.NewStatusError("POST", "/api/orders/5/deliver", 202, "")},
		{name: "not ready", creds: &entity.Credentials{APIURL: "http://localhost:8000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t, false)
			ctx := context.Background()

			f.repo.EXPECT().Load(ctx).Return(tt.creds, nil)
			if tt.call {
				f.orders.EXPECT().DeliverOrder(ctx, tt.creds.AgentSession(), int64(5)).Return(tt.deliverErr)
				f.recorder.EXPECT().DeliveryAttempted(tt.want).Return()
			}

			assert.Equal(t, tt.want, f.service.DeliverOrder(ctx, 5))
		})
	}
}

func TestOrderService_ProcessMarketplaceOrder(t *testing.T) {
	orders := []*entity.Order{
		{ID: 10, Status: entity.OrderStatusPaid, ShopeeOrderID: marketplaceID("SP-PAID")},
		{ID: 11, Status: entity.OrderStatusDelivered, IsDelivered: true, ShopeeOrderID: marketplaceID("SP-DONE")},
		{ID: 12, Status: entity.OrderStatusPending, ShopeeOrderID: marketplaceID("SP-PENDING")},
		{ID: 13, Status: entity.OrderStatusPaid},
	}

	tests := []struct {
		name    string
		id      string
		deliver bool
		want    bool
		wantErr error
	}{
		{name: "paid order is delivered", id: "SP-PAID", deliver: true, want: true},
		{name: "already delivered", id: "SP-DONE", want: true},
		{name: "not paid", id: "SP-PENDING", wantErr: domainerrors.ErrOrderNotPaid},
		{name: "no match", id: "SP-UNKNOWN", wantErr: domainerrors.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t, false)
			ctx := context.Background()

			f.repo.EXPECT().Load(ctx).Return(readyCreds, nil)
			f.orders.EXPECT().ListOrders(ctx, readyCreds.AgentSession()).Return(orders, nil)
			if tt.deliver {
				f.orders.EXPECT().DeliverOrder(ctx, readyCreds.AgentSession(), int64(10)).Return(nil)
				f.recorder.EXPECT().DeliveryAttempted(true).Return()
			}

			delivered, err := f.service.ProcessMarketplaceOrder(ctx, &entity.MarketplaceOrder{ShopeeOrderID: tt.id, Status: "PAID"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, delivered)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, delivered)
		})
	}
}

func TestOrderService_ProcessMarketplaceOrderDeliveryRejected(t *testing.T) {
	f := newOrderFixture(t, false)
	ctx := context.Background()
	orders := []*entity.Order{{ID: 10, Status: entity.OrderStatusPaid, ShopeeOrderID: marketplaceID("SP-PAID")}}

	f.repo.EXPECT().Load(ctx).Return(readyCreds, nil)
	f.orders.EXPECT().ListOrders(ctx, mock.Anything).Return(orders, nil)
	f.orders.EXPECT().DeliverOrder(ctx, mock.Anything, int64(10)).Return(domainerrors.ErrBackendUnavailable)
	f.recorder.EXPECT().DeliveryAttempted(false).Return()

	delivered, err := f.service.ProcessMarketplaceOrder(ctx, &entity.MarketplaceOrder{ShopeeOrderID: "SP-PAID"})

	assert.False(t, delivered)
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryFailed)
}

func TestOrderService_ProcessMarketplaceOrderRequiresID(t *testing.T) {
	f := newOrderFixture(t, false)

	delivered, err := f.service.ProcessMarketplaceOrder(context.Background(), &entity.MarketplaceOrder{})

	assert.False(t, delivered)
	assert.ErrorIs(t, err, domainerrors.ErrExtractionFailed)
}
