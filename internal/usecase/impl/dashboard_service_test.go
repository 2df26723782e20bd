package impl

import (
	"context"
	"testing"
	"time"

	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	mockSvc "automarket/internal/mocks/service"
	mockUsecase "automarket/internal/mocks/usecase"
	"automarket/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var dashboardSession = entity.Session{BaseURL: "http://localhost:8000", Token: "jwt"}

type dashboardFixture struct {
	sessions *mockUsecase.MockSessionUsecase
	auth     *mockSvc.MockAuthAPI
	orders   *mockSvc.MockOrderAPI
	products *mockSvc.MockProductAPI
	agent    *mockSvc.MockAgentAPI
	service  *dashboardService
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()

	f := &dashboardFixture{
		sessions: mockUsecase.NewMockSessionUsecase(t),
		auth:     mockSvc.NewMockAuthAPI(t),
		orders:   mockSvc.NewMockOrderAPI(t),
		products: mockSvc.NewMockProductAPI(t),
		agent:    mockSvc.NewMockAgentAPI(t),
	}
	f.service = NewDashboardService(DashboardServiceParams{
		Sessions:   f.sessions,
		AuthAPI:    f.auth,
		OrderAPI:   f.orders,
		ProductAPI: f.products,
		AgentAPI:   f.agent,
		Logger:     newDiscardLogger(),
	}).(*dashboardService)

	return f
}

func TestDashboardService_Summary(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	f.sessions.EXPECT().DashboardSession(ctx).Return(dashboardSession, nil)
	f.products.EXPECT().ListProducts(mock.Anything, dashboardSession).Return([]*entity.Product{{ID: 1}, {ID: 2}}, nil)
	f.orders.EXPECT().ListOrders(mock.Anything, dashboardSession).Return([]*entity.Order{
		{ID: 1, Status: entity.OrderStatusPaid, TotalPrice: 10},
		{ID: 2, Status: "DELIVERED", TotalPrice: 5.5},
		{ID: 3, Status: entity.OrderStatusPending, TotalPrice: 100},
		{ID: 4, Status: entity.OrderStatusCancelled, TotalPrice: 7},
	}, nil)

	summary, err := f.service.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, &usecase.Summary{ProductCount: 2, OrderCount: 4, TotalSales: 15.5}, summary)
}

func TestDashboardService_SummaryFailure(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	f.sessions.EXPECT().DashboardSession(ctx).Return(dashboardSession, nil)
	f.products.EXPECT().ListProducts(mock.Anything, dashboardSession).Return(nil, domainerrors.ErrBackendUnavailable)
	f.orders.EXPECT().ListOrders(mock.Anything, dashboardSession).Return([]*entity.Order{}, nil).Maybe()

	_, err := f.service.Summary(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
}

func TestDashboardService_RequiresSession(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	f.sessions.EXPECT().DashboardSession(ctx).Return(entity.Session{}, domainerrors.ErrSessionExpired)

	_, err := f.service.ListProducts(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)

	_, err = f.service.ListOrders(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)

	assert.ErrorIs(t, f.service.DeleteProduct(ctx, 1), domainerrors.ErrSessionExpired)
}

func TestDashboardService_ProductsAndOrders(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()
	name := "Renamed"

	f.sessions.EXPECT().DashboardSession(ctx).Return(dashboardSession, nil)
	f.products.EXPECT().CreateProduct(ctx, dashboardSession, mock.AnythingOfType("*entity.CreateProductInput")).Return(&entity.Product{ID: 3}, nil)
	f.products.EXPECT().GetProduct(ctx, dashboardSession, int64(3)).Return(&entity.Product{ID: 3, Name: "Template"}, nil)
	f.products.EXPECT().UpdateProduct(ctx, dashboardSession, int64(3), &entity.UpdateProductInput{Name: &name}).Return(&entity.Product{ID: 3, Name: name}, nil)
	f.products.EXPECT().DeleteProduct(ctx, dashboardSession, int64(3)).Return(nil)
	f.orders.EXPECT().DeliverOrder(ctx, dashboardSession, int64(8)).Return(nil)

	created, err := f.service.CreateProduct(ctx, &entity.CreateProductInput{Name: "Template", ProductType: entity.ProductTypeTemplate, Content: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	fetched, err := f.service.GetProduct(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Template", fetched.Name)

	updated, err := f.service.UpdateProduct(ctx, 3, &entity.UpdateProductInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)

	require.NoError(t, f.service.DeleteProduct(ctx, 3))
	require.NoError(t, f.service.DeliverOrder(ctx, 8))
}

func TestDashboardService_SendChatMessage(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	f.service.now = func() time.Time { return now }

	f.sessions.EXPECT().DashboardSession(ctx).Return(dashboardSession, nil)
	f.agent.EXPECT().SendChatMessage(ctx, dashboardSession, &entity.ChatMessage{Content: "Do you ship today?"}).
		Return(&entity.ChatResponse{Message: "Yes, instantly."}, nil)

	reply, err := f.service.SendChatMessage(ctx, "  Do you ship today? ")

	require.NoError(t, err)
	assert.Equal(t, "Yes, instantly.", reply.Content)
	assert.Equal(t, entity.SenderAI, reply.Sender)
	assert.Equal(t, now, reply.Timestamp)
	assert.NotEmpty(t, reply.ID)
}

func TestDashboardService_SendChatMessageRejectsEmpty(t *testing.T) {
	f := newDashboardFixture(t)

	_, err := f.service.SendChatMessage(context.Background(), "   ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDashboardService_AgentConfigFallback(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	f.sessions.EXPECT().DashboardSession(ctx).Return(dashboardSession, nil)
	f.agent.EXPECT().GetAgentConfig(ctx, dashboardSession).Return(nil, errors.New("500"))

	cfg, err := f.service.AgentConfig(ctx)

	require.Error(t, err)
	assert.Equal(t, entity.DefaultAgentConfig(), *cfg)
}

func TestDashboardService_SetAgentActive(t *testing.T) {
	current := &entity.AgentConfig{IsActive: true, StoreLevel: entity.StoreLevelStore, FAQThreshold: 0.5}

	tests := []struct {
		name    string
		resp    *entity.AgentResponse
		err     error
		wantErr bool
	}{
		{name: "confirmed", resp: &entity.AgentResponse{Success: true}},
		{name: "backend refused", resp: &entity.AgentResponse{Success: false, Message: "quota"}, wantErr: true},
		{name: "transport error", err: domainerrors.ErrBackendUnavailable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDashboardFixture(t)
			ctx := context.Background()

			f.sessions.EXPECT().DashboardSession(ctx).Return(dashboardSession, nil)
			f.agent.EXPECT().
				ConfigureAgent(ctx, dashboardSession, &entity.AgentConfig{IsActive: false, StoreLevel: entity.StoreLevelStore, FAQThreshold: 0.5}).
				Return(tt.resp, tt.err)

			updated, err := f.service.SetAgentActive(ctx, current, false)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, updated)
			} else {
				require.NoError(t, err)
				assert.False(t, updated.IsActive)
			}
			assert.True(t, current.IsActive)
		})
	}
}

func TestDashboardService_CurrentUser(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	f.sessions.EXPECT().DashboardSession(ctx).Return(dashboardSession, nil)
	f.auth.EXPECT().CurrentUser(ctx, dashboardSession).Return(&entity.User{ID: 1, Email: "seller@example.com"}, nil)

	user, err := f.service.CurrentUser(ctx)

	require.NoError(t, err)
	assert.Equal(t, "seller@example.com", user.Email)
}
