package impl

import (
	"context"
	"strings"
	"testing"

	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	"automarket/internal/infra/page/htmldoc"
	"automarket/internal/infra/page/shopee"
	mockRepo "automarket/internal/mocks/repository"
	mockSvc "automarket/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	orderPageURL = "https://shopee.tw/user/purchase/order/123"

	orderPage = `<html><body>
<span class="order-id"> SP-123 </span>
<span class="order-status">Paid</span>
<span class="product-name">Notion Template</span>
<div class="order-actions"></div>
</body></html>`

	orderPageNoActions = `<html><body>
<span class="order-id">SP-123</span>
<span class="order-status">Paid</span>
<span class="product-name">Notion Template</span>
</body></html>`
)

type pageFixture struct {
	repo    *mockRepo.MockCredentialRepository
	relay   *mockSvc.MockAgentRelay
	service *pageService
}

func newPageFixture(t *testing.T) *pageFixture {
	t.Helper()

	f := &pageFixture{
		repo:  mockRepo.NewMockCredentialRepository(t),
		relay: mockSvc.NewMockAgentRelay(t),
	}
	f.service = NewPageService(PageServiceParams{
		Adapter:        shopee.NewAdapter(),
		CredentialRepo: f.repo,
		Relay:          f.relay,
		Logger:         newDiscardLogger(),
	}).(*pageService)

	return f
}

func parsePage(t *testing.T, url, html string) *htmldoc.Document {
	t.Helper()

	doc, err := htmldoc.Parse(url, strings.NewReader(html))
	require.NoError(t, err)

	return doc
}

func renderPage(t *testing.T, doc *htmldoc.Document) string {
	t.Helper()

	var out strings.Builder
	require.NoError(t, doc.Render(&out))

	return out.String()
}

func TestPageService_Inject(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		html     string
		loggedIn bool
		load     bool
		want     bool
	}{
		{name: "injects on order page", url: orderPageURL, html: orderPage, loggedIn: true, load: true, want: true},
		{name: "logged out", url: orderPageURL, html: orderPage, load: true},
		{name: "not an order page", url: "https://shopee.tw/product/1", html: orderPage, loggedIn: true},
		{name: "other marketplace", url: "https://example.com/order/1", html: orderPage, loggedIn: true},
		{name: "no actions container", url: orderPageURL, html: orderPageNoActions, loggedIn: true, load: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPageFixture(t)
			ctx := context.Background()
			doc := parsePage(t, tt.url, tt.html)

			if tt.load {
				f.repo.EXPECT().Load(ctx).Return(&entity.Credentials{IsLoggedIn: tt.loggedIn}, nil)
			}

			injected, err := f.service.Inject(ctx, doc)

			require.NoError(t, err)
			assert.Equal(t, tt.want, injected)
			assert.Equal(t, tt.want, doc.Exists("#auto-deliver-button"))
		})
	}
}

func TestPageService_InjectIsIdempotent(t *testing.T) {
	f := newPageFixture(t)
	ctx := context.Background()
	doc := parsePage(t, orderPageURL, orderPage)

	f.repo.EXPECT().Load(ctx).Return(&entity.Credentials{IsLoggedIn: true}, nil)

	first, err := f.service.Inject(ctx, doc)
	require.NoError(t, err)
	second, err := f.service.Inject(ctx, doc)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, 1, strings.Count(renderPage(t, doc), `id="auto-deliver-button"`))
}

func TestPageService_Inspect(t *testing.T) {
	f := newPageFixture(t)

	order, ok := f.service.Inspect(parsePage(t, orderPageURL, orderPage))

	require.True(t, ok)
	assert.Equal(t, &entity.MarketplaceOrder{
		ShopeeOrderID: "SP-123",
		Status:        "PAID",
		ProductName:   "Notion Template",
	}, order)
	assert.True(t, f.service.Supports(orderPageURL))
	assert.False(t, f.service.Supports("https://shopee.tw/cart"))
}

func TestPageService_HandleDeliverClickSuccess(t *testing.T) {
	f := newPageFixture(t)
	ctx := context.Background()
	var alerts []string
	doc, err := htmldoc.Parse(orderPageURL, strings.NewReader(orderPage), htmldoc.WithAlertHandler(func(message string) {
		alerts = append(alerts, message)
	}))
	require.NoError(t, err)

	f.repo.EXPECT().Load(ctx).Return(&entity.Credentials{IsLoggedIn: true}, nil)
	f.relay.EXPECT().
		ProcessMarketplaceOrder(ctx, &entity.MarketplaceOrder{ShopeeOrderID: "SP-123", Status: "PAID", ProductName: "Notion Template"}).
		Return(true, nil)

	_, err = f.service.Inject(ctx, doc)
	require.NoError(t, err)

	assert.True(t, f.service.HandleDeliverClick(ctx, doc))
	assert.Equal(t, []string{"Order processed successfully!"}, alerts)

	label, _ := doc.Text("#auto-deliver-button")
	assert.Equal(t, "Delivered ✓", label)
	assert.True(t, doc.Exists("#auto-deliver-button[disabled]"))
}

func TestPageService_HandleDeliverClickFailures(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		relay     bool
		delivered bool
		relayErr  error
		wantAlert string
	}{
		{
			name:      "extraction fails",
			html:      `<html><body><div class="order-actions"></div></body></html>`,
			wantAlert: "Could not extract order information",
		},
		{
			name:      "agent reports failure",
			html:      orderPage,
			relay:     true,
			wantAlert: "Failed to process order. Please try again.",
		},
		{
			name:      "agent unreachable",
			html:      orderPage,
			relay:     true,
			relayErr:  domainerrors.ErrAgentUnreachable,
			wantAlert: "Failed to process order. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPageFixture(t)
			ctx := context.Background()
			doc := parsePage(t, orderPageURL, tt.html)

			if tt.relay {
				f.relay.EXPECT().ProcessMarketplaceOrder(ctx, &entity.MarketplaceOrder{
					ShopeeOrderID: "SP-123",
					Status:        "PAID",
					ProductName:   "Notion Template",
				}).Return(tt.delivered, tt.relayErr)
			}

			assert.False(t, f.service.HandleDeliverClick(ctx, doc))
			assert.Equal(t, []string{tt.wantAlert}, doc.Alerts())
		})
	}
}
