package page

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"automarket/config"
	"automarket/internal/domain/service"
	"automarket/internal/infra/page/htmldoc"
	mockUsecase "automarket/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderURL = "https://shopee.tw/user/purchase/order/1"

// fakePage is an offline document whose URL follows the navigation events sent to it.
type fakePage struct {
	*htmldoc.Document

	mu     sync.Mutex
	url    string
	events chan service.PageEvent
}

func newFakePage(t *testing.T) *fakePage {
	t.Helper()

	doc, err := htmldoc.Parse(orderURL, strings.NewReader(`<html><body><div class="order-actions"></div></body></html>`))
	require.NoError(t, err)

	return &fakePage{Document: doc, url: orderURL, events: make(chan service.PageEvent, 8)}
}

func (p *fakePage) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.url
}

func (p *fakePage) Events() <-chan service.PageEvent {
	return p.events
}

func (p *fakePage) navigate(url string) {
	p.mu.Lock()
	p.url = url
	p.mu.Unlock()
	p.events <- service.PageEvent{Kind: service.PageNavigated, URL: url}
}

func newTestWatcher(pageUC *mockUsecase.MockPageUsecase, settle time.Duration) *Watcher {
	cfg := &config.Config{}
	cfg.Page.SettleDelay = settle

	return NewWatcher(WatcherParams{
		PageUC: pageUC,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestWatcher_DebouncesNavigation(t *testing.T) {
	pageUC := mockUsecase.NewMockPageUsecase(t)
	page := newFakePage(t)
	injected := make(chan string, 4)

	pageUC.EXPECT().Supports(mock.Anything).Return(true)
	pageUC.EXPECT().Inject(mock.Anything, page).RunAndReturn(func(_ context.Context, dom service.PageDOM) (bool, error) {
		injected <- dom.URL()

		return true, nil
	}).Once()

	watcher := newTestWatcher(pageUC, 100*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(ctx, page)
	}()

	page.navigate("https://shopee.tw/user/purchase/order/2")
	page.navigate("https://shopee.tw/user/purchase/order/3")

	select {
	case url := <-injected:
		assert.Equal(t, "https://shopee.tw/user/purchase/order/3", url)
	case <-time.After(5 * time.Second):
		t.Fatal("injection did not run")
	}

	// no second injection without a new navigation
	select {
	case url := <-injected:
		t.Fatalf("unexpected second injection for %s", url)
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcher_SkipsUnsupportedPages(t *testing.T) {
	pageUC := mockUsecase.NewMockPageUsecase(t)
	page := newFakePage(t)
	checked := make(chan struct{}, 1)

	pageUC.EXPECT().Supports(orderURL).RunAndReturn(func(string) bool {
		checked <- struct{}{}

		return false
	}).Once()

	watcher := newTestWatcher(pageUC, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = watcher.Watch(ctx, page)
	}()

	select {
	case <-checked:
	case <-time.After(5 * time.Second):
		t.Fatal("settle timer did not fire")
	}
}

func TestWatcher_RoutesClicks(t *testing.T) {
	pageUC := mockUsecase.NewMockPageUsecase(t)
	page := newFakePage(t)
	clicked := make(chan struct{}, 1)

	pageUC.EXPECT().Supports(mock.Anything).Return(false).Maybe()
	pageUC.EXPECT().HandleDeliverClick(mock.Anything, page).RunAndReturn(func(context.Context, service.PageDOM) bool {
		clicked <- struct{}{}

		return true
	}).Once()

	watcher := newTestWatcher(pageUC, time.Hour)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(context.Background(), page)
	}()

	page.events <- service.PageEvent{Kind: service.PageButtonClicked, ButtonID: "auto-deliver-button"}

	select {
	case <-clicked:
	case <-time.After(5 * time.Second):
		t.Fatal("click was not handled")
	}

	close(page.events)
	assert.NoError(t, <-done)
}
