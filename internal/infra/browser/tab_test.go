package browser

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"automarket/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func newEventTab(t *testing.T) *Tab {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return newTab(ctx, cancel, true, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTab_EmitQueuesEvents(t *testing.T) {
	tab := newEventTab(t)

	tab.emit(service.PageEvent{Kind: service.PageNavigated, URL: "https://shopee.test/order/1"})

	event := <-tab.Events()
	assert.Equal(t, service.PageNavigated, event.Kind)
	assert.Equal(t, "https://shopee.test/order/1", event.URL)
}

func TestTab_EmitWhileClosing(t *testing.T) {
	tab := newEventTab(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tab.emit(service.PageEvent{Kind: service.PageButtonClicked, ButtonID: "auto-deliver-button"})
			}
		}()
	}

	tab.Close()
	tab.closeEvents()
	wg.Wait()

	assert.NotPanics(t, func() {
		tab.emit(service.PageEvent{Kind: service.PageNavigated})
		tab.closeEvents()
	})

	// drain whatever made it in before the close, then the channel reports closed
	for range tab.Events() {
	}
	_, ok := <-tab.Events()
	assert.False(t, ok)
}
