package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"automarket/config"
	mockUsecase "automarket/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestPollerConfig(interval time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Poller.Interval = interval

	return cfg
}

func TestPoller_ChecksImmediatelyOnServe(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	checked := make(chan struct{}, 1)

	orderUC.EXPECT().CheckForNewOrders(mock.Anything).RunAndReturn(func(context.Context) int {
		checked <- struct{}{}

		return 0
	}).Once()

	p, err := NewPoller(PollerParams{
		Lc:      lc,
		Cfg:     newTestPollerConfig(time.Hour),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		OrderUC: orderUC,
	})
	require.NoError(t, err)

	lc.RequireStart()

	served := make(chan error, 1)
	go func() {
		served <- p.Serve(context.Background())
	}()

	select {
	case <-checked:
	case <-time.After(5 * time.Second):
		t.Fatal("first check did not run")
	}

	lc.RequireStop()

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after stop")
	}
}

func TestPoller_RepeatsOnSchedule(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	checked := make(chan struct{}, 10)

	orderUC.EXPECT().CheckForNewOrders(mock.Anything).RunAndReturn(func(context.Context) int {
		checked <- struct{}{}

		return 1
	})

	p, err := NewPoller(PollerParams{
		Lc:      lc,
		Cfg:     newTestPollerConfig(time.Second),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		OrderUC: orderUC,
	})
	require.NoError(t, err)

	lc.RequireStart()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = p.Serve(ctx)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-checked:
		case <-time.After(5 * time.Second):
			t.Fatalf("check %d did not run", i+1)
		}
	}

	lc.RequireStop()
}

func TestNewPoller_RejectsNonPositiveInterval(t *testing.T) {
	_, err := NewPoller(PollerParams{
		Lc:      fxtest.NewLifecycle(t),
		Cfg:     newTestPollerConfig(0),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		OrderUC: mockUsecase.NewMockOrderUsecase(t),
	})

	assert.Error(t, err)
}
