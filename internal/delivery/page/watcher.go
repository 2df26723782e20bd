// Package page drives the page integration against a live browser tab.
package page

import (
	"context"
	"log/slog"
	"time"

	"automarket/config"
	"automarket/internal/domain/service"
	"automarket/internal/usecase"

	"go.uber.org/fx"
)

const defaultSettleDelay = time.Second

// WatcherParams holds dependencies for the Watcher, injected by Fx.
type WatcherParams struct {
	fx.In

	PageUC usecase.PageUsecase
	Config *config.Config
	Logger *slog.Logger
}

// Watcher re-runs injection after navigation and routes button clicks to the page use case.
type Watcher struct {
	pageUC usecase.PageUsecase
	settle time.Duration
	logger *slog.Logger
}

// NewWatcher is the constructor for Watcher
func NewWatcher(params WatcherParams) *Watcher {
	settle := defaultSettleDelay
	if params.Config != nil && params.Config.Page.SettleDelay > 0 {
		settle = params.Config.Page.SettleDelay
	}

	return &Watcher{
		pageUC: params.PageUC,
		settle: settle,
		logger: params.Logger,
	}
}

// Watch blocks until ctx is done or the page goes away.
// Injection runs once the page has been quiet for the settle delay; a newer navigation restarts the wait.
func (w *Watcher) Watch(ctx context.Context, page service.LivePage) error {
	timer := time.NewTimer(w.settle)
	defer timer.Stop()

	events := page.Events()
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-timer.C:
			w.inject(ctx, page)

		case event, ok := <-events:
			if !ok {
				w.logger.Info("[Page] Page closed")

				return nil
			}
			w.handle(ctx, page, timer, event)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, page service.LivePage, timer *time.Timer, event service.PageEvent) {
	switch event.Kind {
	case service.PageNavigated:
		w.logger.Debug("[Page] Navigation", slog.String("url", event.URL))
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(w.settle)

	case service.PageButtonClicked:
		w.logger.Info("[Page] Deliver button clicked", slog.String("url", page.URL()))
		if w.pageUC.HandleDeliverClick(ctx, page) {
			w.logger.Info("[Page] Order delivered from page", slog.String("url", page.URL()))
		}
	}
}

func (w *Watcher) inject(ctx context.Context, page service.LivePage) {
	if !w.pageUC.Supports(page.URL()) {
		return
	}

	injected, err := w.pageUC.Inject(ctx, page)
	if err != nil {
		w.logger.Error("[Page] Failed to inject button", slog.Any("error", err))

		return
	}
	if injected {
		w.logger.Debug("[Page] Button ready", slog.String("url", page.URL()))
	}
}
