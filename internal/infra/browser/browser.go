// Package browser drives a Chrome tab through the DevTools protocol.
package browser

import (
	"context"
	"log/slog"

	"automarket/config"
	"automarket/internal/errors"

	"github.com/chromedp/chromedp"
	"go.uber.org/fx"
)

// Params holds dependencies for the browser, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Browser owns one Chrome process
type Browser struct {
	logger   *slog.Logger
	headless bool

	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// New prepares the Chrome allocator; the process starts with the first tab
func New(params Params) *Browser {
	cfg := params.Config.Page

	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.WindowSize(1366, 900),
	)
	if cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ChromePath))
	}
	if !cfg.Headless {
		// a seller clicks the button, so the window must be visible
		opts = append(opts, chromedp.Flag("headless", false))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	b := &Browser{
		logger:      params.Logger,
		headless:    cfg.Headless,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			b.logger.Info("[Browser] Closing Chrome")
			b.allocCancel()

			return nil
		},
	})

	return b
}

// Open starts a tab, installs the click binding and navigates to url
func (b *Browser) Open(ctx context.Context, url string) (*Tab, error) {
	tabCtx, cancel := chromedp.NewContext(b.allocCtx)

	// the tab lives until the caller's context ends
	go func() {
		<-ctx.Done()
		cancel()
	}()

	tab := newTab(tabCtx, cancel, b.headless, b.logger)
	tab.listen()

	if err := chromedp.Run(tabCtx, tab.installBinding(), chromedp.Navigate(url)); err != nil {
		cancel()

		return nil, errors.Wrapf(err, "failed to open %s", url)
	}

	b.logger.Info("[Browser] Tab opened", slog.String("url", url))

	return tab, nil
}
