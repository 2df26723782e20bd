package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"automarket/config"
	"automarket/internal/delivery"
	"automarket/internal/delivery/http"
	"automarket/internal/delivery/http/router/handler"
	"automarket/internal/delivery/page"
	"automarket/internal/delivery/tui"
	"automarket/internal/delivery/worker"
	"automarket/internal/domain/lifecycle"
	"automarket/internal/domain/service"
	"automarket/internal/errors"
	"automarket/internal/infra/auth"
	"automarket/internal/infra/backend"
	"automarket/internal/infra/bridge"
	"automarket/internal/infra/browser"
	logs "automarket/internal/infra/log"
	"automarket/internal/infra/metrics"
	"automarket/internal/infra/notification"
	"automarket/internal/infra/page/shopee"
	"automarket/internal/infra/persistence/sqlite"
	"automarket/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// appOptions is the dependency graph shared by every command. Fx only calls the
// constructors a command actually asks for.
func appOptions(ctx context.Context) fx.Option {
	return fx.Options(
		injectInfra(ctx),
		injectRepo(),
		injectService(),
		injectUsecase(),
	)
}

func injectInfra(ctx context.Context) fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		func() context.Context { return ctx },
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewCredentialRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.New,
			func(c *backend.Client) service.OrderAPI { return c },
			func(c *backend.Client) service.ProductAPI { return c },
			func(c *backend.Client) service.AuthAPI { return c },
			func(c *backend.Client) service.AgentAPI { return c },
			auth.NewJWTInspector,
			bridge.NewRelay,
			notification.NewNotifier,
			metrics.New,
			newActivityRecorder,
			shopee.NewAdapter,
			browser.New,
		),
	)
}

// newActivityRecorder exposes the prometheus collector to the use cases
func newActivityRecorder(collector *metrics.Collector) service.ActivityRecorder {
	return collector
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewOrderService,
			impl.NewPageService,
			impl.NewDashboardService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMessageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewPoller,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func injectUI() fx.Option {
	return fx.Options(
		fx.Provide(
			page.NewWatcher,
			tui.NewDashboard,
		),
	)
}

func withSlogEvents() fx.Option {
	return fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
		return &fxevent.SlogLogger{Logger: logger}
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

// runApp starts a short-lived application, populates targets, runs fn and stops the application
func runApp(ctx context.Context, options fx.Option, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		options,
		fx.NopLogger,
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("Failed to stop application", slog.Any("error", err))
		}
	}()

	return fn(ctx)
}

// fileLogOutput sends logs next to the credential store while the dashboard owns the terminal
func fileLogOutput(lc fx.Lifecycle, cfg *config.Config) (io.Writer, error) {
	path := filepath.Join(filepath.Dir(cfg.Storage.Path), "dashboard.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return f.Close()
		},
	})

	return f, nil
}
