// Package http serves the agent's local message bridge.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"automarket/config"
	"automarket/internal/delivery"
	"automarket/internal/delivery/http/middleware"
	"automarket/internal/delivery/http/router"
	"automarket/internal/delivery/http/validator"
	deliverymiddleware "automarket/internal/delivery/middleware"
	"automarket/internal/domain/lifecycle"
	"automarket/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// bridgeHost keeps the bridge reachable from this machine only
const bridgeHost = "127.0.0.1"

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the bridge server and registers its shutdown hook
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := newEcho(params.Config, params.Logger)

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	timeouts := cfg.Bridge.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	// Recover first so panics in later middleware are caught
	e.Use(echomiddleware.Recover())

	// Request ID before the logger so access logs carry it
	e.Use(deliverymiddleware.NewRequestIDMiddleware(logger).Process)
	e.Use(deliverymiddleware.NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

// Serve blocks until the bridge is shut down
func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort(bridgeHost, strconv.Itoa(s.cfg.Bridge.Port))
	s.logger.Info("[Bridge] Starting bridge server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve bridge")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("[Bridge] Shutting down bridge server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
