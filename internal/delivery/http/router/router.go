// Package router wires the bridge endpoints onto echo.
package router

import (
	"automarket/internal/delivery/http/router/handler"
	"automarket/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams is everything the bridge routes need
type RouterParams struct {
	fx.In

	MessageHandler *handler.MessageHandler
	Metrics        *metrics.Collector
}

// Routes registers the bridge endpoints
type Routes struct {
	messages *handler.MessageHandler
	metrics  *metrics.Collector
}

// NewRouter is the constructor for the bridge Routes.
func NewRouter(params RouterParams) *Routes {
	return &Routes{
		messages: params.MessageHandler,
		metrics:  params.Metrics,
	}
}

// RegisterRoutes mounts health, metrics and the message endpoint.
// Every agent message goes through POST /messages and is dispatched on its type.
func (r *Routes) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	e.POST("/messages", r.messages.HandleMessage)
}
