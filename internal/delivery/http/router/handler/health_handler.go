package handler

import (
	"automarket/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers GET /health while the agent is running
func HealthCheck(c echo.Context) error {
	return response.OK(c, "Agent is healthy", map[string]string{"status": "ok"})
}
