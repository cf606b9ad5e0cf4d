package router

import (
	"github.com/ecomportal/backend/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of business
// logic: the root banner and the health check used by uptime monitors.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.CheckHealth)
}
