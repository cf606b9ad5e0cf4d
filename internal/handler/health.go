package handler

import (
	"context"
	"net/http"

	"github.com/ecomportal/backend/internal/database"
	"github.com/ecomportal/backend/internal/middleware"
	"github.com/ecomportal/backend/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes the system endpoints external tools use to verify the
// service is alive: the root banner and the health check.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app
// dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// Root returns the API banner. Mostly useful as a quick "is it up" check for
// humans pointing a browser at the service.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{
		Message: "E-Commerce Portal API is running!",
	})
}

// CheckHealth reports service health.
//
// It returns 200 {"status":"healthy"} when the store answers a ping within
// the timeout, 503 {"status":"unhealthy"} otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), database.PingTimeout)
	defer cancel()

	if err := h.server.DB.Ping(ctx); err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("database health check failed")
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
	}

	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}
