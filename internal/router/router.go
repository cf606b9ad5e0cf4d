// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware stack and maps each method + path pair to its
// corresponding handler.
package router

import (
	"net/http"

	"github.com/ecomportal/backend/internal/handler"
	"github.com/ecomportal/backend/internal/middleware"
	"github.com/ecomportal/backend/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware stack and all routes
// registered.
func New(s *server.Server, mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	// Every error, wherever it happened, funnels through here.
	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	// Order matters: the request ID must exist before the context enhancer
	// builds the request-scoped logger, which the request logger then uses.
	r.Use(mw.Global.Recover())
	r.Use(middleware.RequestID())
	r.Use(mw.ContextEnhancer.EnhanceContext())
	r.Use(mw.Global.RequestLogger())
	r.Use(mw.Global.Secure())
	r.Use(mw.Global.CORS())

	registerSystemRoutes(r, h)
	registerAPIRoutes(r, h)

	return r
}

// registerAPIRoutes maps the business endpoints. Trailing slashes on the
// collection paths are part of the public contract.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/customers/", handler.Handle(h.Customer.Create, http.StatusOK))
	r.GET("/customers/", handler.Handle(h.Customer.List, http.StatusOK))
	r.GET("/customers/:id", handler.Handle(h.Customer.Get, http.StatusOK))

	r.POST("/orders/", handler.Handle(h.Order.Create, http.StatusOK))
	r.GET("/orders/", handler.Handle(h.Order.List, http.StatusOK))
	r.GET("/orders/:id", handler.Handle(h.Order.Get, http.StatusOK))
}
