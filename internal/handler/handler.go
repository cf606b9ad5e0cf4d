// Package handler is the first entry point for business logic after the
// router.
//
// It parses requests, runs input validation via the validation package, and
// calls the appropriate service layer. It is the interface between the HTTP
// request and the core business logic.
package handler

import (
	"time"

	"github.com/ecomportal/backend/internal/middleware"
	"github.com/ecomportal/backend/internal/server"
	"github.com/ecomportal/backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach config, logger and DB
// through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value: the only field is a pointer, so copies are
// cheap and still point at the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc represents a typed endpoint function that receives a validated
// request payload and returns a response or an error.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// Handle wraps a typed endpoint function with binding, validation, logging
// and JSON response writing, returning an echo.HandlerFunc that can be
// registered directly on routes.
//
// A fresh request struct is allocated per request, so payloads never leak
// between concurrent requests.
func Handle[T any, PT interface {
	*T
	validation.Validatable
}, Res any](fn func(c echo.Context, req PT) (Res, error), status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PT(new(T))
		return handleRequest(c, req, fn, status)
	}
}

// handleRequest is the shared execution pipeline for all typed handlers:
// bind + validate, execute, write JSON. Errors are returned for the global
// error handler to format.
func handleRequest[Req validation.Validatable, Res any](
	c echo.Context,
	req Req,
	fn HandlerFunc[Req, Res],
	status int,
) error {
	start := time.Now()

	// Request-scoped logger set by the context enhancer middleware; already
	// carries request_id, method, path and ip.
	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Logger()

	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().Err(err).Msg("request validation failed")
		return err
	}

	result, err := fn(c, req)
	if err != nil {
		logger.Error().
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Debug().
		Dur("duration", time.Since(start)).
		Msg("request completed")

	return c.JSON(status, result)
}
