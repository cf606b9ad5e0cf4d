// Package middleware stores the global middleware stack.
//
// These intercept requests to handle cross-cutting concerns: cross-origin
// policy, request correlation ids, request-scoped logging, panic recovery,
// and the global error funnel.
package middleware

import (
	"github.com/ecomportal/backend/internal/server"
)

// Middlewares is a lightweight container that groups the middleware
// components used by the HTTP server, so shared dependencies are wired in a
// single place.
type Middlewares struct {
	// Global holds common middleware used across the whole API: CORS,
	// request logging, recovery, secure headers, and the error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components from the application
// container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
