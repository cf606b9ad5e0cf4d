package handler

import (
	"github.com/ecomportal/backend/internal/server"
	"github.com/ecomportal/backend/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health   *HealthHandler
	Customer *CustomerHandler
	Order    *OrderHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Customer: NewCustomerHandler(s, services),
		Order:    NewOrderHandler(s, services),
	}
}
