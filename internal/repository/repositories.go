// Package repository handles all interactions with the database.
//
// It contains the query logic to fetch and persist data, abstracting GORM
// specifics away from the service layer. Repositories translate driver-level
// "record not found" results into package sentinel errors; everything else is
// returned as-is for the sqlerr funnel to classify.
package repository

import (
	"github.com/ecomportal/backend/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Customers *CustomerRepository
	Orders    *OrderRepository
}

// NewRepositories constructs the repository container from the application
// container (DB handle lives on s.DB, logger on s.Logger).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Customers: NewCustomerRepository(s),
		Orders:    NewOrderRepository(s),
	}
}
