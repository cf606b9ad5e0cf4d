// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// data from the handlers, applies the business rules (duplicate emails,
// referenced customers, order totals), and calls repository methods to
// interact with the data.
package service

import (
	"github.com/ecomportal/backend/internal/repository"
	"github.com/ecomportal/backend/internal/server"
)

// DefaultLimit is the page size applied when a list request does not specify
// a limit. An explicit limit, including 0, is honored as given.
const (
	DefaultLimit = 100
)

// Services is a container that groups all business services.
type Services struct {
	Customers *CustomerService
	Orders    *OrderService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Customers: NewCustomerService(s, repos),
		Orders:    NewOrderService(s, repos),
	}
}

// normalizePage clamps nonsense paging values: a negative skip or limit
// becomes 0. A limit of 0 stays 0 and selects an empty page; the default for
// an omitted limit is applied before the service is called.
func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	return skip, limit
}
