package service

import (
	"context"

	"github.com/ecomportal/backend/internal/database"
	"github.com/ecomportal/backend/internal/errs"
	"github.com/ecomportal/backend/internal/repository"
	"github.com/ecomportal/backend/internal/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Error codes surfaced to clients by the customer operations.
var (
	codeCustomerExists   = "CUSTOMER_ALREADY_EXISTS"
	codeCustomerNotFound = "CUSTOMER_NOT_FOUND"
)

// CustomerService implements the customer operations.
type CustomerService struct {
	customers *repository.CustomerRepository
	log       *zerolog.Logger
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(s *server.Server, repos *repository.Repositories) *CustomerService {
	return &CustomerService{
		customers: repos.Customers,
		log:       s.Logger,
	}
}

// Create registers a new customer.
//
// The email must not already be registered; if it is, the request fails with
// a 400 regardless of the name. The lookup-then-insert pair can race with a
// concurrent create for the same email; the unique index on email catches
// the loser, and the sqlerr funnel reports the same "already exists" answer.
func (s *CustomerService) Create(ctx context.Context, name, email string) (*database.Customer, error) {
	_, err := s.customers.GetByEmail(ctx, email)
	if err == nil {
		return nil, errs.NewBadRequestError("Customer with this email already exists", &codeCustomerExists, nil)
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, err
	}

	customer := &database.Customer{
		Name:  name,
		Email: email,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.log.Info().Uint("customer_id", customer.ID).Msg("customer created")
	return customer, nil
}

// List returns a page of customers ordered by id ascending.
func (s *CustomerService) List(ctx context.Context, skip, limit int) ([]database.Customer, error) {
	skip, limit = normalizePage(skip, limit)
	return s.customers.List(ctx, skip, limit)
}

// Get fetches one customer by id, including its orders and their items.
func (s *CustomerService) Get(ctx context.Context, id uint) (*database.Customer, error) {
	customer, err := s.customers.GetWithOrders(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errs.NewNotFoundError("Customer not found", &codeCustomerNotFound)
		}
		return nil, err
	}
	return customer, nil
}
