package repository

import (
	"context"

	"github.com/ecomportal/backend/internal/database"
	"github.com/ecomportal/backend/internal/middleware"
	"github.com/ecomportal/backend/internal/server"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrCustomerNotFound is returned when a customer id or email matches no row.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository persists and fetches Customer rows.
//
// Failures are logged through the request-scoped logger carried in ctx, so
// store errors line up with the request that caused them.
type CustomerRepository struct {
	db *database.Database
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(s *server.Server) *CustomerRepository {
	return &CustomerRepository{
		db: s.DB,
	}
}

// Create inserts a new customer. ID and CreatedAt are assigned by the store.
func (r *CustomerRepository) Create(ctx context.Context, customer *database.Customer) error {
	if err := r.db.Session(ctx).Create(customer).Error; err != nil {
		middleware.GetLoggerFromContext(ctx).Error().Err(err).Str("email", customer.Email).Msg("failed to create customer")
		return err
	}
	return nil
}

// GetByEmail fetches a customer by email.
// Returns ErrCustomerNotFound when no customer has that email.
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*database.Customer, error) {
	var customer database.Customer
	err := r.db.Session(ctx).Where("email = ?", email).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// GetByID fetches a customer by primary key without its orders.
func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*database.Customer, error) {
	var customer database.Customer
	err := r.db.Session(ctx).First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// GetWithOrders fetches a customer by primary key including its orders and
// their items, assembled at query time.
func (r *CustomerRepository) GetWithOrders(ctx context.Context, id uint) (*database.Customer, error) {
	var customer database.Customer
	err := r.db.Session(ctx).
		Preload("Orders.Items").
		Preload("Orders").
		First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// List returns a page of customers ordered by id ascending, so skip/limit
// behaves as a stable window.
func (r *CustomerRepository) List(ctx context.Context, skip, limit int) ([]database.Customer, error) {
	var customers []database.Customer
	err := r.db.Session(ctx).
		Order("id asc").
		Offset(skip).
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		middleware.GetLoggerFromContext(ctx).Error().Err(err).Msg("failed to list customers")
		return nil, err
	}
	return customers, nil
}
