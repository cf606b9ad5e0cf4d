package repository

import (
	"context"

	"github.com/ecomportal/backend/internal/database"
	"github.com/ecomportal/backend/internal/middleware"
	"github.com/ecomportal/backend/internal/server"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an order id matches no row.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists and fetches Order rows and their items.
type OrderRepository struct {
	db *database.Database
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(s *server.Server) *OrderRepository {
	return &OrderRepository{
		db: s.DB,
	}
}

// Create inserts an order together with its items in a single transaction.
//
// order.Items must already reference the order (GORM fills OrderID from the
// association). A failure inserting any item rolls the order row back, so an
// order can never be persisted without its items.
func (r *OrderRepository) Create(ctx context.Context, order *database.Order) error {
	err := r.db.Session(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		middleware.GetLoggerFromContext(ctx).Error().Err(err).Uint("customer_id", order.CustomerID).Msg("failed to create order")
		return err
	}
	return nil
}

// GetByID fetches an order by primary key including its items.
func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*database.Order, error) {
	var order database.Order
	err := r.db.Session(ctx).Preload("Items").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// List returns a page of orders with their items, ordered by id ascending.
func (r *OrderRepository) List(ctx context.Context, skip, limit int) ([]database.Order, error) {
	var orders []database.Order
	err := r.db.Session(ctx).
		Preload("Items").
		Order("id asc").
		Offset(skip).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		middleware.GetLoggerFromContext(ctx).Error().Err(err).Msg("failed to list orders")
		return nil, err
	}
	return orders, nil
}
