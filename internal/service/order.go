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

var codeOrderNotFound = "ORDER_NOT_FOUND"

// OrderLine is one requested line item of a new order.
type OrderLine struct {
	ItemName  string
	UnitPrice float64
	Quantity  int
}

// OrderService implements the order operations.
type OrderService struct {
	orders    *repository.OrderRepository
	customers *repository.CustomerRepository
	log       *zerolog.Logger
}

// NewOrderService constructs an OrderService.
func NewOrderService(s *server.Server, repos *repository.Repositories) *OrderService {
	return &OrderService{
		orders:    repos.Orders,
		customers: repos.Customers,
		log:       s.Logger,
	}
}

// Create places an order for an existing customer.
//
// The referenced customer must exist (404 otherwise). TotalCost is derived
// here as the sum of unit_price * quantity over the supplied lines (zero for
// an empty order), and the order row plus its item rows are persisted in one
// transaction.
func (s *OrderService) Create(ctx context.Context, customerID uint, lines []OrderLine) (*database.Order, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errs.NewNotFoundError("Customer not found", &codeCustomerNotFound)
		}
		return nil, err
	}

	var totalCost float64
	items := make([]database.OrderItem, 0, len(lines))
	for _, line := range lines {
		totalCost += line.UnitPrice * float64(line.Quantity)
		items = append(items, database.OrderItem{
			ItemName:  line.ItemName,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	order := &database.Order{
		CustomerID: customerID,
		TotalCost:  totalCost,
		Items:      items,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info().
		Uint("order_id", order.ID).
		Uint("customer_id", customerID).
		Float64("total_cost", totalCost).
		Int("items", len(items)).
		Msg("order created")

	return order, nil
}

// List returns a page of orders with their items, ordered by id ascending.
func (s *OrderService) List(ctx context.Context, skip, limit int) ([]database.Order, error) {
	skip, limit = normalizePage(skip, limit)
	return s.orders.List(ctx, skip, limit)
}

// Get fetches one order by id, including its items.
func (s *OrderService) Get(ctx context.Context, id uint) (*database.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errs.NewNotFoundError("Order not found", &codeOrderNotFound)
		}
		return nil, err
	}
	return order, nil
}
