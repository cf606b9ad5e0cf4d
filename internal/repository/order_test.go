package repository

import (
	"context"
	"testing"

	"github.com/ecomportal/backend/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCustomer(t *testing.T, repo *CustomerRepository) *database.Customer {
	t.Helper()
	customer := &database.Customer{Name: "Eve", Email: "eve@example.com"}
	require.NoError(t, repo.Create(context.Background(), customer))
	return customer
}

func TestOrderRepository_Create_WithItems(t *testing.T) {
	s := setupTestServer(t)
	customers := NewCustomerRepository(s)
	orders := NewOrderRepository(s)
	ctx := context.Background()

	customer := seedCustomer(t, customers)

	order := &database.Order{
		CustomerID: customer.ID,
		TotalCost:  11.0,
		Items: []database.OrderItem{
			{ItemName: "Widget", UnitPrice: 2.5, Quantity: 2},
			{ItemName: "Gadget", UnitPrice: 6.0, Quantity: 1},
		},
	}
	require.NoError(t, orders.Create(ctx, order))
	assert.NotZero(t, order.ID)

	found, err := orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	assert.Equal(t, order.ID, found.Items[0].OrderID)
	assert.Equal(t, order.ID, found.Items[1].OrderID)
	assert.Equal(t, 11.0, found.TotalCost)
}

func TestOrderRepository_Create_EmptyItems(t *testing.T) {
	s := setupTestServer(t)
	customers := NewCustomerRepository(s)
	orders := NewOrderRepository(s)
	ctx := context.Background()

	customer := seedCustomer(t, customers)

	order := &database.Order{CustomerID: customer.ID, TotalCost: 0}
	require.NoError(t, orders.Create(ctx, order))

	found, err := orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Items)
	assert.Equal(t, 0.0, found.TotalCost)
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	s := setupTestServer(t)
	orders := NewOrderRepository(s)

	_, err := orders.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderRepository_List(t *testing.T) {
	s := setupTestServer(t)
	customers := NewCustomerRepository(s)
	orders := NewOrderRepository(s)
	ctx := context.Background()

	customer := seedCustomer(t, customers)

	first := &database.Order{
		CustomerID: customer.ID,
		TotalCost:  5.0,
		Items:      []database.OrderItem{{ItemName: "Widget", UnitPrice: 5.0, Quantity: 1}},
	}
	second := &database.Order{CustomerID: customer.ID, TotalCost: 0}
	require.NoError(t, orders.Create(ctx, first))
	require.NoError(t, orders.Create(ctx, second))

	all, err := orders.List(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	require.Len(t, all[0].Items, 1)
	assert.Empty(t, all[1].Items)

	page, err := orders.List(ctx, 1, 100)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].ID)
}
