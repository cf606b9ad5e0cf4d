package handler

import (
	"time"

	"github.com/ecomportal/backend/internal/database"
	"github.com/ecomportal/backend/internal/service"
	"github.com/go-playground/validator/v10"
)

// validate is shared by all request schemas; validator instances cache
// struct metadata, so one per package is the intended usage.
var validate = validator.New()

// --- Request schemas --------------------------------------------------------

// CreateCustomerRequest is the accepted payload for POST /customers/.
//
// Email is only required to be a non-empty string; format enforcement is
// deliberately out of scope.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

func (r *CreateCustomerRequest) Validate() error {
	return validate.Struct(r)
}

// OrderItemInput is one requested line item inside CreateOrderRequest.
// unit_price and quantity are type-checked by binding but otherwise
// unvalidated (negative values are the client's problem).
type OrderItemInput struct {
	ItemName  string  `json:"item_name" validate:"required"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// CreateOrderRequest is the accepted payload for POST /orders/.
//
// Both fields are pointers so presence is distinguishable from the zero
// value: a missing customer_id or items field fails validation, while
// customer_id 0 flows through to the existence check (404) and an empty
// items array is accepted (total_cost 0).
type CreateOrderRequest struct {
	CustomerID *uint             `json:"customer_id" validate:"required"`
	Items      *[]OrderItemInput `json:"items" validate:"required,dive"`
}

func (r *CreateOrderRequest) Validate() error {
	return validate.Struct(r)
}

// ListRequest carries the offset/limit paging window for the list endpoints.
// Limit is a pointer so an omitted limit (default 100) stays distinguishable
// from an explicit limit=0, which selects an empty page.
type ListRequest struct {
	Skip  int  `query:"skip"`
	Limit *int `query:"limit"`
}

func (r *ListRequest) Validate() error {
	return validate.Struct(r)
}

// Window resolves the paging values, applying the default page size when the
// client omitted limit.
func (r *ListRequest) Window() (skip, limit int) {
	limit = service.DefaultLimit
	if r.Limit != nil {
		limit = *r.Limit
	}
	return r.Skip, limit
}

// GetByIDRequest carries the path id for the single-resource endpoints.
type GetByIDRequest struct {
	ID uint `param:"id"`
}

func (r *GetByIDRequest) Validate() error {
	return validate.Struct(r)
}

// --- Response schemas -------------------------------------------------------
//
// Responses are projections of persisted records, independent of the
// persistence schema's internal representation. Fields not present in the
// request schemas (ids, timestamps, derived totals) are always
// server-assigned.

// CustomerResponse is the customer shape without its orders.
type CustomerResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerWithOrdersResponse is a customer plus all of its orders.
type CustomerWithOrdersResponse struct {
	CustomerResponse
	Orders []OrderResponse `json:"orders"`
}

// OrderItemResponse is one persisted line item of an order.
type OrderItemResponse struct {
	ID        uint    `json:"id"`
	OrderID   uint    `json:"order_id"`
	ItemName  string  `json:"item_name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// OrderResponse is an order with its items.
type OrderResponse struct {
	ID         uint                `json:"id"`
	CustomerID uint                `json:"customer_id"`
	TotalCost  float64             `json:"total_cost"`
	CreatedAt  time.Time           `json:"created_at"`
	Items      []OrderItemResponse `json:"items"`
}

// MessageResponse is the root banner payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// --- Projections ------------------------------------------------------------

func newCustomerResponse(c *database.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func newCustomerListResponse(customers []database.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, *newCustomerResponse(&customers[i]))
	}
	return out
}

func newCustomerWithOrdersResponse(c *database.Customer) *CustomerWithOrdersResponse {
	return &CustomerWithOrdersResponse{
		CustomerResponse: *newCustomerResponse(c),
		Orders:           newOrderListResponse(c.Orders),
	}
}

func newOrderResponse(o *database.Order) *OrderResponse {
	// Items is always a JSON array, never null, even for empty orders.
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ItemName:  item.ItemName,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return &OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		TotalCost:  o.TotalCost,
		CreatedAt:  o.CreatedAt,
		Items:      items,
	}
}

func newOrderListResponse(orders []database.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *newOrderResponse(&orders[i]))
	}
	return out
}
