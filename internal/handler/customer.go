package handler

import (
	"github.com/ecomportal/backend/internal/server"
	"github.com/ecomportal/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// CustomerHandler serves the customer endpoints.
type CustomerHandler struct {
	Handler
	services *service.Services
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(s *server.Server, services *service.Services) *CustomerHandler {
	return &CustomerHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// Create handles POST /customers/.
func (h *CustomerHandler) Create(c echo.Context, req *CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := h.services.Customers.Create(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	return newCustomerResponse(customer), nil
}

// List handles GET /customers/.
func (h *CustomerHandler) List(c echo.Context, req *ListRequest) ([]CustomerResponse, error) {
	skip, limit := req.Window()
	customers, err := h.services.Customers.List(c.Request().Context(), skip, limit)
	if err != nil {
		return nil, err
	}
	return newCustomerListResponse(customers), nil
}

// Get handles GET /customers/:id.
func (h *CustomerHandler) Get(c echo.Context, req *GetByIDRequest) (*CustomerWithOrdersResponse, error) {
	customer, err := h.services.Customers.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return newCustomerWithOrdersResponse(customer), nil
}
