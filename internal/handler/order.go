package handler

import (
	"github.com/ecomportal/backend/internal/server"
	"github.com/ecomportal/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// OrderHandler serves the order endpoints.
type OrderHandler struct {
	Handler
	services *service.Services
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(s *server.Server, services *service.Services) *OrderHandler {
	return &OrderHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// Create handles POST /orders/.
func (h *OrderHandler) Create(c echo.Context, req *CreateOrderRequest) (*OrderResponse, error) {
	lines := make([]service.OrderLine, 0, len(*req.Items))
	for _, item := range *req.Items {
		lines = append(lines, service.OrderLine{
			ItemName:  item.ItemName,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.services.Orders.Create(c.Request().Context(), *req.CustomerID, lines)
	if err != nil {
		return nil, err
	}
	return newOrderResponse(order), nil
}

// List handles GET /orders/.
func (h *OrderHandler) List(c echo.Context, req *ListRequest) ([]OrderResponse, error) {
	skip, limit := req.Window()
	orders, err := h.services.Orders.List(c.Request().Context(), skip, limit)
	if err != nil {
		return nil, err
	}
	return newOrderListResponse(orders), nil
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c echo.Context, req *GetByIDRequest) (*OrderResponse, error) {
	order, err := h.services.Orders.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return newOrderResponse(order), nil
}
