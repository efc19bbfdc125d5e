package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tapea/backoffice/internal/pkg/logger"
	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/internal/pkg/pricing"
	"github.com/tapea/backoffice/internal/utils"
	"github.com/tapea/backoffice/services/orders"
)

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	orderUC orders.OrderUC
}

// NewOrderHandler creates a new order HTTP handler
func NewOrderHandler(orderUC orders.OrderUC) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
	}
}

func orderID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("orderID"))
}

// writeOrderError maps use case errors onto HTTP statuses
func writeOrderError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		return utils.NotFoundResponse(c, "Order not found")
	case errors.Is(err, orders.ErrInvalidTransition), errors.Is(err, orders.ErrOrderFinalized):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, orders.ErrValidation), errors.Is(err, orders.ErrDriverRequired),
		errors.Is(err, pricing.ErrInvalidOrder):
		return utils.BadRequestResponse(c, err.Error())
	default:
		logger.Error("Order operation failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Internal server error")
	}
}

// CreateOrder handles booking a new order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req models.OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), &req)
	if err != nil {
		return writeOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Order created", order)
}

// GetOrder handles retrieving a single order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", order)
}

// ListOrders handles order listing with filters
func (h *OrderHandler) ListOrders(c echo.Context) error {
	var filter models.OrderFilter
	if err := c.Bind(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid filter: "+err.Error())
	}

	result, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return writeOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles advancing an order through its state machine
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	var req models.OrderStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, &req)
	if err != nil {
		return writeOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order status updated", order)
}

// CompleteOrder handles closing out a ride with its accrued charges
func (h *OrderHandler) CompleteOrder(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	var req models.OrderCompleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	order, err := h.orderUC.CompleteOrder(c.Request().Context(), id, &req)
	if err != nil {
		return writeOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order completed", order)
}

// ConfirmPayment handles marking a completed order as paid
func (h *OrderHandler) ConfirmPayment(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := h.orderUC.ConfirmPayment(c.Request().Context(), id)
	if err != nil {
		return writeOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment confirmed", order)
}

// GetBreakdown handles the earnings decomposition of an order
func (h *OrderHandler) GetBreakdown(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	breakdown, err := h.orderUC.GetBreakdown(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pricing.ErrMissingConfig) {
			return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "Fee configuration unavailable")
		}
		return writeOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", breakdown)
}
