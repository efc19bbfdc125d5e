package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/internal/utils"
)

// PostMessage appends a message to an order conversation
func (h *OrderHandler) PostMessage(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	var req models.MessageCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	msg, err := h.orderUC.PostMessage(c.Request().Context(), id, &req)
	if err != nil {
		return writeOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message posted", msg)
}

// ListMessages retrieves an order conversation. Pollers pass the created_at
// of the last message they saw as ?since=RFC3339.
func (h *OrderHandler) ListMessages(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	var since *time.Time
	if raw := c.QueryParam("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid since parameter, expected RFC3339")
		}
		since = &t
	}

	messages, err := h.orderUC.ListMessages(c.Request().Context(), id, since)
	if err != nil {
		return writeOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", messages)
}

// MarkMessagesRead acknowledges the messages written by a sender role
func (h *OrderHandler) MarkMessagesRead(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	role := models.MessageSenderRole(c.QueryParam("sender_role"))
	switch role {
	case models.MessageSenderClient, models.MessageSenderDriver, models.MessageSenderAdmin:
	default:
		return utils.BadRequestResponse(c, "Invalid sender_role parameter")
	}

	if err := h.orderUC.MarkMessagesRead(c.Request().Context(), id, role); err != nil {
		return writeOrderError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Messages marked read", nil)
}
