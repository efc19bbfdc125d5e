package handler

import (
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/tapea/backoffice/internal/pkg/jwt"
	"github.com/tapea/backoffice/internal/pkg/middleware"
	"github.com/tapea/backoffice/internal/pkg/models"
)

// RegisterRoutes registers all HTTP routes for the orders service
func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config, apiKey *middleware.APIKeyMiddleware) {
	// Authenticated routes for the dashboards and mobile apps
	authed := e.Group("/orders", middleware.JWTAuthMiddleware(cfg.JWT,
		jwtpkg.RoleAdmin, jwtpkg.RolePrestataire, jwtpkg.RoleDriver))

	authed.POST("", h.CreateOrder)
	authed.GET("", h.ListOrders)
	authed.GET("/:orderID", h.GetOrder)
	authed.PATCH("/:orderID/status", h.UpdateStatus)
	authed.POST("/:orderID/complete", h.CompleteOrder)
	authed.POST("/:orderID/payment", h.ConfirmPayment)
	authed.GET("/:orderID/breakdown", h.GetBreakdown)

	authed.POST("/:orderID/messages", h.PostMessage)
	authed.GET("/:orderID/messages", h.ListMessages)
	authed.POST("/:orderID/messages/read", h.MarkMessagesRead)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal/orders", apiKey.Handler("billing-service", "fleet-service"))
	internal.GET("/:orderID", h.GetOrder)
	internal.GET("", h.ListOrders)
}
