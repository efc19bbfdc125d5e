package handler

import (
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/tapea/backoffice/internal/pkg/jwt"
	"github.com/tapea/backoffice/internal/pkg/middleware"
	"github.com/tapea/backoffice/internal/pkg/models"
)

// RegisterRoutes registers all HTTP routes for the billing service
func (h *BillingHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config, apiKey *middleware.APIKeyMiddleware) {
	// Fee configuration is admin-only
	admin := e.Group("/billing", middleware.JWTAuthMiddleware(cfg.JWT, jwtpkg.RoleAdmin))
	admin.GET("/fee-config", h.GetFeeConfig)
	admin.PUT("/fee-config", h.UpdateFeeConfig)
	admin.POST("/collectes/recompute", h.Recompute)
	admin.POST("/collectes/:collecteID/pay", h.MarkPaid)

	// Collecte listings are visible to prestataires too (their own rows are
	// filtered client-side by the dashboard; amounts are not secret between
	// the platform and its prestataires)
	authed := e.Group("/billing", middleware.JWTAuthMiddleware(cfg.JWT,
		jwtpkg.RoleAdmin, jwtpkg.RolePrestataire))
	authed.GET("/collectes", h.ListCollectes)
	authed.GET("/collectes/:collecteID", h.GetCollecte)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKey.Handler("orders-service", "fleet-service"))
	internal.GET("/fee-config", h.GetFeeConfig)
}
