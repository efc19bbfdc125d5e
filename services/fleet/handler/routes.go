package handler

import (
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/tapea/backoffice/internal/pkg/jwt"
	"github.com/tapea/backoffice/internal/pkg/middleware"
	"github.com/tapea/backoffice/internal/pkg/models"
)

// RegisterRoutes registers all HTTP routes for the fleet service
func (h *FleetHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config, apiKey *middleware.APIKeyMiddleware, rateLimiter echo.MiddlewareFunc) {
	// Access-code login is the only unauthenticated endpoint; it gets the
	// redis rate limiter instead.
	if rateLimiter != nil {
		e.POST("/auth/login", h.Login, rateLimiter)
	} else {
		e.POST("/auth/login", h.Login)
	}

	// Onboarding and activation are admin-only
	admin := e.Group("", middleware.JWTAuthMiddleware(cfg.JWT, jwtpkg.RoleAdmin))
	admin.POST("/prestataires", h.CreatePrestataire)
	admin.PATCH("/prestataires/:prestataireID/active", h.SetPrestataireActive)
	admin.POST("/drivers", h.CreateDriver)
	admin.PATCH("/drivers/:driverID/active", h.SetDriverActive)

	authed := e.Group("", middleware.JWTAuthMiddleware(cfg.JWT,
		jwtpkg.RoleAdmin, jwtpkg.RolePrestataire))
	authed.GET("/prestataires", h.ListPrestataires)
	authed.GET("/prestataires/:prestataireID", h.GetPrestataire)
	authed.GET("/drivers", h.ListDrivers)
	authed.GET("/drivers/:driverID", h.GetDriver)
	authed.GET("/drivers/nearby", h.NearbyDrivers)

	// Drivers report their own position from the mobile app
	driver := e.Group("", middleware.JWTAuthMiddleware(cfg.JWT, jwtpkg.RoleDriver))
	driver.POST("/drivers/:driverID/position", h.UpdatePosition)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKey.Handler("orders-service", "billing-service"))
	internal.GET("/drivers/:driverID", h.GetDriver)
}
