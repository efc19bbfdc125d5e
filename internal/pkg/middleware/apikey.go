package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/internal/utils"
)

// APIKeyHeader is the header carrying the service-to-service API key
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware validates internal API keys
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware creates the middleware from the configured keys
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys: map[string]string{
			"orders-service":  cfg.OrdersService,
			"billing-service": cfg.BillingService,
			"fleet-service":   cfg.FleetService,
		},
	}
}

// Handler returns an echo middleware allowing only the named services
func (m *APIKeyMiddleware) Handler(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			for _, service := range allowedServices {
				expected := m.keys[service]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					return next(c)
				}
			}

			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
