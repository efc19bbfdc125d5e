package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/tapea/backoffice/internal/pkg/jwt"
	"github.com/tapea/backoffice/internal/pkg/models"
	"github.com/tapea/backoffice/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. When
// roles are given, the token must carry one of them.
func JWTAuthMiddleware(config models.JWTConfig, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			subject, ok := (*claims)["sub"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing sub claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}
			roleStr := fmt.Sprintf("%v", role)

			if len(roles) > 0 {
				allowed := false
				for _, r := range roles {
					if r == roleStr {
						allowed = true
						break
					}
				}
				if !allowed {
					return utils.ForbiddenResponse(c, "Insufficient role")
				}
			}

			subjectID, err := uuid.Parse(fmt.Sprintf("%v", subject))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: sub is not a valid UUID")
			}

			c.Set("subject_id", subjectID)
			c.Set("subject_role", roleStr)

			return next(c)
		}
	}
}
