package middleware

import (
	"strings"

	"truefans/internal/delivery/api/response"
	deliverycontext "truefans/internal/delivery/context"
	"truefans/internal/domain/entity"
	"truefans/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		principal, ok := m.principalFrom(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// OptionalAuthenticate attaches the principal when a valid token is present.
// A missing header proceeds anonymously; a malformed or expired token is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		principal, ok := m.principalFrom(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireRole allows callers holding any of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c)
			if principal == nil {
				return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
			}

			for _, role := range roles {
				if principal.Roles.Contains(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied")
		}
	}
}

func (m *AuthMiddleware) principalFrom(authHeader string) (*entity.Principal, bool) {
	tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
	if !found || tokenString == "" {
		return nil, false
	}

	principal, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil || principal == nil {
		return nil, false
	}

	return principal, true
}

// GetPrincipal returns the authenticated caller, or nil for anonymous requests.
func GetPrincipal(c echo.Context) *entity.Principal {
	return deliverycontext.GetPrincipal(c)
}
