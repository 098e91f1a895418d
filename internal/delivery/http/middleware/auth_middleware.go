// Package middleware holds the HTTP middleware chain of the API server.
package middleware

import (
	"strings"

	domainerrors "cityportal/internal/domain/errors"
	"cityportal/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is where Authenticate stores the verified identity.
const ContextKeyUserID = "userID"

// AuthMiddleware guards the protected route groups with bearer tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header. The rejection message
// distinguishes only the header's shape, never why verification failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenNotProvided
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 {
			return domainerrors.ErrTokenMalformed
		}
		if !strings.EqualFold(parts[0], "Bearer") {
			return domainerrors.ErrTokenWrongScheme
		}

		userID, err := m.tokenSvc.Verify(parts[1])
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}
