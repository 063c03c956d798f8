// Package middleware contains the HTTP middleware for the storefront API.
package middleware

import (
	"strings"

	"renteasy/internal/delivery/http/response"
	domainerrors "renteasy/internal/domain/errors"
	"renteasy/internal/domain/service"
	"renteasy/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminMiddleware guards the admin routes. A request passes when it carries
// a valid admin session token and the admin session is still active in the
// state store (a logout invalidates outstanding tokens immediately).
type AdminMiddleware struct {
	tokens  service.TokenService
	session usecase.SessionUsecase
}

// NewAdminMiddleware is the constructor for AdminMiddleware.
func NewAdminMiddleware(tokens service.TokenService, session usecase.SessionUsecase) *AdminMiddleware {
	return &AdminMiddleware{tokens: tokens, session: session}
}

// RequireAdmin validates the bearer token and the live admin flag.
func (m *AdminMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokens.ValidateAdminToken(tokenString)
		if err != nil || !claims.Admin {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired admin token")
		}

		if !m.session.IsAdmin() {
			return response.HandleAppError(c, domainerrors.ErrAdminRequired)
		}

		return next(c)
	}
}
