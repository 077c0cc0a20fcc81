package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"plant-exchange/internal/domain"
)

const userContextKey = "user"

// RequireAuth validates the bearer token and stores the resolved user in the
// request context.
func (h *Handler) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, errorResponse{Detail: domain.ErrInvalidToken.Error()})
		}

		user, err := h.auth.Authenticate(c.Request().Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return h.domainError(c, err)
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// currentUser returns the authenticated user. Only valid behind RequireAuth.
func currentUser(c echo.Context) *domain.User {
	return c.Get(userContextKey).(*domain.User)
}
