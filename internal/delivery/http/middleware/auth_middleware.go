// Package middleware contains the HTTP middleware of the application.
package middleware

import (
	deliverycontext "hifybe/internal/delivery/context"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/repository"
	"hifybe/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "token"

// AuthMiddleware authenticates requests from the session cookie.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the session cookie and loads the account behind
// it. The errors are deliberately distinct so the frontend can tell a
// missing session from an expired one.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthenticated
		}

		userID, err := m.tokenSvc.Verify(cookie.Value)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrSessionExpired
			}

			return domainerrors.ErrTokenRejected
		}

		// The token may outlive the account it names.
		if _, err := m.userRepo.FindByID(c.Request().Context(), userID); err != nil {
			return domainerrors.ErrSessionUserMissing
		}

		c.Set(string(deliverycontext.KeyUserID), userID)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, deliverycontext.GetRequestID(c))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
