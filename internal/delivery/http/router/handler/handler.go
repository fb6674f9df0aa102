// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "hifybe/internal/delivery/context"
	"hifybe/internal/delivery/http/response"
	domainerrors "hifybe/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseIDParam parses a uuid path parameter, failing with a 400.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails(name)
	}

	return id, nil
}

// currentUserID returns the authenticated account id placed in the echo
// context by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	val := c.Get(string(deliverycontext.KeyUserID))
	userID, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return userID, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
