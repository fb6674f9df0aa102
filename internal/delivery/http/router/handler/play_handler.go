package handler

import (
	"net/http"

	"hifybe/internal/delivery/http/response"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlayHandler holds dependencies for play-history handlers.
type PlayHandler struct {
	uc usecase.PlayUsecase
}

// NewPlayHandler is the constructor for PlayHandler, injected by Fx.
func NewPlayHandler(uc usecase.PlayUsecase) *PlayHandler {
	return &PlayHandler{uc: uc}
}

type recordPlayRequest struct {
	SongID    uuid.UUID `json:"cancion_id" validate:"required"`
	Latitude  *float64  `json:"latitud"`
	Longitude *float64  `json:"longitud"`
}

// RecordPlay records one playback for the authenticated user. Coordinates,
// when present, also refresh the user's last known position.
func (h *PlayHandler) RecordPlay(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req recordPlayRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid play input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid play input")
	}

	play, err := h.uc.RecordPlay(c.Request().Context(), &usecase.RecordPlayInput{
		UserID:    userID,
		SongID:    req.SongID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, play, "Reproducción registrada")
}

// UserHistory returns a user's play history, most recent first.
func (h *PlayHandler) UserHistory(c echo.Context) error {
	userID, err := parseIDParam(c, "usuarioId")
	if err != nil {
		return errors.WithStack(err)
	}

	history, err := h.uc.UserHistory(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "")
}
