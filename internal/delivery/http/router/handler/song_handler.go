package handler

import (
	"net/http"
	"time"

	"hifybe/internal/delivery/http/response"
	"hifybe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SongHandler holds dependencies for catalog handlers.
type SongHandler struct {
	uc usecase.SongUsecase
}

// NewSongHandler is the constructor for SongHandler, injected by Fx.
func NewSongHandler(uc usecase.SongUsecase) *SongHandler {
	return &SongHandler{uc: uc}
}

type createSongRequest struct {
	CatalogID   int64      `json:"numero_catalogo" validate:"required"`
	Title       string     `json:"titulo" validate:"required"`
	Artist      string     `json:"artista" validate:"required"`
	Album       string     `json:"album"`
	DurationSec int        `json:"duracion_seg" validate:"gte=0"`
	AudioURL    string     `json:"audio_url"`
	ReleasedAt  *time.Time `json:"fecha_lanzamiento"`
}

type updateSongRequest struct {
	Title       *string    `json:"titulo"`
	Artist      *string    `json:"artista"`
	Album       *string    `json:"album"`
	DurationSec *int       `json:"duracion_seg" validate:"omitempty,gte=0"`
	AudioURL    *string    `json:"audio_url"`
	ReleasedAt  *time.Time `json:"fecha_lanzamiento"`
}

// ListSongs returns the whole catalog.
func (h *SongHandler) ListSongs(c echo.Context) error {
	songs, err := h.uc.ListSongs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, songs, "")
}

// GetSong returns one song by id.
func (h *SongHandler) GetSong(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	song, err := h.uc.GetSong(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, song, "")
}

// CreateSong adds a song to the catalog.
func (h *SongHandler) CreateSong(c echo.Context) error {
	var req createSongRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid song input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid song input")
	}

	song, err := h.uc.CreateSong(c.Request().Context(), &usecase.CreateSongInput{
		CatalogID:   req.CatalogID,
		Title:       req.Title,
		Artist:      req.Artist,
		Album:       req.Album,
		DurationSec: req.DurationSec,
		AudioURL:    req.AudioURL,
		ReleasedAt:  req.ReleasedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, song, "Canción creada")
}

// UpdateSong applies a partial catalog update.
func (h *SongHandler) UpdateSong(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateSongRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid song input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid song input")
	}

	song, err := h.uc.UpdateSong(c.Request().Context(), id, &usecase.UpdateSongInput{
		Title:       req.Title,
		Artist:      req.Artist,
		Album:       req.Album,
		DurationSec: req.DurationSec,
		AudioURL:    req.AudioURL,
		ReleasedAt:  req.ReleasedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, song, "Canción actualizada")
}

// DeleteSong removes a song from the catalog.
func (h *SongHandler) DeleteSong(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteSong(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Canción eliminada")
}
