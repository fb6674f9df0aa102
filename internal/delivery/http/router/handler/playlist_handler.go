package handler

import (
	"net/http"

	"hifybe/internal/delivery/http/response"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaylistHandler holds dependencies for playlist handlers.
type PlaylistHandler struct {
	uc usecase.PlaylistUsecase
}

// NewPlaylistHandler is the constructor for PlaylistHandler, injected by Fx.
func NewPlaylistHandler(uc usecase.PlaylistUsecase) *PlaylistHandler {
	return &PlaylistHandler{uc: uc}
}

type createPlaylistRequest struct {
	Name        string `json:"nombre" validate:"required"`
	Description string `json:"descripcion"`
	Public      bool   `json:"publica"`
	CoverURL    string `json:"portada_url"`
}

type updatePlaylistRequest struct {
	Name        *string `json:"nombre"`
	Description *string `json:"descripcion"`
	Public      *bool   `json:"publica"`
	CoverURL    *string `json:"portada_url"`
}

type addSongRequest struct {
	SongID uuid.UUID `json:"cancion_id" validate:"required"`
}

// ListPlaylists returns every public playlist.
func (h *PlaylistHandler) ListPlaylists(c echo.Context) error {
	playlists, err := h.uc.ListPublicPlaylists(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlists, "")
}

// GetPlaylist returns one playlist with its songs resolved in order.
func (h *PlaylistHandler) GetPlaylist(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	playlist, err := h.uc.GetPlaylist(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlist, "")
}

// CreatePlaylist creates a playlist owned by the authenticated user.
func (h *PlaylistHandler) CreatePlaylist(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createPlaylistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid playlist input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid playlist input")
	}

	playlist, err := h.uc.CreatePlaylist(c.Request().Context(), &usecase.CreatePlaylistInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     userID,
		Public:      req.Public,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, playlist, "Playlist creada")
}

// UpdatePlaylist applies a partial playlist update.
func (h *PlaylistHandler) UpdatePlaylist(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid playlist input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid playlist input")
	}

	playlist, err := h.uc.UpdatePlaylist(c.Request().Context(), id, &usecase.UpdatePlaylistInput{
		Name:        req.Name,
		Description: req.Description,
		Public:      req.Public,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlist, "Playlist actualizada")
}

// DeletePlaylist removes a playlist and its entries.
func (h *PlaylistHandler) DeletePlaylist(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeletePlaylist(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Playlist eliminada")
}

// AddSong appends a song at the end of the playlist.
func (h *PlaylistHandler) AddSong(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req addSongRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid song reference")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid song reference")
	}

	playlist, err := h.uc.AddSong(c.Request().Context(), id, req.SongID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlist, "Canción añadida")
}

// RemoveSong removes a song from the playlist.
func (h *PlaylistHandler) RemoveSong(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	songID, err := parseIDParam(c, "cancionId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveSong(c.Request().Context(), id, songID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Canción eliminada de la playlist")
}

// ShareQR returns a PNG QR code linking to the playlist on the frontend.
func (h *PlaylistHandler) ShareQR(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.uc.ShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
