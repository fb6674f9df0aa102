package handler

import (
	"net/http"

	"hifybe/internal/delivery/http/response"
	"hifybe/internal/domain/entity"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FriendshipHandler holds dependencies for friendship handlers.
type FriendshipHandler struct {
	uc usecase.FriendshipUsecase
}

// NewFriendshipHandler is the constructor for FriendshipHandler, injected by Fx.
func NewFriendshipHandler(uc usecase.FriendshipUsecase) *FriendshipHandler {
	return &FriendshipHandler{uc: uc}
}

type sendFriendRequestRequest struct {
	ToUserID uuid.UUID `json:"receptor_id" validate:"required"`
}

type respondFriendRequestRequest struct {
	Status string `json:"estado" validate:"required,oneof=aceptada rechazada"`
}

// ListFriends returns a user's accepted friendships.
func (h *FriendshipHandler) ListFriends(c echo.Context) error {
	userID, err := parseIDParam(c, "usuarioId")
	if err != nil {
		return errors.WithStack(err)
	}

	friends, err := h.uc.ListFriends(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, friends, "")
}

// NearbyFriends returns the authenticated user's friends within the
// configured radius, closest first.
func (h *FriendshipHandler) NearbyFriends(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	friends, err := h.uc.NearbyFriends(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, friends, "")
}

// SendRequest sends a friend request from the authenticated user.
func (h *FriendshipHandler) SendRequest(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req sendFriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid friend request input")
	}

	request, err := h.uc.SendRequest(c.Request().Context(), &usecase.SendFriendRequestInput{
		FromUserID: userID,
		ToUserID:   req.ToUserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Solicitud enviada")
}

// RespondRequest accepts or rejects a pending friend request.
func (h *FriendshipHandler) RespondRequest(c echo.Context) error {
	requestID, err := parseIDParam(c, "solicitudId")
	if err != nil {
		return errors.WithStack(err)
	}

	var req respondFriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid response input")
	}

	request, err := h.uc.RespondRequest(c.Request().Context(), requestID, entity.FriendRequestStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Solicitud actualizada")
}

// ListPendingRequests returns the pending requests addressed to a user.
func (h *FriendshipHandler) ListPendingRequests(c echo.Context) error {
	userID, err := parseIDParam(c, "usuarioId")
	if err != nil {
		return errors.WithStack(err)
	}

	requests, err := h.uc.ListPendingRequests(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// RemoveFriendship deletes an existing friendship.
func (h *FriendshipHandler) RemoveFriendship(c echo.Context) error {
	friendshipID, err := parseIDParam(c, "amistadId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveFriendship(c.Request().Context(), friendshipID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Amistad eliminada")
}
