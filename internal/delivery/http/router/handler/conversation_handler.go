package handler

import (
	"net/http"

	"hifybe/internal/delivery/http/response"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConversationHandler holds dependencies for direct-message handlers.
type ConversationHandler struct {
	uc usecase.ConversationUsecase
}

// NewConversationHandler is the constructor for ConversationHandler, injected by Fx.
func NewConversationHandler(uc usecase.ConversationUsecase) *ConversationHandler {
	return &ConversationHandler{uc: uc}
}

type startConversationRequest struct {
	OtherUserID uuid.UUID `json:"usuario_id" validate:"required"`
}

type sendMessageRequest struct {
	Content string     `json:"contenido" validate:"required"`
	SongID  *uuid.UUID `json:"cancion_id"`
}

// StartConversation opens a thread between the authenticated user and
// another user.
func (h *ConversationHandler) StartConversation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req startConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid conversation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid conversation input")
	}

	conversation, err := h.uc.StartConversation(c.Request().Context(), &usecase.StartConversationInput{
		UserID1: userID,
		UserID2: req.OtherUserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, conversation, "Conversación creada")
}

// ListConversations returns the authenticated user's threads.
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	conversations, err := h.uc.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversations, "")
}

// ListMessages returns a thread's messages in send order.
func (h *ConversationHandler) ListMessages(c echo.Context) error {
	conversationID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	messages, err := h.uc.ListMessages(c.Request().Context(), conversationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// SendMessage appends a message, optionally carrying a song recommendation.
func (h *ConversationHandler) SendMessage(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	conversationID, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid message input")
	}

	message, err := h.uc.SendMessage(c.Request().Context(), conversationID, &usecase.SendMessageInput{
		SenderID: userID,
		Content:  req.Content,
		SongID:   req.SongID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Mensaje enviado")
}

// MarkMessageRead flags one message as read.
func (h *ConversationHandler) MarkMessageRead(c echo.Context) error {
	messageID, err := parseIDParam(c, "mensajeId")
	if err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.MarkMessageRead(c.Request().Context(), messageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Mensaje leído")
}
