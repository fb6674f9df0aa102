package usecase

import (
	"context"
	"time"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// StartConversationInput defines the two participants of a new thread.
type StartConversationInput struct {
	UserID1 uuid.UUID
	UserID2 uuid.UUID
}

// SendMessageInput defines the data required to send a message. A message
// may carry an attached song recommendation.
type SendMessageInput struct {
	SenderID uuid.UUID
	Content  string
	SongID   *uuid.UUID
}

// ConversationOutput is the outward-facing conversation representation.
type ConversationOutput struct {
	ID        uuid.UUID `json:"id"`
	UserID1   uuid.UUID `json:"usuario1_id"`
	UserID2   uuid.UUID `json:"usuario2_id"`
	StartedAt time.Time `json:"fecha_inicio"`
}

// NewConversationOutput maps a domain conversation to its output form.
func NewConversationOutput(conversation *entity.Conversation) *ConversationOutput {
	if conversation == nil {
		return nil
	}

	return &ConversationOutput{
		ID:        conversation.ID,
		UserID1:   conversation.UserID1,
		UserID2:   conversation.UserID2,
		StartedAt: conversation.StartedAt,
	}
}

// MessageOutput is the outward-facing message representation.
type MessageOutput struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversacion_id"`
	SenderID       uuid.UUID  `json:"emisor_id"`
	Content        string     `json:"contenido"`
	SongID         *uuid.UUID `json:"cancion_id,omitempty"`
	Read           bool       `json:"leido"`
	SentAt         time.Time  `json:"fecha_envio"`
}

// NewMessageOutput maps a domain message to its output form.
func NewMessageOutput(message *entity.Message) *MessageOutput {
	if message == nil {
		return nil
	}

	return &MessageOutput{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Content:        message.Content,
		SongID:         message.SongID,
		Read:           message.Read,
		SentAt:         message.SentAt,
	}
}

// ConversationUsecase defines the interface for direct-message operations.
type ConversationUsecase interface {
	StartConversation(ctx context.Context, input *StartConversationInput) (*ConversationOutput, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*ConversationOutput, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*MessageOutput, error)

	// SendMessage appends a message to a conversation. The sender must be
	// one of the two participants.
	SendMessage(ctx context.Context, conversationID uuid.UUID, input *SendMessageInput) (*MessageOutput, error)

	MarkMessageRead(ctx context.Context, messageID uuid.UUID) (*MessageOutput, error)
}
