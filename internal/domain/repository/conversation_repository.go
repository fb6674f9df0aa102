package repository

import (
	"context"
	"errors"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for conversation persistence.
var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
)

// ConversationRepository defines the operations for direct-message threads.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)
	// ListByUser returns the conversations in which the user appears on
	// either side.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)
	MarkMessageRead(ctx context.Context, messageID uuid.UUID) (*entity.Message, error)
}
