package usecase

import (
	"context"
	"time"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationOutput is the outward-facing notification representation.
type NotificationOutput struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"usuario_id"`
	Content   string    `json:"contenido"`
	Read      bool      `json:"leida"`
	CreatedAt time.Time `json:"fecha_creacion"`
}

// NewNotificationOutput maps a domain notification to its output form.
func NewNotificationOutput(notification *entity.Notification) *NotificationOutput {
	if notification == nil {
		return nil
	}

	return &NotificationOutput{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Content:   notification.Content,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}

// NotificationUsecase defines the interface for in-app notification
// operations.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*NotificationOutput, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) (*NotificationOutput, error)
	DeleteNotification(ctx context.Context, id uuid.UUID) error
}
