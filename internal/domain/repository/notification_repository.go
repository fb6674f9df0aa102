package repository

import (
	"context"
	"errors"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the operations for in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
