package impl

import (
	"context"
	"log/slog"

	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/repository"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// ListNotifications returns a user's notifications, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID) ([]*usecase.NotificationOutput, error) {
	notifications, err := srv.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	out := make([]*usecase.NotificationOutput, 0, len(notifications))
	for _, notification := range notifications {
		out = append(out, usecase.NewNotificationOutput(notification))
	}

	return out, nil
}

// MarkNotificationRead flags one notification as read.
func (srv *notificationService) MarkNotificationRead(ctx context.Context, id uuid.UUID) (*usecase.NotificationOutput, error) {
	notification, err := srv.notificationRepo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to mark notification read")
	}

	return usecase.NewNotificationOutput(notification), nil
}

// DeleteNotification removes a notification.
func (srv *notificationService) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	if err := srv.notificationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}
