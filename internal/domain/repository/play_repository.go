package repository

import (
	"context"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// PlayRepository defines the operations for play-history persistence.
type PlayRepository interface {
	Create(ctx context.Context, play *entity.Play) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Play, error)
}
