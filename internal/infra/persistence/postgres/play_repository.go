package postgres

import (
	"context"

	"hifybe/internal/domain/entity"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/repository"
	"hifybe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// playRepository implements the repository.PlayRepository interface using GORM.
type playRepository struct {
	db *gorm.DB
}

// NewPlayRepository is the constructor for playRepository.
func NewPlayRepository(db *gorm.DB) repository.PlayRepository {
	return &playRepository{
		db: db,
	}
}

// Create records one playback.
func (repo *playRepository) Create(ctx context.Context, play *entity.Play) error {
	playM := fromPlayDomain(play)

	if err := repo.db.WithContext(ctx).Create(playM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSongNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create play record")
	}

	play.ID = playM.ID
	play.PlayedAt = playM.PlayedAt

	return nil
}

// ListByUser retrieves a user's play history, most recent first.
func (repo *playRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Play, error) {
	var playModels []*model.PlayModel

	if err := repo.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("fecha_reproduccion DESC").
		Find(&playModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plays by user")
	}

	plays := make([]*entity.Play, 0, len(playModels))
	for _, playM := range playModels {
		plays = append(plays, toPlayDomain(playM))
	}

	return plays, nil
}

// toPlayDomain converts a GORM PlayModel to a domain Play entity.
func toPlayDomain(data *model.PlayModel) *entity.Play {
	if data == nil {
		return nil
	}

	return &entity.Play{
		ID:        data.ID,
		UserID:    data.UserID,
		SongID:    data.SongID,
		PlayedAt:  data.PlayedAt,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}
}

// fromPlayDomain converts a domain Play entity to a GORM PlayModel.
func fromPlayDomain(data *entity.Play) *model.PlayModel {
	if data == nil {
		return nil
	}

	return &model.PlayModel{
		ID:        data.ID,
		UserID:    data.UserID,
		SongID:    data.SongID,
		PlayedAt:  data.PlayedAt,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}
}
