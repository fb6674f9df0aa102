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

// songRepository implements the repository.SongRepository interface using GORM.
type songRepository struct {
	db *gorm.DB
}

// NewSongRepository is the constructor for songRepository.
func NewSongRepository(db *gorm.DB) repository.SongRepository {
	return &songRepository{
		db: db,
	}
}

// FindByID retrieves a single song by its unique ID.
func (repo *songRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Song, error) {
	var songM model.SongModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&songM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSongNotFound
		}

		return nil, errors.Wrap(err, "failed to find song by id")
	}

	return toSongDomain(&songM), nil
}

// List retrieves the whole catalog ordered by catalog number.
func (repo *songRepository) List(ctx context.Context) ([]*entity.Song, error) {
	var songModels []*model.SongModel

	if err := repo.db.WithContext(ctx).
		Order("numero_catalogo ASC").
		Find(&songModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list songs")
	}

	songs := make([]*entity.Song, 0, len(songModels))
	for _, songM := range songModels {
		songs = append(songs, toSongDomain(songM))
	}

	return songs, nil
}

// Create persists a new song to the catalog.
func (repo *songRepository) Create(ctx context.Context, song *entity.Song) error {
	songM := fromSongDomain(song)

	if err := repo.db.WithContext(ctx).Create(songM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("catalog number already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required song information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create song")
	}

	song.ID = songM.ID

	return nil
}

// Update applies the allow-listed changes to one song and returns the
// resulting record.
func (repo *songRepository) Update(ctx context.Context, id uuid.UUID, update *repository.SongUpdate) (*entity.Song, error) {
	assignments := map[string]any{}
	if update.Title != nil {
		assignments["titulo"] = *update.Title
	}
	if update.Artist != nil {
		assignments["artista"] = *update.Artist
	}
	if update.Album != nil {
		assignments["album"] = *update.Album
	}
	if update.DurationSec != nil {
		assignments["duracion_seg"] = *update.DurationSec
	}
	if update.AudioURL != nil {
		assignments["audio_url"] = *update.AudioURL
	}
	if update.ReleasedAt != nil {
		assignments["fecha_lanzamiento"] = *update.ReleasedAt
	}

	if len(assignments) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.SongModel{}).
			Where("id = ?", id).
			Updates(assignments)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update song")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrSongNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a song from the catalog.
func (repo *songRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SongModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete song")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSongNotFound
	}

	return nil
}

// toSongDomain converts a GORM SongModel to a domain Song entity.
func toSongDomain(data *model.SongModel) *entity.Song {
	if data == nil {
		return nil
	}

	return &entity.Song{
		ID:          data.ID,
		CatalogID:   data.CatalogID,
		Title:       data.Title,
		Artist:      data.Artist,
		Album:       data.Album,
		DurationSec: data.DurationSec,
		AudioURL:    data.AudioURL,
		ReleasedAt:  data.ReleasedAt,
	}
}

// fromSongDomain converts a domain Song entity to a GORM SongModel.
func fromSongDomain(data *entity.Song) *model.SongModel {
	if data == nil {
		return nil
	}

	return &model.SongModel{
		ID:          data.ID,
		CatalogID:   data.CatalogID,
		Title:       data.Title,
		Artist:      data.Artist,
		Album:       data.Album,
		DurationSec: data.DurationSec,
		AudioURL:    data.AudioURL,
		ReleasedAt:  data.ReleasedAt,
	}
}
