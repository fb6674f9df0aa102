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

// playlistRepository implements the repository.PlaylistRepository interface using GORM.
type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository is the constructor for playlistRepository.
func NewPlaylistRepository(db *gorm.DB) repository.PlaylistRepository {
	return &playlistRepository{
		db: db,
	}
}

// FindByID retrieves a single playlist by its unique ID.
func (repo *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	var playlistM model.PlaylistModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&playlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist by id")
	}

	return toPlaylistDomain(&playlistM), nil
}

// ListPublic retrieves all playlists flagged as public, newest first.
func (repo *playlistRepository) ListPublic(ctx context.Context) ([]*entity.Playlist, error) {
	var playlistModels []*model.PlaylistModel

	if err := repo.db.WithContext(ctx).
		Where("publica = ?", true).
		Order("fecha_creacion DESC").
		Find(&playlistModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list public playlists")
	}

	playlists := make([]*entity.Playlist, 0, len(playlistModels))
	for _, playlistM := range playlistModels {
		playlists = append(playlists, toPlaylistDomain(playlistM))
	}

	return playlists, nil
}

// Create persists a new playlist.
func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistM := fromPlaylistDomain(playlist)

	if err := repo.db.WithContext(ctx).Create(playlistM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required playlist information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create playlist")
	}

	playlist.ID = playlistM.ID
	playlist.CreatedAt = playlistM.CreatedAt

	return nil
}

// Update applies the allow-listed changes to one playlist and returns the
// resulting record.
func (repo *playlistRepository) Update(ctx context.Context, id uuid.UUID, update *repository.PlaylistUpdate) (*entity.Playlist, error) {
	assignments := map[string]any{}
	if update.Name != nil {
		assignments["nombre"] = *update.Name
	}
	if update.Description != nil {
		assignments["descripcion"] = *update.Description
	}
	if update.Public != nil {
		assignments["publica"] = *update.Public
	}
	if update.CoverURL != nil {
		assignments["portada_url"] = *update.CoverURL
	}

	if len(assignments) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.PlaylistModel{}).
			Where("id = ?", id).
			Updates(assignments)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update playlist")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrPlaylistNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a playlist and its entries.
func (repo *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Entries first; the join table has no ON DELETE CASCADE.
	if err := repo.db.WithContext(ctx).
		Where("playlist_id = ?", id).
		Delete(&model.PlaylistEntryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete playlist entries")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlaylistModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// AddEntry appends one song to a playlist. The entry position is assigned
// here from the current maximum so callers never race on it.
func (repo *playlistRepository) AddEntry(ctx context.Context, entry *entity.PlaylistEntry) error {
	entryM := &model.PlaylistEntryModel{
		ID:         entry.ID,
		PlaylistID: entry.PlaylistID,
		SongID:     entry.SongID,
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPosition int
		if err := tx.Model(&model.PlaylistEntryModel{}).
			Where("playlist_id = ?", entry.PlaylistID).
			Select("COALESCE(MAX(posicion), 0)").
			Scan(&maxPosition).Error; err != nil {
			return errors.Wrap(err, "failed to resolve playlist position")
		}

		entryM.Position = maxPosition + 1

		return tx.Create(entryM).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("song already in playlist")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSongNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add playlist entry")
	}

	entry.ID = entryM.ID
	entry.Position = entryM.Position

	return nil
}

// RemoveEntry removes one song from a playlist.
func (repo *playlistRepository) RemoveEntry(ctx context.Context, playlistID, songID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("playlist_id = ? AND cancion_id = ?", playlistID, songID).
		Delete(&model.PlaylistEntryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove playlist entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistEntryNotFound
	}

	return nil
}

// ListEntries retrieves a playlist's entries in position order.
func (repo *playlistRepository) ListEntries(ctx context.Context, playlistID uuid.UUID) ([]*entity.PlaylistEntry, error) {
	var entryModels []*model.PlaylistEntryModel

	if err := repo.db.WithContext(ctx).
		Where("playlist_id = ?", playlistID).
		Order("posicion ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list playlist entries")
	}

	entries := make([]*entity.PlaylistEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, &entity.PlaylistEntry{
			ID:         entryM.ID,
			PlaylistID: entryM.PlaylistID,
			SongID:     entryM.SongID,
			Position:   entryM.Position,
		})
	}

	return entries, nil
}

// toPlaylistDomain converts a GORM PlaylistModel to a domain Playlist entity.
func toPlaylistDomain(data *model.PlaylistModel) *entity.Playlist {
	if data == nil {
		return nil
	}

	return &entity.Playlist{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		Public:      data.Public,
		CoverURL:    data.CoverURL,
		CreatedAt:   data.CreatedAt,
	}
}

// fromPlaylistDomain converts a domain Playlist entity to a GORM PlaylistModel.
func fromPlaylistDomain(data *entity.Playlist) *model.PlaylistModel {
	if data == nil {
		return nil
	}

	return &model.PlaylistModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		Public:      data.Public,
		CoverURL:    data.CoverURL,
		CreatedAt:   data.CreatedAt,
	}
}
