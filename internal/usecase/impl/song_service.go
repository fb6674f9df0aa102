package impl

import (
	"context"
	"log/slog"

	deliverycontext "hifybe/internal/delivery/context"
	"hifybe/internal/domain/entity"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/repository"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// songService implements the SongUsecase interface.
type songService struct {
	songRepo repository.SongRepository
	logger   *slog.Logger
}

// SongServiceParams holds dependencies for songService, injected by Fx.
type SongServiceParams struct {
	fx.In

	SongRepo repository.SongRepository
	Logger   *slog.Logger
}

// NewSongService is the constructor for songService.
func NewSongService(params SongServiceParams) usecase.SongUsecase {
	return &songService{
		songRepo: params.SongRepo,
		logger:   params.Logger,
	}
}

func (srv *songService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSongs returns the whole catalog.
func (srv *songService) ListSongs(ctx context.Context) ([]*usecase.SongOutput, error) {
	songs, err := srv.songRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list songs")
	}

	out := make([]*usecase.SongOutput, 0, len(songs))
	for _, song := range songs {
		out = append(out, usecase.NewSongOutput(song))
	}

	return out, nil
}

// GetSong returns one catalog entry.
func (srv *songService) GetSong(ctx context.Context, id uuid.UUID) (*usecase.SongOutput, error) {
	song, err := srv.songRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find song")
	}

	return usecase.NewSongOutput(song), nil
}

// CreateSong adds a song to the catalog.
func (srv *songService) CreateSong(ctx context.Context, input *usecase.CreateSongInput) (*usecase.SongOutput, error) {
	song := &entity.Song{
		CatalogID:   input.CatalogID,
		Title:       input.Title,
		Artist:      input.Artist,
		Album:       input.Album,
		DurationSec: input.DurationSec,
		AudioURL:    input.AudioURL,
		ReleasedAt:  input.ReleasedAt,
	}

	if err := srv.songRepo.Create(ctx, song); err != nil {
		return nil, errors.Wrap(err, "failed to create song")
	}

	srv.log(ctx).Info("Song added to catalog", slog.Any("songID", song.ID), slog.Int64("catalogID", song.CatalogID))

	return usecase.NewSongOutput(song), nil
}

// UpdateSong applies the allow-listed catalog changes.
func (srv *songService) UpdateSong(ctx context.Context, id uuid.UUID, input *usecase.UpdateSongInput) (*usecase.SongOutput, error) {
	update := &repository.SongUpdate{
		Title:       input.Title,
		Artist:      input.Artist,
		Album:       input.Album,
		DurationSec: input.DurationSec,
		AudioURL:    input.AudioURL,
		ReleasedAt:  input.ReleasedAt,
	}

	song, err := srv.songRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to update song")
	}

	return usecase.NewSongOutput(song), nil
}

// DeleteSong removes a song from the catalog.
func (srv *songService) DeleteSong(ctx context.Context, id uuid.UUID) error {
	if err := srv.songRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete song")
	}

	return nil
}
