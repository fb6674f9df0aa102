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

// playService implements the PlayUsecase interface.
type playService struct {
	playRepo repository.PlayRepository
	songRepo repository.SongRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// PlayServiceParams holds dependencies for playService, injected by Fx.
type PlayServiceParams struct {
	fx.In

	PlayRepo repository.PlayRepository
	SongRepo repository.SongRepository
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewPlayService is the constructor for playService.
func NewPlayService(params PlayServiceParams) usecase.PlayUsecase {
	return &playService{
		playRepo: params.PlayRepo,
		songRepo: params.SongRepo,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *playService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordPlay stores one playback event. When the listener shared a location
// it also refreshes the user's last known position, which feeds the
// nearby-friends lookup.
func (srv *playService) RecordPlay(ctx context.Context, input *usecase.RecordPlayInput) (*usecase.PlayOutput, error) {
	song, err := srv.songRepo.FindByID(ctx, input.SongID)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find song for play record")
	}

	play := &entity.Play{
		UserID:    input.UserID,
		SongID:    input.SongID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}

	if err := srv.playRepo.Create(ctx, play); err != nil {
		return nil, errors.Wrap(err, "failed to record play")
	}

	if input.Latitude != nil && input.Longitude != nil {
		update := &repository.UserUpdate{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		}
		if _, err := srv.userRepo.Update(ctx, input.UserID, update); err != nil {
			srv.log(ctx).Warn("Failed to refresh listener position", slog.Any("userID", input.UserID), slog.Any("error", err))
		}
	}

	return usecase.NewPlayOutput(play, song), nil
}

// UserHistory returns a user's play history with songs resolved, most
// recent first.
func (srv *playService) UserHistory(ctx context.Context, userID uuid.UUID) ([]*usecase.PlayOutput, error) {
	plays, err := srv.playRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list play history")
	}

	out := make([]*usecase.PlayOutput, 0, len(plays))
	for _, play := range plays {
		song, err := srv.songRepo.FindByID(ctx, play.SongID)
		if err != nil {
			if errors.Is(err, repository.ErrSongNotFound) {
				// Song removed from the catalog; keep the bare record.
				out = append(out, usecase.NewPlayOutput(play, nil))

				continue
			}

			return nil, errors.Wrap(err, "failed to resolve played song")
		}
		out = append(out, usecase.NewPlayOutput(play, song))
	}

	return out, nil
}
