package impl

import (
	"context"
	"log/slog"

	deliverycontext "hifybe/internal/delivery/context"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/repository"
	"hifybe/internal/domain/service"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every account in sanitized form.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.PublicUser, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return usecase.NewPublicUsers(users), nil
}

// GetUser returns one account in sanitized form.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*usecase.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return usecase.NewPublicUser(user), nil
}

// UpdateUser applies the allow-listed profile changes. A password change is
// hashed here so plaintext never reaches the repository.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*usecase.PublicUser, error) {
	update := &repository.UserUpdate{
		GivenName:  input.GivenName,
		FamilyName: input.FamilyName,
		Biography:  input.Biography,
		AvatarURL:  input.AvatarURL,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
	}

	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during profile update", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to hash password during profile update")
		}
		update.PasswordHash = &hashed
	}

	user, err := srv.userRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", id))

	return usecase.NewPublicUser(user), nil
}

// DeleteUser removes an account.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", id))

	return nil
}
