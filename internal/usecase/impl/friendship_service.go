package impl

import (
	"context"
	"log/slog"
	"sort"

	"hifybe/config"
	deliverycontext "hifybe/internal/delivery/context"
	"hifybe/internal/domain/entity"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/repository"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultNearbyRadiusKm = 25.0

// friendshipService implements the FriendshipUsecase interface.
type friendshipService struct {
	txManager      repository.TransactionManager
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	nearbyRadiusKm float64
	logger         *slog.Logger
}

// FriendshipServiceParams holds dependencies for friendshipService, injected by Fx.
type FriendshipServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	FriendshipRepo repository.FriendshipRepository
	UserRepo       repository.UserRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewFriendshipService is the constructor for friendshipService.
func NewFriendshipService(params FriendshipServiceParams) usecase.FriendshipUsecase {
	nearbyRadiusKm := defaultNearbyRadiusKm
	if params.Config != nil && params.Config.Friends != nil && params.Config.Friends.NearbyRadiusKm > 0 {
		nearbyRadiusKm = params.Config.Friends.NearbyRadiusKm
	}

	return &friendshipService{
		txManager:      params.TxManager,
		friendshipRepo: params.FriendshipRepo,
		userRepo:       params.UserRepo,
		nearbyRadiusKm: nearbyRadiusKm,
		logger:         params.Logger,
	}
}

func (srv *friendshipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFriends returns the accepted friendships of a user with the other
// side's profile resolved.
func (srv *friendshipService) ListFriends(ctx context.Context, userID uuid.UUID) ([]*usecase.FriendOutput, error) {
	friendships, err := srv.friendshipRepo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list friendships")
	}

	out := make([]*usecase.FriendOutput, 0, len(friendships))
	for _, friendship := range friendships {
		friendID := friendship.UserID1
		if friendID == userID {
			friendID = friendship.UserID2
		}

		friend, err := srv.userRepo.FindByID(ctx, friendID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Friend account deleted; skip the dangling row.
				continue
			}

			return nil, errors.Wrap(err, "failed to resolve friend profile")
		}

		out = append(out, &usecase.FriendOutput{
			FriendshipID: friendship.ID,
			Friend:       usecase.NewPublicUser(friend),
			StartedAt:    friendship.StartedAt,
		})
	}

	return out, nil
}

// SendRequest creates a pending friend request and notifies the recipient.
func (srv *friendshipService) SendRequest(ctx context.Context, input *usecase.SendFriendRequestInput) (*usecase.FriendRequestOutput, error) {
	if input.FromUserID == input.ToUserID {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cannot send a friend request to yourself")
	}

	sender, err := srv.userRepo.FindByID(ctx, input.FromUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find sender")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.ToUserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipient")
	}

	request := &entity.FriendRequest{
		FromUserID: input.FromUserID,
		ToUserID:   input.ToUserID,
		Status:     entity.FriendRequestPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewFriendshipRepository().CreateRequest(ctx, request); err != nil {
			return errors.Wrap(err, "failed to create friend request")
		}

		notification := &entity.Notification{
			UserID:  input.ToUserID,
			Content: sender.GivenName + " te ha enviado una solicitud de amistad.",
		}

		return errors.Wrap(
			repoFactory.NewNotificationRepository().Create(ctx, notification),
			"failed to notify recipient",
		)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Friend request sent",
		slog.Any("fromUserID", input.FromUserID), slog.Any("toUserID", input.ToUserID))

	return usecase.NewFriendRequestOutput(request), nil
}

// RespondRequest accepts or rejects a pending request. Accepting also
// creates the friendship and notifies the requester, atomically.
func (srv *friendshipService) RespondRequest(ctx context.Context, requestID uuid.UUID, status entity.FriendRequestStatus) (*usecase.FriendRequestOutput, error) {
	if status != entity.FriendRequestAccepted && status != entity.FriendRequestRejected {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("status must be aceptada or rechazada")
	}

	request, err := srv.friendshipRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrFriendRequestNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find friend request")
	}

	if request.Status != entity.FriendRequestPending {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("friend request already resolved")
	}

	var updated *entity.FriendRequest
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendshipRepo := repoFactory.NewFriendshipRepository()

		updated, err = friendshipRepo.UpdateRequestStatus(ctx, requestID, status)
		if err != nil {
			return errors.Wrap(err, "failed to update friend request")
		}

		if status != entity.FriendRequestAccepted {
			return nil
		}

		friendship := &entity.Friendship{
			UserID1: request.FromUserID,
			UserID2: request.ToUserID,
			Status:  entity.FriendshipAccepted,
		}
		if err := friendshipRepo.CreateFriendship(ctx, friendship); err != nil {
			return errors.Wrap(err, "failed to create friendship")
		}

		notification := &entity.Notification{
			UserID:  request.FromUserID,
			Content: "Tu solicitud de amistad ha sido aceptada.",
		}

		return errors.Wrap(
			repoFactory.NewNotificationRepository().Create(ctx, notification),
			"failed to notify requester",
		)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Friend request resolved",
		slog.Any("requestID", requestID), slog.String("status", string(status)))

	return usecase.NewFriendRequestOutput(updated), nil
}

// RemoveFriendship deletes an existing friendship.
func (srv *friendshipService) RemoveFriendship(ctx context.Context, friendshipID uuid.UUID) error {
	if err := srv.friendshipRepo.DeleteFriendship(ctx, friendshipID); err != nil {
		if errors.Is(err, repository.ErrFriendshipNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete friendship")
	}

	return nil
}

// ListPendingRequests returns the pending requests addressed to a user.
func (srv *friendshipService) ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]*usecase.FriendRequestOutput, error) {
	requests, err := srv.friendshipRepo.ListPendingRequests(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending friend requests")
	}

	out := make([]*usecase.FriendRequestOutput, 0, len(requests))
	for _, request := range requests {
		out = append(out, usecase.NewFriendRequestOutput(request))
	}

	return out, nil
}

// NearbyFriends returns the user's friends within the configured radius of
// the user's last known position, closest first. Friends without a known
// location are skipped.
func (srv *friendshipService) NearbyFriends(ctx context.Context, userID uuid.UUID) ([]*usecase.NearbyFriendOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.HasLocation() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("user has no known location")
	}

	origin := orb.Point{*user.Longitude, *user.Latitude}

	friends, err := srv.ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*usecase.NearbyFriendOutput, 0, len(friends))
	for _, friend := range friends {
		if friend.Friend.Latitude == nil || friend.Friend.Longitude == nil {
			continue
		}

		point := orb.Point{*friend.Friend.Longitude, *friend.Friend.Latitude}
		distanceKm := geo.DistanceHaversine(origin, point) / 1000

		if distanceKm > srv.nearbyRadiusKm {
			continue
		}

		out = append(out, &usecase.NearbyFriendOutput{
			Friend:     friend.Friend,
			DistanceKm: distanceKm,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})

	return out, nil
}
