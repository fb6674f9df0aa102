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

// friendshipRepository implements the repository.FriendshipRepository interface using GORM.
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository is the constructor for friendshipRepository.
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{
		db: db,
	}
}

// ListAccepted retrieves the accepted friendships in which the user appears
// on either side.
func (repo *friendshipRepository) ListAccepted(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	var friendshipModels []*model.FriendshipModel

	if err := repo.db.WithContext(ctx).
		Where("(usuario1_id = ? OR usuario2_id = ?) AND estado = ?",
			userID, userID, string(entity.FriendshipAccepted)).
		Order("fecha_inicio DESC").
		Find(&friendshipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list friendships")
	}

	friendships := make([]*entity.Friendship, 0, len(friendshipModels))
	for _, friendshipM := range friendshipModels {
		friendships = append(friendships, toFriendshipDomain(friendshipM))
	}

	return friendships, nil
}

// CreateFriendship persists a new friendship.
func (repo *friendshipRepository) CreateFriendship(ctx context.Context, friendship *entity.Friendship) error {
	friendshipM := fromFriendshipDomain(friendship)

	if err := repo.db.WithContext(ctx).Create(friendshipM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create friendship")
	}

	friendship.ID = friendshipM.ID
	friendship.StartedAt = friendshipM.StartedAt

	return nil
}

// DeleteFriendship removes a friendship.
func (repo *friendshipRepository) DeleteFriendship(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FriendshipModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete friendship")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFriendshipNotFound
	}

	return nil
}

// CreateRequest persists a new friend request.
func (repo *friendshipRepository) CreateRequest(ctx context.Context, request *entity.FriendRequest) error {
	requestM := fromFriendRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create friend request")
	}

	request.ID = requestM.ID
	request.SentAt = requestM.SentAt

	return nil
}

// FindRequestByID retrieves one friend request.
func (repo *friendshipRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error) {
	var requestM model.FriendRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find friend request by id")
	}

	return toFriendRequestDomain(&requestM), nil
}

// UpdateRequestStatus flips the status of a friend request and returns the
// updated record.
func (repo *friendshipRepository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.FriendRequestStatus) (*entity.FriendRequest, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.FriendRequestModel{}).
		Where("id = ?", id).
		Update("estado", string(status))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update friend request")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrFriendRequestNotFound
	}

	return repo.FindRequestByID(ctx, id)
}

// ListPendingRequests retrieves the pending requests addressed to a user.
func (repo *friendshipRepository) ListPendingRequests(ctx context.Context, toUserID uuid.UUID) ([]*entity.FriendRequest, error) {
	var requestModels []*model.FriendRequestModel

	if err := repo.db.WithContext(ctx).
		Where("receptor_id = ? AND estado = ?", toUserID, string(entity.FriendRequestPending)).
		Order("fecha_envio DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending friend requests")
	}

	requests := make([]*entity.FriendRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toFriendRequestDomain(requestM))
	}

	return requests, nil
}

// toFriendshipDomain converts a GORM FriendshipModel to a domain Friendship entity.
func toFriendshipDomain(data *model.FriendshipModel) *entity.Friendship {
	if data == nil {
		return nil
	}

	return &entity.Friendship{
		ID:        data.ID,
		UserID1:   data.UserID1,
		UserID2:   data.UserID2,
		Status:    entity.FriendshipStatus(data.Status),
		StartedAt: data.StartedAt,
	}
}

// fromFriendshipDomain converts a domain Friendship entity to a GORM FriendshipModel.
func fromFriendshipDomain(data *entity.Friendship) *model.FriendshipModel {
	if data == nil {
		return nil
	}

	return &model.FriendshipModel{
		ID:        data.ID,
		UserID1:   data.UserID1,
		UserID2:   data.UserID2,
		Status:    string(data.Status),
		StartedAt: data.StartedAt,
	}
}

// toFriendRequestDomain converts a GORM FriendRequestModel to a domain FriendRequest entity.
func toFriendRequestDomain(data *model.FriendRequestModel) *entity.FriendRequest {
	if data == nil {
		return nil
	}

	return &entity.FriendRequest{
		ID:         data.ID,
		FromUserID: data.FromUserID,
		ToUserID:   data.ToUserID,
		Status:     entity.FriendRequestStatus(data.Status),
		SentAt:     data.SentAt,
	}
}

// fromFriendRequestDomain converts a domain FriendRequest entity to a GORM FriendRequestModel.
func fromFriendRequestDomain(data *entity.FriendRequest) *model.FriendRequestModel {
	if data == nil {
		return nil
	}

	return &model.FriendRequestModel{
		ID:         data.ID,
		FromUserID: data.FromUserID,
		ToUserID:   data.ToUserID,
		Status:     string(data.Status),
		SentAt:     data.SentAt,
	}
}
