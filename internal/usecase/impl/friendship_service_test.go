package impl

import (
	"context"
	"testing"

	"hifybe/internal/domain/entity"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type friendshipFixture struct {
	users         *fakeUserRepo
	friendships   *fakeFriendshipRepo
	notifications *fakeNotificationRepo
	svc           *friendshipService
}

func newFriendshipFixture(radiusKm float64) *friendshipFixture {
	users := newFakeUserRepo()
	friendships := newFakeFriendshipRepo()
	notifications := &fakeNotificationRepo{}

	return &friendshipFixture{
		users:         users,
		friendships:   friendships,
		notifications: notifications,
		svc: &friendshipService{
			txManager:      &fakeTxManager{users: users, friendships: friendships, notifications: notifications},
			friendshipRepo: friendships,
			userRepo:       users,
			nearbyRadiusKm: radiusKm,
			logger:         testLogger(),
		},
	}
}

func locatedUser(name string, lat, lon float64) *entity.User {
	return &entity.User{
		Email:     name + "@example.com",
		GivenName: name,
		Latitude:  &lat,
		Longitude: &lon,
	}
}

func TestFriendshipService_SendRequest(t *testing.T) {
	fx := newFriendshipFixture(defaultNearbyRadiusKm)
	sender := fx.users.add(&entity.User{Email: "ana@example.com", GivenName: "Ana"})
	recipient := fx.users.add(&entity.User{Email: "luis@example.com", GivenName: "Luis"})

	request, err := fx.svc.SendRequest(context.Background(), &usecase.SendFriendRequestInput{
		FromUserID: sender.ID,
		ToUserID:   recipient.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.FriendRequestPending), request.Status)

	require.Len(t, fx.notifications.created, 1)
	assert.Equal(t, recipient.ID, fx.notifications.created[0].UserID)
	assert.Equal(t, "Ana te ha enviado una solicitud de amistad.", fx.notifications.created[0].Content)
}

func TestFriendshipService_SendRequest_ToSelf(t *testing.T) {
	fx := newFriendshipFixture(defaultNearbyRadiusKm)
	user := fx.users.add(&entity.User{Email: "ana@example.com"})

	_, err := fx.svc.SendRequest(context.Background(), &usecase.SendFriendRequestInput{
		FromUserID: user.ID,
		ToUserID:   user.ID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFriendshipService_SendRequest_UnknownRecipient(t *testing.T) {
	fx := newFriendshipFixture(defaultNearbyRadiusKm)
	sender := fx.users.add(&entity.User{Email: "ana@example.com"})

	_, err := fx.svc.SendRequest(context.Background(), &usecase.SendFriendRequestInput{
		FromUserID: sender.ID,
		ToUserID:   uuid.New(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFriendshipService_RespondRequest_Accept(t *testing.T) {
	fx := newFriendshipFixture(defaultNearbyRadiusKm)
	sender := fx.users.add(&entity.User{Email: "ana@example.com", GivenName: "Ana"})
	recipient := fx.users.add(&entity.User{Email: "luis@example.com", GivenName: "Luis"})

	request := &entity.FriendRequest{
		FromUserID: sender.ID,
		ToUserID:   recipient.ID,
		Status:     entity.FriendRequestPending,
	}
	require.NoError(t, fx.friendships.CreateRequest(context.Background(), request))

	resolved, err := fx.svc.RespondRequest(context.Background(), request.ID, entity.FriendRequestAccepted)
	require.NoError(t, err)
	assert.Equal(t, string(entity.FriendRequestAccepted), resolved.Status)

	friends, err := fx.friendships.ListAccepted(context.Background(), sender.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, sender.ID, friends[0].UserID1)
	assert.Equal(t, recipient.ID, friends[0].UserID2)

	require.Len(t, fx.notifications.created, 1)
	assert.Equal(t, sender.ID, fx.notifications.created[0].UserID)
	assert.Equal(t, "Tu solicitud de amistad ha sido aceptada.", fx.notifications.created[0].Content)
}

func TestFriendshipService_RespondRequest_Reject(t *testing.T) {
	fx := newFriendshipFixture(defaultNearbyRadiusKm)
	sender := fx.users.add(&entity.User{Email: "ana@example.com"})
	recipient := fx.users.add(&entity.User{Email: "luis@example.com"})

	request := &entity.FriendRequest{
		FromUserID: sender.ID,
		ToUserID:   recipient.ID,
		Status:     entity.FriendRequestPending,
	}
	require.NoError(t, fx.friendships.CreateRequest(context.Background(), request))

	resolved, err := fx.svc.RespondRequest(context.Background(), request.ID, entity.FriendRequestRejected)
	require.NoError(t, err)
	assert.Equal(t, string(entity.FriendRequestRejected), resolved.Status)

	friends, err := fx.friendships.ListAccepted(context.Background(), sender.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
	assert.Empty(t, fx.notifications.created)
}

func TestFriendshipService_RespondRequest_InvalidStatus(t *testing.T) {
	fx := newFriendshipFixture(defaultNearbyRadiusKm)

	_, err := fx.svc.RespondRequest(context.Background(), uuid.New(), entity.FriendRequestPending)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFriendshipService_RespondRequest_AlreadyResolved(t *testing.T) {
	fx := newFriendshipFixture(defaultNearbyRadiusKm)
	request := &entity.FriendRequest{
		FromUserID: uuid.New(),
		ToUserID:   uuid.New(),
		Status:     entity.FriendRequestPending,
	}
	require.NoError(t, fx.friendships.CreateRequest(context.Background(), request))
	request.Status = entity.FriendRequestAccepted

	_, err := fx.svc.RespondRequest(context.Background(), request.ID, entity.FriendRequestAccepted)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFriendshipService_ListFriends_SkipsDeletedAccounts(t *testing.T) {
	fx := newFriendshipFixture(defaultNearbyRadiusKm)
	user := fx.users.add(&entity.User{Email: "ana@example.com"})
	friend := fx.users.add(&entity.User{Email: "luis@example.com"})

	require.NoError(t, fx.friendships.CreateFriendship(context.Background(), &entity.Friendship{
		UserID1: user.ID, UserID2: friend.ID, Status: entity.FriendshipAccepted,
	}))
	require.NoError(t, fx.friendships.CreateFriendship(context.Background(), &entity.Friendship{
		UserID1: uuid.New(), UserID2: user.ID, Status: entity.FriendshipAccepted,
	}))

	friends, err := fx.svc.ListFriends(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, friend.ID, friends[0].Friend.ID)
}

func TestFriendshipService_NearbyFriends(t *testing.T) {
	// Madrid as the origin; Toledo is ~70 km away, Alcalá ~30 km and
	// Getafe ~13 km.
	fx := newFriendshipFixture(50)
	me := fx.users.add(locatedUser("yo", 40.4168, -3.7038))
	getafe := fx.users.add(locatedUser("getafe", 40.3083, -3.7327))
	alcala := fx.users.add(locatedUser("alcala", 40.4820, -3.3635))
	toledo := fx.users.add(locatedUser("toledo", 39.8628, -4.0273))
	nowhere := fx.users.add(&entity.User{Email: "sinsitio@example.com"})

	for _, friend := range []*entity.User{toledo, alcala, getafe, nowhere} {
		require.NoError(t, fx.friendships.CreateFriendship(context.Background(), &entity.Friendship{
			UserID1: me.ID, UserID2: friend.ID, Status: entity.FriendshipAccepted,
		}))
	}

	nearby, err := fx.svc.NearbyFriends(context.Background(), me.ID)
	require.NoError(t, err)

	// Toledo is out of radius, the friend without location is skipped, and
	// the rest come back closest first.
	require.Len(t, nearby, 2)
	assert.Equal(t, getafe.ID, nearby[0].Friend.ID)
	assert.Equal(t, alcala.ID, nearby[1].Friend.ID)
	assert.Less(t, nearby[0].DistanceKm, nearby[1].DistanceKm)
	assert.InDelta(t, 12.3, nearby[0].DistanceKm, 3)
}

func TestFriendshipService_NearbyFriends_NoOwnLocation(t *testing.T) {
	fx := newFriendshipFixture(defaultNearbyRadiusKm)
	me := fx.users.add(&entity.User{Email: "ana@example.com"})

	_, err := fx.svc.NearbyFriends(context.Background(), me.ID)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
