package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"hifybe/internal/domain/entity"
	"hifybe/internal/domain/repository"
	"hifybe/internal/domain/service"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User

	lastCandidate *entity.User
	touched       []uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) add(user *entity.User) *entity.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user

	return user
}

// cloneUser returns a detached copy, matching the real repository: rows are
// mapped into fresh entities, so mutating the store never changes a record
// a caller already holds.
func cloneUser(user *entity.User) *entity.User {
	cloned := *user

	return &cloned
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}

	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	r.add(user)

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, id uuid.UUID, update *repository.UserUpdate) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	if update.GivenName != nil {
		user.GivenName = *update.GivenName
	}
	if update.FamilyName != nil {
		user.FamilyName = *update.FamilyName
	}
	if update.Biography != nil {
		user.Biography = *update.Biography
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	if update.Latitude != nil {
		user.Latitude = update.Latitude
	}
	if update.Longitude != nil {
		user.Longitude = update.Longitude
	}
	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
	}

	return cloneUser(user), nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

func (r *fakeUserRepo) TouchLastSeen(_ context.Context, id uuid.UUID) error {
	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.LastSeenAt = time.Now()
	r.touched = append(r.touched, id)

	return nil
}

func (r *fakeUserRepo) ReconcileFederated(_ context.Context, candidate *entity.User) (*entity.User, error) {
	r.lastCandidate = candidate

	for _, existing := range r.users {
		if existing.Email == candidate.Email {
			if candidate.GoogleID != "" && existing.GoogleID == "" {
				existing.GoogleID = candidate.GoogleID
			}
			if candidate.SpotifyID != "" && existing.SpotifyID == "" {
				existing.SpotifyID = candidate.SpotifyID
			}
			if existing.GivenName == "" || existing.GivenName == entity.DefaultGivenName {
				existing.GivenName = candidate.GivenName
			}
			if existing.FamilyName == "" || existing.FamilyName == entity.DefaultFamilyName {
				existing.FamilyName = candidate.FamilyName
			}
			existing.LastSeenAt = time.Now()

			return cloneUser(existing), nil
		}
	}

	return cloneUser(r.add(candidate)), nil
}

// fakeHasher marks hashes with a recognizable prefix.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues predictable tokens.
type fakeTokenService struct{}

func (fakeTokenService) Issue(userID uuid.UUID) (string, error) {
	return "token-" + userID.String(), nil
}

func (fakeTokenService) Verify(token string) (uuid.UUID, error) {
	return uuid.Parse(token[len("token-"):])
}

func (fakeTokenService) SessionDuration() time.Duration {
	return time.Hour * 24 * 7
}

// fakeOAuthService replays a canned profile.
type fakeOAuthService struct {
	provider   entity.AuthProvider
	validState string
	profile    *service.OAuthProfile
	exchangeOK bool
}

func (s *fakeOAuthService) Provider() entity.AuthProvider {
	return s.provider
}

func (s *fakeOAuthService) BuildAuthorizationURL() string {
	return "https://provider.example/authorize?state=" + s.validState
}

func (s *fakeOAuthService) ValidateState(state string) bool {
	return state == s.validState
}

func (s *fakeOAuthService) ExchangeCode(_ context.Context, code string) (string, error) {
	if !s.exchangeOK {
		return "", errors.New("exchange rejected")
	}

	return "access-" + code, nil
}

func (s *fakeOAuthService) FetchProfile(_ context.Context, _ string) (*service.OAuthProfile, error) {
	return s.profile, nil
}

// fakeFriendshipRepo is an in-memory FriendshipRepository.
type fakeFriendshipRepo struct {
	friendships map[uuid.UUID]*entity.Friendship
	requests    map[uuid.UUID]*entity.FriendRequest
}

func newFakeFriendshipRepo() *fakeFriendshipRepo {
	return &fakeFriendshipRepo{
		friendships: make(map[uuid.UUID]*entity.Friendship),
		requests:    make(map[uuid.UUID]*entity.FriendRequest),
	}
}

func (r *fakeFriendshipRepo) ListAccepted(_ context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	out := make([]*entity.Friendship, 0)
	for _, friendship := range r.friendships {
		if friendship.Status != entity.FriendshipAccepted {
			continue
		}
		if friendship.UserID1 == userID || friendship.UserID2 == userID {
			out = append(out, friendship)
		}
	}

	return out, nil
}

func (r *fakeFriendshipRepo) CreateFriendship(_ context.Context, friendship *entity.Friendship) error {
	if friendship.ID == uuid.Nil {
		friendship.ID = uuid.New()
	}
	friendship.StartedAt = time.Now()
	r.friendships[friendship.ID] = friendship

	return nil
}

func (r *fakeFriendshipRepo) DeleteFriendship(_ context.Context, id uuid.UUID) error {
	if _, ok := r.friendships[id]; !ok {
		return repository.ErrFriendshipNotFound
	}
	delete(r.friendships, id)

	return nil
}

func (r *fakeFriendshipRepo) CreateRequest(_ context.Context, request *entity.FriendRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	request.SentAt = time.Now()
	r.requests[request.ID] = request

	return nil
}

func (r *fakeFriendshipRepo) FindRequestByID(_ context.Context, id uuid.UUID) (*entity.FriendRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, repository.ErrFriendRequestNotFound
	}

	return request, nil
}

func (r *fakeFriendshipRepo) UpdateRequestStatus(_ context.Context, id uuid.UUID, status entity.FriendRequestStatus) (*entity.FriendRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, repository.ErrFriendRequestNotFound
	}

	request.Status = status

	return request, nil
}

func (r *fakeFriendshipRepo) ListPendingRequests(_ context.Context, toUserID uuid.UUID) ([]*entity.FriendRequest, error) {
	out := make([]*entity.FriendRequest, 0)
	for _, request := range r.requests {
		if request.ToUserID == toUserID && request.Status == entity.FriendRequestPending {
			out = append(out, request)
		}
	}

	return out, nil
}

// fakeNotificationRepo records created notifications.
type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notification.CreatedAt = time.Now()
	r.created = append(r.created, notification)

	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	out := make([]*entity.Notification, 0)
	for _, notification := range r.created {
		if notification.UserID == userID {
			out = append(out, notification)
		}
	}

	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id uuid.UUID) (*entity.Notification, error) {
	for _, notification := range r.created {
		if notification.ID == id {
			notification.Read = true

			return notification, nil
		}
	}

	return nil, repository.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, notification := range r.created {
		if notification.ID == id {
			r.created = append(r.created[:i], r.created[i+1:]...)

			return nil
		}
	}

	return repository.ErrNotificationNotFound
}

// fakeTxManager runs the callback against the shared fakes, without any
// transactional semantics.
type fakeTxManager struct {
	users         *fakeUserRepo
	friendships   *fakeFriendshipRepo
	notifications *fakeNotificationRepo
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *fakeTxManager) NewUserRepository() repository.UserRepository {
	return m.users
}

func (m *fakeTxManager) NewFriendshipRepository() repository.FriendshipRepository {
	return m.friendships
}

func (m *fakeTxManager) NewNotificationRepository() repository.NotificationRepository {
	return m.notifications
}
