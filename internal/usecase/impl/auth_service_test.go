package impl

import (
	"context"
	"testing"
	"time"

	"hifybe/internal/domain/entity"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/service"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(users *fakeUserRepo, google, spotify service.OAuthService) *authService {
	return &authService{
		userRepo:     users,
		hasher:       fakeHasher{},
		tokenService: fakeTokenService{},
		oauthServices: map[entity.AuthProvider]service.OAuthService{
			entity.AuthProviderGoogle:  google,
			entity.AuthProviderSpotify: spotify,
		},
		logger: testLogger(),
	}
}

func TestAuthService_Register(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, nil, nil)

	user, err := svc.Register(context.Background(), &usecase.RegisterInput{
		GivenName:  "Ana",
		FamilyName: "García",
		Email:      "  Ana@Example.COM ",
		Password:   "secreto123",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana", user.GivenName)
	assert.Equal(t, string(entity.AuthProviderLocal), user.AuthProvider)

	stored, err := users.FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed:secreto123", stored.PasswordHash)
	// A new account is connected right away.
	assert.False(t, user.LastSeenAt.IsZero())
}

func TestAuthService_Register_BlankNamesGetPlaceholders(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), nil, nil)

	user, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultGivenName, user.GivenName)
	assert.Equal(t, entity.DefaultFamilyName, user.FamilyName)
}

func TestAuthService_Register_DuplicatePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		existing *entity.User
		wantErr  error
	}{
		{
			name: "google-linked account wins",
			existing: &entity.User{
				Email:        "ana@example.com",
				AuthProvider: entity.AuthProviderGoogle,
				GoogleID:     "g-123",
				SpotifyID:    "s-456",
			},
			wantErr: domainerrors.ErrEmailBoundToGoogle,
		},
		{
			name: "spotify-linked account",
			existing: &entity.User{
				Email:        "ana@example.com",
				AuthProvider: entity.AuthProviderSpotify,
				SpotifyID:    "s-456",
			},
			wantErr: domainerrors.ErrEmailBoundToSpotify,
		},
		{
			name: "plain local duplicate",
			existing: &entity.User{
				Email:        "ana@example.com",
				AuthProvider: entity.AuthProviderLocal,
			},
			wantErr: domainerrors.ErrEmailAlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUserRepo()
			users.add(tt.existing)
			svc := newTestAuthService(users, nil, nil)

			_, err := svc.Register(context.Background(), &usecase.RegisterInput{
				Email:    "ana@example.com",
				Password: "secreto123",
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	users := newFakeUserRepo()
	stored := users.add(&entity.User{
		Email:        "ana@example.com",
		AuthProvider: entity.AuthProviderLocal,
		PasswordHash: "hashed:secreto123",
	})
	svc := newTestAuthService(users, nil, nil)

	session, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "Ana@Example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-"+stored.ID.String(), session.Token)
	assert.Equal(t, stored.ID, session.User.ID)
	assert.Contains(t, users.touched, stored.ID)
}

func TestAuthService_Login_RefreshesLastSeen(t *testing.T) {
	users := newFakeUserRepo()
	registeredAt := time.Now().Add(-48 * time.Hour)
	users.add(&entity.User{
		Email:        "ana@example.com",
		AuthProvider: entity.AuthProviderLocal,
		PasswordHash: "hashed:secreto123",
		RegisteredAt: registeredAt,
		LastSeenAt:   registeredAt,
	})
	svc := newTestAuthService(users, nil, nil)

	session, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	// The login response reports this connection, not the previous one.
	// The repository returns detached records, so the freshly touched
	// timestamp must survive into the response.
	assert.WithinDuration(t, time.Now(), session.User.LastSeenAt, time.Second)
	assert.True(t, session.User.LastSeenAt.After(session.User.RegisteredAt))
}

func TestAuthService_Login_GenericErrorHidesCause(t *testing.T) {
	users := newFakeUserRepo()
	users.add(&entity.User{
		Email:        "ana@example.com",
		AuthProvider: entity.AuthProviderLocal,
		PasswordHash: "hashed:secreto123",
	})
	svc := newTestAuthService(users, nil, nil)

	// Unknown email and wrong password must be indistinguishable.
	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "nadie@example.com",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_FederatedCallback_NewAccount(t *testing.T) {
	users := newFakeUserRepo()
	google := &fakeOAuthService{
		provider:   entity.AuthProviderGoogle,
		validState: "state-1",
		exchangeOK: true,
		profile: &service.OAuthProfile{
			Subject:   "g-123",
			Email:     "Ana@Example.com",
			GivenName: "Ana",
			AvatarURL: "https://img.example/ana.png",
		},
	}
	svc := newTestAuthService(users, google, nil)

	session, err := svc.FederatedCallback(context.Background(), entity.AuthProviderGoogle, "state-1", "code-1")
	require.NoError(t, err)

	candidate := users.lastCandidate
	require.NotNil(t, candidate)
	assert.Equal(t, "ana@example.com", candidate.Email)
	assert.Equal(t, "g-123", candidate.GoogleID)
	assert.Equal(t, "Ana", candidate.GivenName)
	assert.Equal(t, entity.DefaultFamilyName, candidate.FamilyName)
	// Federated accounts still get a non-empty placeholder hash.
	assert.NotEmpty(t, candidate.PasswordHash)
	assert.False(t, candidate.LastSeenAt.IsZero())

	assert.Equal(t, "ana@example.com", session.User.Email)
	assert.NotEmpty(t, session.Token)
}

func TestAuthService_FederatedCallback_InvalidState(t *testing.T) {
	google := &fakeOAuthService{provider: entity.AuthProviderGoogle, validState: "state-1", exchangeOK: true}
	svc := newTestAuthService(newFakeUserRepo(), google, nil)

	_, err := svc.FederatedCallback(context.Background(), entity.AuthProviderGoogle, "forged", "code-1")
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestAuthService_FederatedCallback_ExchangeFails(t *testing.T) {
	google := &fakeOAuthService{provider: entity.AuthProviderGoogle, validState: "state-1", exchangeOK: false}
	svc := newTestAuthService(newFakeUserRepo(), google, nil)

	_, err := svc.FederatedCallback(context.Background(), entity.AuthProviderGoogle, "state-1", "code-1")
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestAuthService_FederatedCallback_MissingEmail(t *testing.T) {
	google := &fakeOAuthService{
		provider:   entity.AuthProviderGoogle,
		validState: "state-1",
		exchangeOK: true,
		profile:    &service.OAuthProfile{Subject: "g-123"},
	}
	svc := newTestAuthService(newFakeUserRepo(), google, nil)

	_, err := svc.FederatedCallback(context.Background(), entity.AuthProviderGoogle, "state-1", "code-1")
	assert.ErrorIs(t, err, domainerrors.ErrProviderEmailMissing)
}

func TestAuthService_FederatedCallback_BackfillsSubjectID(t *testing.T) {
	users := newFakeUserRepo()
	existing := users.add(&entity.User{
		Email:        "ana@example.com",
		AuthProvider: entity.AuthProviderLocal,
		PasswordHash: "hashed:secreto123",
		GivenName:    "Ana",
		FamilyName:   "García",
	})
	spotify := &fakeOAuthService{
		provider:   entity.AuthProviderSpotify,
		validState: "state-1",
		exchangeOK: true,
		profile: &service.OAuthProfile{
			Subject:   "s-456",
			Email:     "ana@example.com",
			GivenName: "Otra",
		},
	}
	svc := newTestAuthService(newFakeUserRepo(), nil, spotify)
	svc.userRepo = users

	session, err := svc.FederatedCallback(context.Background(), entity.AuthProviderSpotify, "state-1", "code-1")
	require.NoError(t, err)

	assert.Equal(t, existing.ID, session.User.ID)
	assert.Equal(t, "s-456", existing.SpotifyID)
	// Real names are never overwritten by provider data.
	assert.Equal(t, "Ana", existing.GivenName)
	assert.Equal(t, "García", existing.FamilyName)
}

func TestAuthService_Me_UnknownUser(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), nil, nil)

	_, err := svc.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPublicUser_OmitsSecrets(t *testing.T) {
	user := &entity.User{
		Email:              "ana@example.com",
		PasswordHash:       "hashed:secreto123",
		GoogleID:           "g-123",
		PasswordResetToken: "reset-token",
	}

	public := usecase.NewPublicUser(user)
	assert.Equal(t, "ana@example.com", public.Email)
	// The public DTO has no fields for hashes, subject ids or reset tokens;
	// spot-check that nothing leaked into the ones it does have.
	assert.NotContains(t, public.Biography, "hashed:")
	assert.NotContains(t, public.AvatarURL, "g-123")
}
