// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"hifybe/config"
	deliverycontext "hifybe/internal/delivery/context"
	"hifybe/internal/domain/entity"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/repository"
	"hifybe/internal/domain/service"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	oauthServices map[entity.AuthProvider]service.OAuthService
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	GoogleOAuth  service.OAuthService `name:"googleOAuth"`
	SpotifyOAuth service.OAuthService `name:"spotifyOAuth"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		oauthServices: map[entity.AuthProvider]service.OAuthService{
			entity.AuthProviderGoogle:  params.GoogleOAuth,
			entity.AuthProviderSpotify: params.SpotifyOAuth,
		},
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local account. When the email is already taken, the
// error names the login path that owns it: google first, then spotify, then
// the plain local duplicate.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.PublicUser, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email during registration")
	}
	if existing != nil {
		switch {
		case existing.GoogleID != "":
			return nil, domainerrors.ErrEmailBoundToGoogle
		case existing.SpotifyID != "":
			return nil, domainerrors.ErrEmailBoundToSpotify
		default:
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        email,
		AuthProvider: entity.AuthProviderLocal,
		PasswordHash: hashedPassword,
		GivenName:    fallbackName(input.GivenName, entity.DefaultGivenName),
		FamilyName:   fallbackName(input.FamilyName, entity.DefaultFamilyName),
		// A fresh account counts as connected right now, so the first
		// login response never reports a zero ultima_conexion.
		LastSeenAt: time.Now(),
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the race against a concurrent registration.
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return usecase.NewPublicUser(newUser), nil
}

// Login verifies a password login. Unknown email and wrong password report
// the same error so accounts cannot be enumerated.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if err := srv.userRepo.TouchLastSeen(ctx, user.ID); err != nil {
		srv.log(ctx).Warn("Failed to update last seen", slog.Any("userID", user.ID), slog.Any("error", err))
	} else {
		// The repository hands back detached records, so the touched
		// timestamp has to be mirrored here for the response to carry it.
		user.LastSeenAt = time.Now()
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.SessionOutput{
		Token: token,
		User:  usecase.NewPublicUser(user),
	}, nil
}

// AuthorizationURL returns the consent URL for a federated provider.
func (srv *authService) AuthorizationURL(provider entity.AuthProvider) (string, error) {
	oauthSvc, ok := srv.oauthServices[provider]
	if !ok {
		return "", domainerrors.ErrValidationFailed.WrapMessage("unknown auth provider")
	}

	return oauthSvc.BuildAuthorizationURL(), nil
}

// FederatedCallback completes the authorization-code flow and reconciles
// the provider profile against the account store.
func (srv *authService) FederatedCallback(ctx context.Context, provider entity.AuthProvider, state, code string) (*usecase.SessionOutput, error) {
	oauthSvc, ok := srv.oauthServices[provider]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown auth provider")
	}

	if !oauthSvc.ValidateState(state) {
		srv.log(ctx).Warn("OAuth state validation failed", slog.String("provider", string(provider)))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("invalid state parameter")
	}

	accessToken, err := oauthSvc.ExchangeCode(ctx, code)
	if err != nil {
		srv.log(ctx).Error("OAuth code exchange failed", slog.String("provider", string(provider)), slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("code exchange failed")
	}

	profile, err := oauthSvc.FetchProfile(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Error("OAuth profile fetch failed", slog.String("provider", string(provider)), slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("profile fetch failed")
	}

	if profile.Email == "" {
		return nil, domainerrors.ErrProviderEmailMissing
	}

	user, err := srv.reconcileProfile(ctx, provider, profile)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Federated login completed", slog.String("provider", string(provider)), slog.Any("userID", user.ID))

	return &usecase.SessionOutput{
		Token: token,
		User:  usecase.NewPublicUser(user),
	}, nil
}

// reconcileProfile builds the candidate account for a federated profile and
// hands it to the repository's atomic upsert. Federated accounts get a
// random, never-used password hash so the column stays non-null without
// opening a password login path.
func (srv *authService) reconcileProfile(ctx context.Context, provider entity.AuthProvider, profile *service.OAuthProfile) (*entity.User, error) {
	randomSecret, err := randomPassword()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate placeholder password")
	}

	placeholderHash, err := srv.hasher.Hash(randomSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash placeholder password")
	}

	candidate := &entity.User{
		Email:        strings.ToLower(strings.TrimSpace(profile.Email)),
		AuthProvider: provider,
		PasswordHash: placeholderHash,
		GivenName:    fallbackName(profile.GivenName, entity.DefaultGivenName),
		FamilyName:   fallbackName(profile.FamilyName, entity.DefaultFamilyName),
		AvatarURL:    profile.AvatarURL,
		// Covers the insert path of the upsert; on conflict the statement
		// itself refreshes ultima_conexion.
		LastSeenAt: time.Now(),
	}

	switch provider {
	case entity.AuthProviderGoogle:
		candidate.GoogleID = profile.Subject
	case entity.AuthProviderSpotify:
		candidate.SpotifyID = profile.Subject
	}

	user, err := srv.userRepo.ReconcileFederated(ctx, candidate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reconcile federated account")
	}

	return user, nil
}

// Me returns the sanitized account of the authenticated user.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*usecase.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load authenticated user")
	}

	return usecase.NewPublicUser(user), nil
}

// fallbackName substitutes the placeholder when a name field is blank.
func fallbackName(name, placeholder string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return placeholder
	}

	return name
}

// randomPassword returns 32 bytes of hex-encoded randomness.
func randomPassword() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}
