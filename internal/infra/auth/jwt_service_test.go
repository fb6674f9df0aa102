package auth

import (
	"testing"
	"time"

	"hifybe/config"
	"hifybe/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_VerifyExpired(t *testing.T) {
	svc := &jwtService{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_VerifyTampered(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	_, err = svc.Verify("not.a.token")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer := &jwtService{secret: []byte("secret-a"), ttl: time.Hour}
	verifier := &jwtService{secret: []byte("secret-b"), ttl: time.Hour}

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_SessionDuration(t *testing.T) {
	svc := newTestTokenService(t)
	assert.Equal(t, time.Hour*24*7, svc.SessionDuration())
}
