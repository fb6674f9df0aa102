package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "hifybe/internal/delivery/context"
	"hifybe/internal/domain/entity"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/repository"
	"hifybe/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	userID uuid.UUID
	err    error
}

func (s *stubTokenService) Issue(uuid.UUID) (string, error) { return "token", nil }

func (s *stubTokenService) Verify(string) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}

	return s.userID, nil
}

func (s *stubTokenService) SessionDuration() time.Duration { return time.Hour }

type stubUserRepo struct {
	user *entity.User
}

func (r *stubUserRepo) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	if r.user == nil {
		return nil, repository.ErrUserNotFound
	}

	return r.user, nil
}

func (r *stubUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) List(context.Context) ([]*entity.User, error) { return nil, nil }

func (r *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (r *stubUserRepo) Update(context.Context, uuid.UUID, *repository.UserUpdate) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *stubUserRepo) TouchLastSeen(context.Context, uuid.UUID) error { return nil }

func (r *stubUserRepo) ReconcileFederated(_ context.Context, candidate *entity.User) (*entity.User, error) {
	return candidate, nil
}

func invokeAuthenticate(t *testing.T, m *AuthMiddleware, cookie *http.Cookie) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/usuarios/me", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error { return nil })

	return c, handler(c)
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubUserRepo{})

	_, err := invokeAuthenticate(t, m, nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{err: service.ErrTokenExpired}, &stubUserRepo{})

	_, err := invokeAuthenticate(t, m, &http.Cookie{Name: SessionCookieName, Value: "stale"})
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{err: service.ErrTokenInvalid}, &stubUserRepo{})

	_, err := invokeAuthenticate(t, m, &http.Cookie{Name: SessionCookieName, Value: "forged"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenRejected)
}

func TestAuthMiddleware_DeletedAccount(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{userID: uuid.New()}, &stubUserRepo{})

	_, err := invokeAuthenticate(t, m, &http.Cookie{Name: SessionCookieName, Value: "orphan"})
	assert.ErrorIs(t, err, domainerrors.ErrSessionUserMissing)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	m := NewAuthMiddleware(
		&stubTokenService{userID: userID},
		&stubUserRepo{user: &entity.User{ID: userID, Email: "ana@example.com"}},
	)

	c, err := invokeAuthenticate(t, m, &http.Cookie{Name: SessionCookieName, Value: "valid"})
	require.NoError(t, err)

	got, ok := c.Get(string(deliverycontext.KeyUserID)).(uuid.UUID)
	require.True(t, ok)
	assert.Equal(t, userID, got)
}
