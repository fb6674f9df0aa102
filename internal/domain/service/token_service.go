package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Verification failures are reported with distinct internal errors so the
// delivery layer can prompt a re-login on expiry while treating tampering
// as a plain rejection. Both surface as 401 to the client.
var (
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned when the signature does not match or the
	// token is structurally malformed.
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenService mints and verifies the signed session tokens carried in the
// session cookie. Tokens are stateless: nothing is persisted server-side
// and there is no revocation list.
type TokenService interface {
	// Issue creates a signed token asserting the account id, issued now
	// and expiring after the session duration.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature and expiry and returns the asserted account
	// id. Fails closed with ErrTokenExpired or ErrTokenInvalid.
	Verify(token string) (uuid.UUID, error)

	// SessionDuration returns the lifetime of issued tokens (and of the
	// cookie that carries them).
	SessionDuration() time.Duration
}
