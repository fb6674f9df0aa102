package usecase

import (
	"context"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a local account.
type RegisterInput struct {
	GivenName  string
	FamilyName string
	Email      string
	Password   string
}

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput returns the session token and the account it belongs to
// after a successful login of any kind.
type SessionOutput struct {
	Token string
	User  *PublicUser
}

// AuthUsecase defines the interface for authentication-related business
// operations: local registration and login plus the federated flows.
type AuthUsecase interface {
	// Register creates a local account. Registration against an email that
	// already exists fails with a provider-specific error so the frontend
	// can point the user at the right login button.
	Register(ctx context.Context, input *RegisterInput) (*PublicUser, error)

	// Login verifies a password login. Unknown email and wrong password
	// report the same error.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// AuthorizationURL returns the provider consent URL to redirect the
	// browser to.
	AuthorizationURL(provider entity.AuthProvider) (string, error)

	// FederatedCallback completes an OAuth authorization-code callback:
	// state check, code exchange, profile fetch and account reconciliation.
	FederatedCallback(ctx context.Context, provider entity.AuthProvider, state, code string) (*SessionOutput, error)

	// Me returns the sanitized account of the authenticated user.
	Me(ctx context.Context, userID uuid.UUID) (*PublicUser, error)
}
