package service

import (
	"context"

	"hifybe/internal/domain/entity"
)

// OAuthProfile is the normalized identity assertion handed back by a
// federated provider after it authenticated the end user out-of-band.
type OAuthProfile struct {
	Subject    string // Provider-scoped subject id.
	Email      string // May be empty; reconciliation rejects profiles without one.
	GivenName  string
	FamilyName string
	AvatarURL  string
}

// OAuthService abstracts one provider's authorization-code flow. The
// transport-layer redirect mechanics live in the delivery layer; this
// service only builds URLs, validates state, and resolves profiles.
type OAuthService interface {
	// Provider returns which provider this service talks to.
	Provider() entity.AuthProvider

	// BuildAuthorizationURL returns the provider consent URL carrying a
	// freshly generated CSRF state parameter.
	BuildAuthorizationURL() string

	// ValidateState checks and consumes a state parameter previously
	// issued by BuildAuthorizationURL.
	ValidateState(state string) bool

	// ExchangeCode trades the callback authorization code for an access
	// token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchProfile retrieves the user's profile with the access token.
	FetchProfile(ctx context.Context, accessToken string) (*OAuthProfile, error)
}
