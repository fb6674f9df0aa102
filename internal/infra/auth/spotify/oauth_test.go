package spotify

import (
	"strings"
	"testing"

	"hifybe/config"
	"hifybe/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOAuthService() *OAuthService {
	cfg := &config.Config{
		SpotifyOAuth: &config.OAuthProviderConfig{
			ClientID:     "test_client_id",
			ClientSecret: "test_client_secret",
			RedirectURI:  "http://localhost:8080/usuarios/auth/spotify/callback",
			Scopes:       "user-read-email user-read-private",
		},
	}

	return NewOAuthService(cfg).(*OAuthService)
}

func TestSplitDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		wantGiven   string
		wantFamily  string
	}{
		{"single token", "Ana", "Ana", ""},
		{"two tokens", "Ana García", "Ana", "García"},
		{"many tokens", "Ana María García López", "Ana", "María García López"},
		{"empty", "", "", ""},
		{"whitespace only", "   ", "", ""},
		{"extra spacing", "  Ana   García  ", "Ana", "García"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			given, family := SplitDisplayName(tt.displayName)
			assert.Equal(t, tt.wantGiven, given)
			assert.Equal(t, tt.wantFamily, family)
		})
	}
}

func TestOAuthService_Provider(t *testing.T) {
	svc := newTestOAuthService()
	assert.Equal(t, entity.AuthProviderSpotify, svc.Provider())
}

func TestOAuthService_BuildAuthorizationURL(t *testing.T) {
	svc := newTestOAuthService()

	authURL := svc.BuildAuthorizationURL()
	assert.True(t, strings.HasPrefix(authURL, "https://accounts.spotify.com/authorize"))
	assert.Contains(t, authURL, "client_id=test_client_id")
	assert.Contains(t, authURL, "response_type=code")
	assert.Contains(t, authURL, "state=")
}

func TestOAuthService_ValidateStateConsumesState(t *testing.T) {
	svc := newTestOAuthService()

	authURL := svc.BuildAuthorizationURL()
	idx := strings.Index(authURL, "state=")
	require.GreaterOrEqual(t, idx, 0)

	state := authURL[idx+len("state="):]
	if amp := strings.Index(state, "&"); amp >= 0 {
		state = state[:amp]
	}

	assert.True(t, svc.ValidateState(state))
	// A state parameter is single-use.
	assert.False(t, svc.ValidateState(state))
}

func TestOAuthService_ValidateStateRejectsUnknown(t *testing.T) {
	svc := newTestOAuthService()
	assert.False(t, svc.ValidateState("forged-state"))
}
