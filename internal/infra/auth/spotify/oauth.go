package spotify

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"hifybe/config"
	"hifybe/internal/domain/entity"
	"hifybe/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	spotifyOAuthURL    = "https://accounts.spotify.com/authorize"
	spotifyTokenURL    = "https://accounts.spotify.com/api/token"
	spotifyUserInfoURL = "https://api.spotify.com/v1/me"
)

// OAuthService handles Spotify OAuth infrastructure operations
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string

	// State storage for CSRF protection
	stateStore map[string]time.Time
	stateMutex sync.Mutex
}

// NewOAuthService creates a new Spotify OAuth service
func NewOAuthService(config *config.Config) service.OAuthService {
	return &OAuthService{
		clientID:     config.SpotifyOAuth.ClientID,
		clientSecret: config.SpotifyOAuth.ClientSecret,
		redirectURI:  config.SpotifyOAuth.RedirectURI,
		scopes:       config.SpotifyOAuth.Scopes,
		stateStore:   make(map[string]time.Time),
	}
}

// Provider returns the OAuth provider type
func (s *OAuthService) Provider() entity.AuthProvider {
	return entity.AuthProviderSpotify
}

// generateState generates a cryptographically secure random state string
func (s *OAuthService) generateState() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// storeState stores a state parameter with expiration time
func (s *OAuthService) storeState(state string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	// State expires after 10 minutes
	s.stateStore[state] = time.Now().Add(10 * time.Minute)

	// Clean up expired states
	now := time.Now()
	for stored, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, stored)
		}
	}
}

// BuildAuthorizationURL constructs the Spotify OAuth authorization URL with a
// state parameter for CSRF protection
func (s *OAuthService) BuildAuthorizationURL() string {
	state := s.generateState()
	s.storeState(state)

	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", s.scopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return spotifyOAuthURL + "?" + params.Encode()
}

// ValidateState validates and consumes the state parameter to prevent CSRF attacks
func (s *OAuthService) ValidateState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}

	// Remove used state to prevent replay attacks
	delete(s.stateStore, state)

	return time.Now().Before(expiry)
}

// ExchangeCode exchanges an authorization code for an access token.
// Spotify requires the client credentials in a Basic authorization header.
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, "POST", spotifyTokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}

	basic := base64.StdEncoding.EncodeToString([]byte(s.clientID + ":" + s.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	return tokenResponse.AccessToken, nil
}

// FetchProfile retrieves the user's Spotify profile using an access token
func (s *OAuthService) FetchProfile(ctx context.Context, accessToken string) (*service.OAuthProfile, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", spotifyUserInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var spotifyUser struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
		Images      []struct {
			URL string `json:"url"`
		} `json:"images"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&spotifyUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	givenName, familyName := SplitDisplayName(spotifyUser.DisplayName)

	avatarURL := ""
	if len(spotifyUser.Images) > 0 {
		avatarURL = spotifyUser.Images[0].URL
	}

	return &service.OAuthProfile{
		Subject:    spotifyUser.ID,
		Email:      spotifyUser.Email,
		GivenName:  givenName,
		FamilyName: familyName,
		AvatarURL:  avatarURL,
	}, nil
}

// SplitDisplayName derives a given and family name from Spotify's single
// display name. The first whitespace-separated token becomes the given name
// and the remainder the family name.
func SplitDisplayName(displayName string) (string, string) {
	fields := strings.Fields(displayName)
	if len(fields) == 0 {
		return "", ""
	}

	return fields[0], strings.Join(fields[1:], " ")
}
