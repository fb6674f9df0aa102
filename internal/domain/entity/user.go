// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the central identity record. An account is either password-based
// (local) or federated (google/spotify); either way it is keyed by a unique,
// lowercased email address.
type User struct {
	ID           uuid.UUID    // The unique identifier for the account.
	Email        string       // Unique login email, stored lowercased.
	AuthProvider AuthProvider // How the account authenticates; immutable after creation.
	PasswordHash string       // bcrypt hash. Always populated: federated accounts get a random, never-used value.
	GoogleID     string       // Google subject id; empty unless the account is linked to Google.
	SpotifyID    string       // Spotify subject id; empty unless the account is linked to Spotify.
	GivenName    string       // First name (nombre).
	FamilyName   string       // Last name(s) (apellidos).
	Biography    string       // Free-text profile biography.
	AvatarURL    string       // Profile picture URL.
	Latitude     *float64     // Last known latitude, nil when the user never shared a location.
	Longitude    *float64     // Last known longitude.
	RegisteredAt time.Time    // Set once when the account is created.
	LastSeenAt   time.Time    // Updated on every successful login or OAuth callback.

	// Password-reset state. Never serialized outside the system boundary.
	PasswordResetToken  string
	PasswordResetExpiry *time.Time
}

// HasLocation reports whether the user has a last known position.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// SubjectIDFor returns the stored subject id for the given federated provider.
func (u *User) SubjectIDFor(provider AuthProvider) string {
	switch provider {
	case AuthProviderGoogle:
		return u.GoogleID
	case AuthProviderSpotify:
		return u.SpotifyID
	default:
		return ""
	}
}
