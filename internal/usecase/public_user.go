// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"time"

	"hifybe/internal/domain/entity"

	"github.com/google/uuid"
)

// PublicUser is the outward-facing account representation. Password hashes,
// reset tokens and provider subject ids never leave the system boundary.
type PublicUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	AuthProvider string    `json:"auth_proveedor"`
	GivenName    string    `json:"nombre"`
	FamilyName   string    `json:"apellidos"`
	Biography    string    `json:"biografia"`
	AvatarURL    string    `json:"foto_perfil"`
	Latitude     *float64  `json:"ubicacion_lat,omitempty"`
	Longitude    *float64  `json:"ubicacion_lon,omitempty"`
	RegisteredAt time.Time `json:"fecha_registro"`
	LastSeenAt   time.Time `json:"ultima_conexion"`
}

// NewPublicUser maps a domain user to its sanitized public representation.
func NewPublicUser(user *entity.User) *PublicUser {
	if user == nil {
		return nil
	}

	return &PublicUser{
		ID:           user.ID,
		Email:        user.Email,
		AuthProvider: string(user.AuthProvider),
		GivenName:    user.GivenName,
		FamilyName:   user.FamilyName,
		Biography:    user.Biography,
		AvatarURL:    user.AvatarURL,
		Latitude:     user.Latitude,
		Longitude:    user.Longitude,
		RegisteredAt: user.RegisteredAt,
		LastSeenAt:   user.LastSeenAt,
	}
}

// NewPublicUsers maps a slice of domain users.
func NewPublicUsers(users []*entity.User) []*PublicUser {
	out := make([]*PublicUser, 0, len(users))
	for _, user := range users {
		out = append(out, NewPublicUser(user))
	}

	return out
}
