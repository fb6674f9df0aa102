package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'usuarios' table. PostgreSQL generates UUIDs via gen_random_uuid().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
// Federated subject ids are nullable pointers so the unique indexes stay sparse:
// PostgreSQL treats NULLs as distinct, so unlinked accounts never collide.
type UserModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email               string     `gorm:"column:email;type:varchar(255);unique;not null"`
	AuthProvider        string     `gorm:"column:auth_proveedor;type:varchar(20);not null"`
	PasswordHash        string     `gorm:"column:password_hash;type:varchar(255);not null"`
	GoogleID            *string    `gorm:"column:google_id;type:varchar(255);uniqueIndex"`
	SpotifyID           *string    `gorm:"column:spotify_id;type:varchar(255);uniqueIndex"`
	GivenName           string     `gorm:"column:nombre;type:varchar(100)"`
	FamilyName          string     `gorm:"column:apellidos;type:varchar(100)"`
	Biography           string     `gorm:"column:biografia;type:text"`
	AvatarURL           string     `gorm:"column:foto_perfil;type:varchar(512)"`
	Latitude            *float64   `gorm:"column:ubicacion_lat"`
	Longitude           *float64   `gorm:"column:ubicacion_lon"`
	RegisteredAt        time.Time  `gorm:"column:fecha_registro;autoCreateTime"`
	LastSeenAt          time.Time  `gorm:"column:ultima_conexion"`
	PasswordResetToken  string     `gorm:"column:reset_token;type:varchar(255)"`
	PasswordResetExpiry *time.Time `gorm:"column:reset_token_expira"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "usuarios"
}
