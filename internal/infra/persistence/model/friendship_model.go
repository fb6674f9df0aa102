package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipModel mirrors the 'amistades' table. The user pair is stored as
// written; lookups match either column.
type FriendshipModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID1   uuid.UUID `gorm:"column:usuario1_id;type:uuid;not null;index"`
	UserID2   uuid.UUID `gorm:"column:usuario2_id;type:uuid;not null;index"`
	Status    string    `gorm:"column:estado;type:varchar(20);not null"`
	StartedAt time.Time `gorm:"column:fecha_inicio;autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (FriendshipModel) TableName() string {
	return "amistades"
}

// FriendRequestModel mirrors the 'solicitudes_amistad' table.
type FriendRequestModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FromUserID uuid.UUID `gorm:"column:emisor_id;type:uuid;not null;index"`
	ToUserID   uuid.UUID `gorm:"column:receptor_id;type:uuid;not null;index"`
	Status     string    `gorm:"column:estado;type:varchar(20);not null"`
	SentAt     time.Time `gorm:"column:fecha_envio;autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (FriendRequestModel) TableName() string {
	return "solicitudes_amistad"
}
