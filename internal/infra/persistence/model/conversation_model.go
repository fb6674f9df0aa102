package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel mirrors the 'conversaciones' table.
type ConversationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID1   uuid.UUID `gorm:"column:usuario1_id;type:uuid;not null;index"`
	UserID2   uuid.UUID `gorm:"column:usuario2_id;type:uuid;not null;index"`
	StartedAt time.Time `gorm:"column:fecha_inicio;autoCreateTime"`

	Messages []MessageModel `gorm:"foreignKey:ConversationID"`
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversaciones"
}

// MessageModel mirrors the 'mensajes' table.
type MessageModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ConversationID uuid.UUID  `gorm:"column:conversacion_id;type:uuid;not null;index"`
	SenderID       uuid.UUID  `gorm:"column:emisor_id;type:uuid;not null"`
	Content        string     `gorm:"column:contenido;type:text;not null"`
	SongID         *uuid.UUID `gorm:"column:cancion_id;type:uuid"`
	Read           bool       `gorm:"column:leido;not null;default:false"`
	SentAt         time.Time  `gorm:"column:fecha_envio;autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "mensajes"
}
