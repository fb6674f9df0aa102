package model

import (
	"time"

	"github.com/google/uuid"
)

// PlayModel mirrors the 'reproducciones' table.
type PlayModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"column:usuario_id;type:uuid;not null;index"`
	SongID    uuid.UUID `gorm:"column:cancion_id;type:uuid;not null;index"`
	PlayedAt  time.Time `gorm:"column:fecha_reproduccion;autoCreateTime"`
	Latitude  *float64  `gorm:"column:latitud"`
	Longitude *float64  `gorm:"column:longitud"`
}

// TableName explicitly sets the table name for GORM.
func (PlayModel) TableName() string {
	return "reproducciones"
}
