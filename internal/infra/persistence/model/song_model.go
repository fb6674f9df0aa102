package model

import (
	"time"

	"github.com/google/uuid"
)

// SongModel mirrors the 'canciones' table.
type SongModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CatalogID   int64      `gorm:"column:numero_catalogo;unique;not null"`
	Title       string     `gorm:"column:titulo;type:varchar(255);not null"`
	Artist      string     `gorm:"column:artista;type:varchar(255);not null"`
	Album       string     `gorm:"column:album;type:varchar(255)"`
	DurationSec int        `gorm:"column:duracion_seg"`
	AudioURL    string     `gorm:"column:audio_url;type:varchar(512)"`
	ReleasedAt  *time.Time `gorm:"column:fecha_lanzamiento"`
}

// TableName explicitly sets the table name for GORM.
func (SongModel) TableName() string {
	return "canciones"
}
