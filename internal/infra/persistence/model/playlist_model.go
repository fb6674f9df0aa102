package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaylistModel mirrors the 'playlists' table.
type PlaylistModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"column:nombre;type:varchar(100);not null"`
	Description string    `gorm:"column:descripcion;type:text"`
	OwnerID     uuid.UUID `gorm:"column:usuario_id;type:uuid;not null;index"`
	Public      bool      `gorm:"column:publica;not null;default:false"`
	CoverURL    string    `gorm:"column:portada_url;type:varchar(512)"`
	CreatedAt   time.Time `gorm:"column:fecha_creacion;autoCreateTime"`

	Entries []PlaylistEntryModel `gorm:"foreignKey:PlaylistID"`
}

// TableName explicitly sets the table name for GORM.
func (PlaylistModel) TableName() string {
	return "playlists"
}

// PlaylistEntryModel mirrors the 'playlist_canciones' join table. The
// (playlist_id, cancion_id) pair is unique so a song appears at most once
// per playlist.
type PlaylistEntryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PlaylistID uuid.UUID `gorm:"column:playlist_id;type:uuid;not null;uniqueIndex:idx_playlist_cancion"`
	SongID     uuid.UUID `gorm:"column:cancion_id;type:uuid;not null;uniqueIndex:idx_playlist_cancion"`
	Position   int       `gorm:"column:posicion;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlaylistEntryModel) TableName() string {
	return "playlist_canciones"
}
