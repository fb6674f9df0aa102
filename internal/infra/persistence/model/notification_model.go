package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notificaciones' table.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"column:usuario_id;type:uuid;not null;index"`
	Content   string    `gorm:"column:contenido;type:text;not null"`
	Read      bool      `gorm:"column:leida;not null;default:false"`
	CreatedAt time.Time `gorm:"column:fecha_creacion;autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notificaciones"
}
