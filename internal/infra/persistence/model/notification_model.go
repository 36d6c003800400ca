package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. Metadata is the JSON
// encoding of the tagged variant identified by Type. The composite index on
// (user_id, content_hash, created_at) backs the dedupe lookback query.
type NotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_dedupe;index:idx_notifications_user_read"`
	Type        string    `gorm:"type:varchar(30);not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Message     string    `gorm:"type:text;not null"`
	Priority    string    `gorm:"type:varchar(10);not null;default:'MEDIUM'"`
	Read        bool      `gorm:"not null;default:false;index:idx_notifications_user_read"`
	Metadata    []byte    `gorm:"type:jsonb"`
	ContentHash string    `gorm:"type:char(64);not null;index:idx_notifications_dedupe"`
	CreatedAt   time.Time `gorm:"index:idx_notifications_dedupe"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
