package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents one fanout performed by the alert worker.
type NotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind        string    `gorm:"type:varchar(30);not null"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:text;not null"`
	Body        string    `gorm:"type:text;not null"`
	TotalSent   int       `gorm:"not null;default:0"`
	TotalFailed int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// It represents a log entry for a single notification sent to a user device.
type NotificationLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:text;not null;default:'sent'"`
	FCMMessageID   string    `gorm:"type:text"`
	ErrorMessage   string    `gorm:"type:text"`
	SentAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
