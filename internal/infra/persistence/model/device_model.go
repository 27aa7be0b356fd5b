package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It represents the registry card of a clinical device.
type DeviceModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                   string    `gorm:"type:varchar(255);unique;not null"`
	CurrentFirmwareVersion *string   `gorm:"type:varchar(50)"`
	DateOfPurchase         *time.Time
	SerialNumber           *string `gorm:"type:varchar(255);uniqueIndex"`
	MACAddress             *string `gorm:"type:varchar(17);column:mac_address"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
