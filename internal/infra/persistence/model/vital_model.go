package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VitalReadingModel is the GORM-specific struct for the 'vital_readings' table.
// Rows are append-only; the application never updates or deletes them. The
// typed measurement payload is stored as JSONB since its shape varies by type.
type VitalReadingModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_vitals_device_time,priority:1"`
	PatientID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_vitals_patient_time,priority:1"`
	Type           string         `gorm:"type:varchar(30);not null"`
	Measurement    datatypes.JSON `gorm:"type:jsonb;not null"`
	CollectionTime time.Time      `gorm:"not null;index:idx_vitals_device_time,priority:2;index:idx_vitals_patient_time,priority:2"`
	ReceivedTime   time.Time      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (VitalReadingModel) TableName() string {
	return "vital_readings"
}
