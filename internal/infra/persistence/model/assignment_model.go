package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceAssignmentModel is the GORM-specific struct for the 'device_assignments' table.
// Each row is a half-open interval [date_assigned, date_returned); a NULL
// date_returned marks the interval as still open. A partial unique index on
// (device_id) WHERE date_returned IS NULL guarantees at most one open interval
// per device.
type DeviceAssignmentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;index:idx_assignments_device_time,priority:1;uniqueIndex:uniq_open_assignment_per_device,where:date_returned IS NULL"`
	PatientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignerID   uuid.UUID `gorm:"type:uuid;not null"`
	DateAssigned time.Time `gorm:"not null;index:idx_assignments_device_time,priority:2"`
	DateReturned *time.Time
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceAssignmentModel) TableName() string {
	return "device_assignments"
}
