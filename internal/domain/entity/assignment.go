// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceAssignment records a time period during which a device was assigned
// to a patient. Data collected inside the interval is attributed to that
// patient. A nil DateReturned marks the interval as still open.
type DeviceAssignment struct {
	ID           uuid.UUID  `json:"id"`            // The Global Unique Identifier (GUID) for the assignment record.
	DeviceID     uuid.UUID  `json:"device_id"`     // The ID of the device assigned.
	PatientID    uuid.UUID  `json:"patient_id"`    // The user ID of the patient to whom the device is assigned.
	AssignerID   uuid.UUID  `json:"assigner_id"`   // The user ID of the medical professional who authorized the assignment.
	DateAssigned time.Time  `json:"date_assigned"` // The start of the assignment interval.
	DateReturned *time.Time `json:"date_returned"` // The end of the interval. Nil while the device is still out.
	CreatedAt    time.Time  `json:"created_at"`    // Timestamp of when this record was created.
}

// IsOpen reports whether the assignment interval has no end yet.
func (a *DeviceAssignment) IsOpen() bool {
	return a.DateReturned == nil
}

// Covers reports whether a timestamp falls inside the assignment interval.
// The interval is half-open: [DateAssigned, DateReturned). An open interval
// covers every instant from DateAssigned onward.
func (a *DeviceAssignment) Covers(t time.Time) bool {
	if t.Before(a.DateAssigned) {
		return false
	}
	if a.DateReturned == nil {
		return true
	}

	return t.Before(*a.DateReturned)
}
