// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
)

// AssignDeviceInput defines the data required to open an assignment interval.
type AssignDeviceInput struct {
	DeviceID   uuid.UUID
	PatientID  uuid.UUID
	AssignerID uuid.UUID
	StartTime  time.Time
}

// AssignmentUsecase defines the interface for the device assignment tracker.
// Intervals are half-open [start, end); an open interval extends to the
// current moment.
type AssignmentUsecase interface {
	// Assign opens an assignment interval for a device. Fails when the device
	// already has an open interval.
	Assign(ctx context.Context, input *AssignDeviceInput) (*entity.DeviceAssignment, error)

	// Unassign closes the open interval of a device at endTime. Fails when no
	// interval is open or endTime precedes the interval's start.
	Unassign(ctx context.Context, deviceID uuid.UUID, endTime time.Time) (*entity.DeviceAssignment, error)

	// ResolveUser returns the patient whose interval covers the given instant
	// for a device.
	ResolveUser(ctx context.Context, deviceID uuid.UUID, at time.Time) (*entity.User, error)

	// GetDeviceHistory retrieves a device's assignment history, newest first.
	GetDeviceHistory(ctx context.Context, deviceID uuid.UUID, limit, offset int) ([]*entity.DeviceAssignment, error)

	// GetPatientHistory retrieves a patient's assignment history, newest first.
	GetPatientHistory(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*entity.DeviceAssignment, error)
}
