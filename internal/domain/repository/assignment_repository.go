// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device assignment persistence.
var (
	// ErrAssignmentNotFound is returned when no assignment matches the query.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrOpenAssignmentExists is returned when a device already has an open assignment.
	ErrOpenAssignmentExists = errors.New("device already has an open assignment")
)

// AssignmentRepository defines the interface for device assignment intervals.
// Intervals are half-open [DateAssigned, DateReturned); a nil DateReturned
// means the device is still out.
type AssignmentRepository interface {
	// Create persists a new assignment interval.
	Create(ctx context.Context, assignment *entity.DeviceAssignment) error

	// FindOpenByDevice retrieves the open interval for a device, if any.
	// Returns ErrAssignmentNotFound when the device is not currently assigned.
	FindOpenByDevice(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceAssignment, error)

	// Close sets the end of an open interval. Returns ErrAssignmentNotFound
	// when the assignment does not exist or is already closed.
	Close(ctx context.Context, assignmentID uuid.UUID, returnedAt time.Time) error

	// FindCovering retrieves the interval that covers the given instant for a
	// device. Returns ErrAssignmentNotFound when no interval covers it.
	FindCovering(ctx context.Context, deviceID uuid.UUID, at time.Time) (*entity.DeviceAssignment, error)

	// FindByDevice retrieves a device's assignment history, newest first.
	FindByDevice(ctx context.Context, deviceID uuid.UUID, limit, offset int) ([]*entity.DeviceAssignment, error)

	// FindByPatient retrieves a patient's assignment history, newest first.
	FindByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*entity.DeviceAssignment, error)
}
