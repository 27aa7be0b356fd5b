// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrVitalReadingNotFound is returned when a vital reading is not found.
var ErrVitalReadingNotFound = errors.New("vital reading not found")

// VitalRepository defines the interface for vital reading persistence.
// Readings are append-only; there are no update or delete operations.
type VitalRepository interface {
	// Create persists a single vital reading.
	Create(ctx context.Context, reading *entity.VitalReading) error

	// BatchCreate persists multiple vital readings in one statement.
	BatchCreate(ctx context.Context, readings []*entity.VitalReading) error

	// FindByPatient retrieves a patient's readings inside [from, to), newest first.
	FindByPatient(ctx context.Context, patientID uuid.UUID, from, to time.Time, limit, offset int) ([]*entity.VitalReading, error)

	// FindByDevice retrieves a device's readings inside [from, to), newest first.
	FindByDevice(ctx context.Context, deviceID uuid.UUID, from, to time.Time, limit, offset int) ([]*entity.VitalReading, error)
}
