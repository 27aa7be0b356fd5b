// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for clinical device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when a device with the same name or serial number already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for clinical device registry operations.
type DeviceRepository interface {
	// Create persists a new device registry card.
	Create(ctx context.Context, device *entity.Device) error

	// FindByID retrieves a device by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindByName retrieves a device by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Device, error)

	// List retrieves registered devices, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Device, error)

	// Update modifies an existing device registry card.
	Update(ctx context.Context, device *entity.Device) error

	// Delete removes a device registry card.
	Delete(ctx context.Context, id uuid.UUID) error
}
