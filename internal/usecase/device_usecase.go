// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDeviceInput defines the data required to register a clinical device.
type CreateDeviceInput struct {
	Name                   string     `json:"name"`
	CurrentFirmwareVersion *string    `json:"current_firmware_version,omitempty"`
	DateOfPurchase         *time.Time `json:"date_of_purchase,omitempty"`
	SerialNumber           *string    `json:"serial_number,omitempty"`
	MACAddress             *string    `json:"mac_address,omitempty"`
}

// UpdateDeviceInput defines the editable registry fields. Nil fields are left
// unchanged; the device ID is immutable.
type UpdateDeviceInput struct {
	Name                   *string    `json:"name,omitempty"`
	CurrentFirmwareVersion *string    `json:"current_firmware_version,omitempty"`
	DateOfPurchase         *time.Time `json:"date_of_purchase,omitempty"`
	SerialNumber           *string    `json:"serial_number,omitempty"`
	MACAddress             *string    `json:"mac_address,omitempty"`
}

// DeviceUsecase defines the interface for the clinical device registry.
type DeviceUsecase interface {
	// CreateDevice registers a new clinical device. The name must be non-blank
	// and unique.
	CreateDevice(ctx context.Context, input *CreateDeviceInput) (*entity.Device, error)

	// GetDevice retrieves a device registry card by ID.
	GetDevice(ctx context.Context, deviceID uuid.UUID) (*entity.Device, error)

	// ListDevices retrieves registered devices, newest first.
	ListDevices(ctx context.Context, limit, offset int) ([]*entity.Device, error)

	// UpdateDevice modifies the editable registry fields of a device.
	UpdateDevice(ctx context.Context, deviceID uuid.UUID, input *UpdateDeviceInput) (*entity.Device, error)

	// DeleteDevice removes a device from the registry. A device with an open
	// assignment cannot be deleted.
	DeleteDevice(ctx context.Context, deviceID uuid.UUID) error

	// GenerateDeviceLabel renders the pairing QR label for a device as a PNG.
	GenerateDeviceLabel(ctx context.Context, deviceID uuid.UUID) ([]byte, error)
}
