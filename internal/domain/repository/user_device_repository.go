// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserDeviceNotFound is returned when a registered push device is not found.
var ErrUserDeviceNotFound = errors.New("user device not found")

// UserDeviceRepository defines the interface for push-notification device operations.
// These are users' phones and tablets, not clinical devices.
type UserDeviceRepository interface {
	// CreateDevice persists a new push device for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a push device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all push devices for a specific user (including inactive).
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUsers retrieves all active push devices for a set of users.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateByFCMTokens marks the devices holding any of the given tokens inactive.
	// Used when FCM reports a token as no longer registered.
	DeactivateByFCMTokens(ctx context.Context, fcmTokens []string) error

	// DeleteDevice removes a push device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
