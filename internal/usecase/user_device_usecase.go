// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
)

// UserDeviceInfo represents a phone or tablet registered for push notifications.
type UserDeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// UserDeviceUsecase defines the interface for push-device management use cases.
// These are users' phones and tablets, distinct from clinical devices.
type UserDeviceUsecase interface {
	// RegisterDevice registers a new push device or refreshes an existing one.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *UserDeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetUserDevices retrieves all push devices registered by a user.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice deactivates a push device (soft delete).
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
