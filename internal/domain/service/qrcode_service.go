package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateDeviceQR generates a pairing label QR code for a clinical device
	GenerateDeviceQR(deviceID uuid.UUID) ([]byte, error)

	// ParseDeviceQR parses pairing label data and returns the device ID
	ParseDeviceQR(qrData string) (uuid.UUID, error)
}
