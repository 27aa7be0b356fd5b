// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Device represents the registry card of a clinical device that collects
// data from patients. The device itself holds no patient-identifying state;
// readings are attributed through assignment intervals.
type Device struct {
	ID                     uuid.UUID  `json:"id"`                       // The Global Unique Identifier (GUID) for the device.
	Name                   string     `json:"name"`                     // A user facing name for the device. Unique, never blank.
	CurrentFirmwareVersion *string    `json:"current_firmware_version"` // Latest known firmware version loaded on the device.
	DateOfPurchase         *time.Time `json:"date_of_purchase"`         // The date when the device was purchased, if available.
	SerialNumber           *string    `json:"serial_number"`            // The manufacturer serial number.
	MACAddress             *string    `json:"mac_address"`              // The MAC address for networked devices.
	CreatedAt              time.Time  `json:"created_at"`               // Timestamp of when this device was registered.
	UpdatedAt              time.Time  `json:"updated_at"`               // Timestamp of the last modification.
}

// ValidateDeviceName reports whether a device name is acceptable: non-empty
// after trimming whitespace.
func ValidateDeviceName(name string) bool {
	return strings.TrimSpace(name) != ""
}
