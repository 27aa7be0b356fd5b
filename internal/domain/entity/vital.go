// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VitalType identifies the kind of measurement a reading carries.
type VitalType string

const (
	// VitalTemperature is a body temperature reading in degrees Celsius.
	VitalTemperature VitalType = "temperature"
	// VitalBloodPressure is a systolic/diastolic blood pressure reading.
	VitalBloodPressure VitalType = "blood_pressure"
	// VitalGlucoseLevel is a blood sugar reading in milligrams per deciliter.
	VitalGlucoseLevel VitalType = "glucose_level"
	// VitalHeartRate is a heart rate reading in beats per minute.
	VitalHeartRate VitalType = "heart_rate"
	// VitalWeight is a weight reading in grams.
	VitalWeight VitalType = "weight"
	// VitalOxygenSaturation is a blood oxygen saturation percentage.
	VitalOxygenSaturation VitalType = "oxygen_saturation"
)

// String returns the string representation of the VitalType.
func (t VitalType) String() string {
	return string(t)
}

// IsValid checks if the VitalType is a valid value.
func (t VitalType) IsValid() bool {
	switch t {
	case VitalTemperature, VitalBloodPressure, VitalGlucoseLevel,
		VitalHeartRate, VitalWeight, VitalOxygenSaturation:
		return true
	default:
		return false
	}
}

// Measurement holds the typed payload of a vital reading. Exactly the fields
// belonging to the reading's VitalType are set; Validate enforces this.
type Measurement struct {
	DegC       *float64 `json:"deg_c,omitempty"`      // temperature
	Systolic   *float64 `json:"systolic,omitempty"`   // blood_pressure
	Diastolic  *float64 `json:"diastolic,omitempty"`  // blood_pressure
	MgDl       *int     `json:"mg_dl,omitempty"`      // glucose_level
	BPM        *int     `json:"bpm,omitempty"`        // heart_rate
	Grams      *int     `json:"grams,omitempty"`      // weight
	Percentage *float64 `json:"percentage,omitempty"` // oxygen_saturation
}

// measurementFields maps each vital type to the payload fields it requires.
var measurementFields = map[VitalType][]string{
	VitalTemperature:      {"deg_c"},
	VitalBloodPressure:    {"systolic", "diastolic"},
	VitalGlucoseLevel:     {"mg_dl"},
	VitalHeartRate:        {"bpm"},
	VitalWeight:           {"grams"},
	VitalOxygenSaturation: {"percentage"},
}

// RequiredMeasurementFields returns the payload field names a vital type
// demands, or nil for an unknown type.
func RequiredMeasurementFields(t VitalType) []string {
	return measurementFields[t]
}

// Validate checks that the measurement carries exactly the fields required
// by the given vital type: all required fields present, no extraneous ones.
func (m Measurement) Validate(t VitalType) error {
	if !t.IsValid() {
		return fmt.Errorf("invalid data type: %s", t)
	}

	set := m.setFields()
	required := measurementFields[t]
	for _, name := range required {
		if !set[name] {
			return fmt.Errorf("missing measurement field %q for type %s", name, t)
		}
		delete(set, name)
	}
	for name := range set {
		return fmt.Errorf("unexpected measurement field %q for type %s", name, t)
	}

	return nil
}

// setFields returns the names of the fields that are non-nil.
func (m Measurement) setFields() map[string]bool {
	set := make(map[string]bool)
	if m.DegC != nil {
		set["deg_c"] = true
	}
	if m.Systolic != nil {
		set["systolic"] = true
	}
	if m.Diastolic != nil {
		set["diastolic"] = true
	}
	if m.MgDl != nil {
		set["mg_dl"] = true
	}
	if m.BPM != nil {
		set["bpm"] = true
	}
	if m.Grams != nil {
		set["grams"] = true
	}
	if m.Percentage != nil {
		set["percentage"] = true
	}

	return set
}

// VitalReading is a single datum collected from a clinical device. Once
// stored, readings are never updated or deleted.
type VitalReading struct {
	ID             uuid.UUID   `json:"id"`              // The Global Unique Identifier (GUID) for the reading.
	DeviceID       uuid.UUID   `json:"device_id"`       // The ID of the device that recorded the reading.
	PatientID      uuid.UUID   `json:"patient_id"`      // The user ID of the patient the reading is attributed to.
	Type           VitalType   `json:"type"`            // The kind of measurement.
	Measurement    Measurement `json:"measurement"`     // The typed payload.
	CollectionTime time.Time   `json:"collection_time"` // When the device collected the reading.
	ReceivedTime   time.Time   `json:"received_time"`   // When the system received the reading. Stamped server-side.
}
