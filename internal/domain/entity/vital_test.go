package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }

func TestVitalType_IsValid(t *testing.T) {
	valid := []VitalType{
		VitalTemperature, VitalBloodPressure, VitalGlucoseLevel,
		VitalHeartRate, VitalWeight, VitalOxygenSaturation,
	}
	for _, vt := range valid {
		assert.True(t, vt.IsValid(), vt)
	}

	assert.False(t, VitalType("mood").IsValid())
	assert.False(t, VitalType("").IsValid())
}

func TestMeasurement_Validate(t *testing.T) {
	tests := []struct {
		name        string
		vitalType   VitalType
		measurement Measurement
		wantErr     bool
	}{
		{
			name:        "temperature with deg_c",
			vitalType:   VitalTemperature,
			measurement: Measurement{DegC: float64Ptr(36.6)},
		},
		{
			name:        "blood pressure with both fields",
			vitalType:   VitalBloodPressure,
			measurement: Measurement{Systolic: float64Ptr(120), Diastolic: float64Ptr(80)},
		},
		{
			name:        "blood pressure missing diastolic",
			vitalType:   VitalBloodPressure,
			measurement: Measurement{Systolic: float64Ptr(120)},
			wantErr:     true,
		},
		{
			name:        "glucose with mg_dl",
			vitalType:   VitalGlucoseLevel,
			measurement: Measurement{MgDl: intPtr(95)},
		},
		{
			name:        "heart rate with bpm",
			vitalType:   VitalHeartRate,
			measurement: Measurement{BPM: intPtr(72)},
		},
		{
			name:        "weight with grams",
			vitalType:   VitalWeight,
			measurement: Measurement{Grams: intPtr(72500)},
		},
		{
			name:        "oxygen saturation with percentage",
			vitalType:   VitalOxygenSaturation,
			measurement: Measurement{Percentage: float64Ptr(97.5)},
		},
		{
			name:        "missing required field",
			vitalType:   VitalHeartRate,
			measurement: Measurement{},
			wantErr:     true,
		},
		{
			name:        "wrong field for type",
			vitalType:   VitalHeartRate,
			measurement: Measurement{DegC: float64Ptr(36.6)},
			wantErr:     true,
		},
		{
			name:        "extraneous field alongside required one",
			vitalType:   VitalTemperature,
			measurement: Measurement{DegC: float64Ptr(36.6), BPM: intPtr(72)},
			wantErr:     true,
		},
		{
			name:        "unknown vital type",
			vitalType:   VitalType("mood"),
			measurement: Measurement{DegC: float64Ptr(36.6)},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.measurement.Validate(tt.vitalType)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequiredMeasurementFields(t *testing.T) {
	assert.Equal(t, []string{"systolic", "diastolic"}, RequiredMeasurementFields(VitalBloodPressure))
	assert.Equal(t, []string{"bpm"}, RequiredMeasurementFields(VitalHeartRate))
	assert.Nil(t, RequiredMeasurementFields(VitalType("mood")))
}
