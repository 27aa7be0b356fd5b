package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeviceAssignment_IsOpen(t *testing.T) {
	returned := time.Now()

	open := &DeviceAssignment{DateAssigned: time.Now().Add(-time.Hour)}
	closed := &DeviceAssignment{DateAssigned: time.Now().Add(-time.Hour), DateReturned: &returned}

	assert.True(t, open.IsOpen())
	assert.False(t, closed.IsOpen())
}

func TestDeviceAssignment_Covers(t *testing.T) {
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		returned   *time.Time
		at         time.Time
		wantCovers bool
	}{
		{
			name:       "before start",
			returned:   &end,
			at:         start.Add(-time.Second),
			wantCovers: false,
		},
		{
			name:       "exactly at start",
			returned:   &end,
			at:         start,
			wantCovers: true,
		},
		{
			name:       "inside interval",
			returned:   &end,
			at:         start.Add(24 * time.Hour),
			wantCovers: true,
		},
		{
			name:       "exactly at end is excluded",
			returned:   &end,
			at:         end,
			wantCovers: false,
		},
		{
			name:       "after end",
			returned:   &end,
			at:         end.Add(time.Second),
			wantCovers: false,
		},
		{
			name:       "open interval covers far future",
			returned:   nil,
			at:         end.Add(365 * 24 * time.Hour),
			wantCovers: true,
		},
		{
			name:       "open interval still excludes before start",
			returned:   nil,
			at:         start.Add(-time.Minute),
			wantCovers: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment := &DeviceAssignment{DateAssigned: start, DateReturned: tt.returned}

			assert.Equal(t, tt.wantCovers, assignment.Covers(tt.at))
		})
	}
}
