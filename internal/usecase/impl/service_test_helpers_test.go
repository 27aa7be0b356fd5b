package impl

import (
	"io"
	"log/slog"

	"medops/config"
	"medops/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Alerts: &config.AlertsConfig{
			TemperatureMaxC:     38.0,
			TemperatureMinC:     35.0,
			HeartRateMaxBPM:     120,
			HeartRateMinBPM:     40,
			SystolicMax:         180,
			DiastolicMax:        120,
			GlucoseMaxMgDl:      250,
			GlucoseMinMgDl:      54,
			OxygenSaturationMin: 90.0,
		},
	}
}

func newTestClaims(userID uuid.UUID, roles []string) *service.Claims {
	return &service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   "refresh",
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
