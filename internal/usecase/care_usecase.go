// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
)

// CareUsecase defines the interface for care-team management operations.
type CareUsecase interface {
	// AddCareRelationship links a clinician to a patient's care team.
	AddCareRelationship(ctx context.Context, patientID, clinicianID uuid.UUID) error

	// RemoveCareRelationship removes a clinician from a patient's care team.
	RemoveCareRelationship(ctx context.Context, patientID, clinicianID uuid.UUID) error

	// GetCareTeam retrieves the clinicians responsible for a patient.
	GetCareTeam(ctx context.Context, patientID uuid.UUID) ([]*entity.User, error)

	// GetPatients retrieves the patients under a clinician's care.
	GetPatients(ctx context.Context, clinicianID uuid.UUID) ([]*entity.User, error)
}
