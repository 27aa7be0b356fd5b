// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCareRelationshipNotFound is returned when a care relationship does not exist.
var ErrCareRelationshipNotFound = errors.New("care relationship not found")

// CareRepository defines the interface for patient/clinician care-team persistence.
type CareRepository interface {
	// CreateRelationship links a clinician to a patient. Creating a link that
	// already exists is a no-op.
	CreateRelationship(ctx context.Context, rel *entity.CareRelationship) error

	// DeleteRelationship removes the link between a clinician and a patient.
	DeleteRelationship(ctx context.Context, patientID, clinicianID uuid.UUID) error

	// FindCareTeam retrieves the clinicians responsible for a patient.
	FindCareTeam(ctx context.Context, patientID uuid.UUID) ([]*entity.User, error)

	// FindPatients retrieves the patients under a clinician's care.
	FindPatients(ctx context.Context, clinicianID uuid.UUID) ([]*entity.User, error)
}
