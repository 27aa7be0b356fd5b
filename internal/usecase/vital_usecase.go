// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
)

// IngestReadingInput is a single reading inside a batch. When AssignedUser is
// nil the patient is resolved through the assignment covering CollectionTime.
type IngestReadingInput struct {
	DeviceID       uuid.UUID          `json:"device_id"`
	CollectionTime time.Time          `json:"collection_time"`
	Type           entity.VitalType   `json:"data_type"`
	Measurement    entity.Measurement `json:"data"`
	AssignedUser   *uuid.UUID         `json:"assigned_user,omitempty"`
}

// IngestBatchInput defines a batch of readings to ingest atomically.
type IngestBatchInput struct {
	Readings []*IngestReadingInput
}

// IngestBatchOutput reports the stored readings of a successful batch.
type IngestBatchOutput struct {
	Readings []*entity.VitalReading
}

// QueryVitalsInput defines the reading query filters. Zero time bounds are
// open-ended. The requester identity scopes the results: patients read only
// their own readings, clinicians their care-team patients', admins everything.
type QueryVitalsInput struct {
	RequesterID    uuid.UUID
	RequesterRoles entity.Roles
	PatientID      *uuid.UUID
	DeviceID       *uuid.UUID
	Type           *entity.VitalType
	From           time.Time
	To             time.Time
	Limit          int
	Offset         int
}

// VitalUsecase defines the interface for vitals ingestion and queries.
// Readings are append-only: there are no update or delete operations.
type VitalUsecase interface {
	// IngestBatch validates and stores a batch of readings atomically. Any
	// invalid or unattributable item fails the whole batch and nothing is
	// stored. On success a vitals.recorded event is published for each
	// abnormal reading.
	IngestBatch(ctx context.Context, input *IngestBatchInput) (*IngestBatchOutput, error)

	// QueryReadings retrieves readings matching the filters, newest first. A
	// patient or device filter is required.
	QueryReadings(ctx context.Context, input *QueryVitalsInput) ([]*entity.VitalReading, error)
}
