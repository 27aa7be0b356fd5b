// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	"medops/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assignmentRepository implements the repository.AssignmentRepository interface.
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB) repository.AssignmentRepository {
	return &assignmentRepository{
		db: db,
	}
}

// Create persists a new assignment interval. The partial unique index on open
// intervals turns a concurrent double-assign into ErrOpenAssignmentExists.
func (repo *assignmentRepository) Create(ctx context.Context, assignment *entity.DeviceAssignment) error {
	assignmentM := fromAssignmentDomain(assignment)

	if err := repo.db.WithContext(ctx).Create(assignmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOpenAssignmentExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required assignment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assignment")
	}

	// Update the entity with generated values
	assignment.ID = assignmentM.ID
	assignment.CreatedAt = assignmentM.CreatedAt

	return nil
}

// FindOpenByDevice retrieves the open interval for a device, if any.
func (repo *assignmentRepository) FindOpenByDevice(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceAssignment, error) {
	var assignmentM model.DeviceAssignmentModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND date_returned IS NULL", deviceID).
		First(&assignmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find open assignment by device")
	}

	return toAssignmentDomain(&assignmentM), nil
}

// Close sets the end of an open interval.
func (repo *assignmentRepository) Close(ctx context.Context, assignmentID uuid.UUID, returnedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceAssignmentModel{}).
		Where("id = ? AND date_returned IS NULL", assignmentID).
		Update("date_returned", returnedAt)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to close assignment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssignmentNotFound
	}

	return nil
}

// FindCovering retrieves the interval that covers the given instant for a
// device. Intervals are half-open, so the end bound is exclusive.
func (repo *assignmentRepository) FindCovering(ctx context.Context, deviceID uuid.UUID, at time.Time) (*entity.DeviceAssignment, error) {
	var assignmentM model.DeviceAssignmentModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND date_assigned <= ? AND (date_returned IS NULL OR date_returned > ?)", deviceID, at, at).
		First(&assignmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find covering assignment")
	}

	return toAssignmentDomain(&assignmentM), nil
}

// FindByDevice retrieves a device's assignment history, newest first.
func (repo *assignmentRepository) FindByDevice(ctx context.Context, deviceID uuid.UUID, limit, offset int) ([]*entity.DeviceAssignment, error) {
	return repo.findHistory(ctx, "device_id = ?", deviceID, limit, offset)
}

// FindByPatient retrieves a patient's assignment history, newest first.
func (repo *assignmentRepository) FindByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*entity.DeviceAssignment, error) {
	return repo.findHistory(ctx, "patient_id = ?", patientID, limit, offset)
}

func (repo *assignmentRepository) findHistory(ctx context.Context, cond string, id uuid.UUID, limit, offset int) ([]*entity.DeviceAssignment, error) {
	var assignmentModels []*model.DeviceAssignmentModel

	query := repo.db.WithContext(ctx).
		Where(cond, id).
		Order("date_assigned DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find assignment history")
	}

	assignments := make([]*entity.DeviceAssignment, 0, len(assignmentModels))
	for _, assignmentM := range assignmentModels {
		assignments = append(assignments, toAssignmentDomain(assignmentM))
	}

	return assignments, nil
}

// --- Mapper Functions ---

// toAssignmentDomain converts a GORM DeviceAssignmentModel to a domain DeviceAssignment entity.
func toAssignmentDomain(data *model.DeviceAssignmentModel) *entity.DeviceAssignment {
	if data == nil {
		return nil
	}

	return &entity.DeviceAssignment{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		PatientID:    data.PatientID,
		AssignerID:   data.AssignerID,
		DateAssigned: data.DateAssigned,
		DateReturned: data.DateReturned,
		CreatedAt:    data.CreatedAt,
	}
}

// fromAssignmentDomain converts a domain DeviceAssignment entity to a GORM DeviceAssignmentModel.
func fromAssignmentDomain(data *entity.DeviceAssignment) *model.DeviceAssignmentModel {
	if data == nil {
		return nil
	}

	return &model.DeviceAssignmentModel{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		PatientID:    data.PatientID,
		AssignerID:   data.AssignerID,
		DateAssigned: data.DateAssigned,
		DateReturned: data.DateReturned,
		CreatedAt:    data.CreatedAt,
	}
}
