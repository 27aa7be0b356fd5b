// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	"medops/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// careRepository implements the repository.CareRepository interface.
type careRepository struct {
	db *gorm.DB
}

// NewCareRepository is the constructor for careRepository.
func NewCareRepository(db *gorm.DB) repository.CareRepository {
	return &careRepository{
		db: db,
	}
}

// CreateRelationship links a clinician to a patient. Creating a link that
// already exists is a no-op.
func (repo *careRepository) CreateRelationship(ctx context.Context, rel *entity.CareRelationship) error {
	relM := &model.CareRelationshipModel{
		PatientID:   rel.PatientID,
		ClinicianID: rel.ClinicianID,
	}

	if err := repo.db.WithContext(ctx).Create(relM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create care relationship")
	}

	rel.CreatedAt = relM.CreatedAt

	return nil
}

// DeleteRelationship removes the link between a clinician and a patient.
func (repo *careRepository) DeleteRelationship(ctx context.Context, patientID, clinicianID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("patient_id = ? AND clinician_id = ?", patientID, clinicianID).
		Delete(&model.CareRelationshipModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete care relationship")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCareRelationshipNotFound
	}

	return nil
}

// FindCareTeam retrieves the clinicians responsible for a patient.
func (repo *careRepository) FindCareTeam(ctx context.Context, patientID uuid.UUID) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Roles").
		Joins("JOIN care_relationships ON care_relationships.clinician_id = users.id").
		Where("care_relationships.patient_id = ?", patientID).
		Order("users.created_at").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find care team")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindPatients retrieves the patients under a clinician's care.
func (repo *careRepository) FindPatients(ctx context.Context, clinicianID uuid.UUID) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Roles").
		Joins("JOIN care_relationships ON care_relationships.patient_id = users.id").
		Where("care_relationships.clinician_id = ?", clinicianID).
		Order("users.created_at").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find patients")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}
