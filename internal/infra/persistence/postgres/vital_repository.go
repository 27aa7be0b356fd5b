// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	"medops/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// vitalRepository implements the repository.VitalRepository interface.
// The table is append-only; no update or delete statements are issued.
type vitalRepository struct {
	db *gorm.DB
}

// NewVitalRepository is the constructor for vitalRepository.
func NewVitalRepository(db *gorm.DB) repository.VitalRepository {
	return &vitalRepository{
		db: db,
	}
}

// Create persists a single vital reading.
func (repo *vitalRepository) Create(ctx context.Context, reading *entity.VitalReading) error {
	readingM, err := fromVitalDomain(reading)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(readingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required reading information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vital reading")
	}

	// Update the entity with generated values
	reading.ID = readingM.ID

	return nil
}

// BatchCreate persists multiple vital readings in one statement.
func (repo *vitalRepository) BatchCreate(ctx context.Context, readings []*entity.VitalReading) error {
	if len(readings) == 0 {
		return nil
	}

	readingModels := make([]*model.VitalReadingModel, 0, len(readings))
	for _, reading := range readings {
		readingM, err := fromVitalDomain(reading)
		if err != nil {
			return err
		}
		readingModels = append(readingModels, readingM)
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(readingModels, 100).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create vital readings")
	}

	for i, readingM := range readingModels {
		readings[i].ID = readingM.ID
	}

	return nil
}

// FindByPatient retrieves a patient's readings inside [from, to), newest first.
func (repo *vitalRepository) FindByPatient(ctx context.Context, patientID uuid.UUID, from, to time.Time, limit, offset int) ([]*entity.VitalReading, error) {
	return repo.findRange(ctx, "patient_id = ?", patientID, from, to, limit, offset)
}

// FindByDevice retrieves a device's readings inside [from, to), newest first.
func (repo *vitalRepository) FindByDevice(ctx context.Context, deviceID uuid.UUID, from, to time.Time, limit, offset int) ([]*entity.VitalReading, error) {
	return repo.findRange(ctx, "device_id = ?", deviceID, from, to, limit, offset)
}

func (repo *vitalRepository) findRange(ctx context.Context, cond string, id uuid.UUID, from, to time.Time, limit, offset int) ([]*entity.VitalReading, error) {
	var readingModels []*model.VitalReadingModel

	query := repo.db.WithContext(ctx).
		Where(cond, id).
		Where("collection_time >= ? AND collection_time < ?", from, to).
		Order("collection_time DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&readingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vital readings")
	}

	readings := make([]*entity.VitalReading, 0, len(readingModels))
	for _, readingM := range readingModels {
		reading, err := toVitalDomain(readingM)
		if err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

// --- Mapper Functions ---

// toVitalDomain converts a GORM VitalReadingModel to a domain VitalReading entity.
func toVitalDomain(data *model.VitalReadingModel) (*entity.VitalReading, error) {
	if data == nil {
		return nil, nil
	}

	var measurement entity.Measurement
	if err := json.Unmarshal(data.Measurement, &measurement); err != nil {
		return nil, errors.Wrap(err, "failed to decode measurement payload")
	}

	return &entity.VitalReading{
		ID:             data.ID,
		DeviceID:       data.DeviceID,
		PatientID:      data.PatientID,
		Type:           entity.VitalType(data.Type),
		Measurement:    measurement,
		CollectionTime: data.CollectionTime,
		ReceivedTime:   data.ReceivedTime,
	}, nil
}

// fromVitalDomain converts a domain VitalReading entity to a GORM VitalReadingModel.
func fromVitalDomain(data *entity.VitalReading) (*model.VitalReadingModel, error) {
	if data == nil {
		return nil, nil
	}

	measurement, err := json.Marshal(data.Measurement)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode measurement payload")
	}

	return &model.VitalReadingModel{
		ID:             data.ID,
		DeviceID:       data.DeviceID,
		PatientID:      data.PatientID,
		Type:           data.Type.String(),
		Measurement:    datatypes.JSON(measurement),
		CollectionTime: data.CollectionTime,
		ReceivedTime:   data.ReceivedTime,
	}, nil
}
