// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "medops/internal/delivery/context"
	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// careService implements the CareUsecase interface.
type careService struct {
	txManager repository.TransactionManager
	careRepo  repository.CareRepository
	logger    *slog.Logger
}

// CareServiceParams holds dependencies for careService, injected by Fx.
type CareServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CareRepo  repository.CareRepository
	Logger    *slog.Logger
}

// NewCareService is the constructor for careService.
func NewCareService(params CareServiceParams) usecase.CareUsecase {
	return &careService{
		txManager: params.TxManager,
		careRepo:  params.CareRepo,
		logger:    params.Logger,
	}
}

func (srv *careService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddCareRelationship links a clinician to a patient's care team.
func (srv *careService) AddCareRelationship(ctx context.Context, patientID, clinicianID uuid.UUID) error {
	srv.log(ctx).Info("Adding care relationship", slog.Any("patientID", patientID), slog.Any("clinicianID", clinicianID))

	if patientID == clinicianID {
		return errors.Wrap(domainerrors.ErrValidationFailed, "patient and clinician must be different users")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		patient, err := userRepo.FindByID(ctx, patientID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "patient not found")
			}

			return errors.Wrap(err, "failed to find patient")
		}
		if !patient.Roles.Contains(entity.RolePatient) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "user does not hold the patient role")
		}

		clinician, err := userRepo.FindByID(ctx, clinicianID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "clinician not found")
			}

			return errors.Wrap(err, "failed to find clinician")
		}
		if !clinician.Roles.Contains(entity.RoleClinician) && !clinician.Roles.Contains(entity.RoleAdmin) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "user does not hold a medical staff role")
		}

		rel := &entity.CareRelationship{
			PatientID:   patientID,
			ClinicianID: clinicianID,
		}
		if err := repoFactory.NewCareRepository().CreateRelationship(ctx, rel); err != nil {
			return errors.Wrap(err, "failed to create care relationship")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to add care relationship", slog.Any("error", err), slog.Any("patientID", patientID), slog.Any("clinicianID", clinicianID))

		return errors.Wrap(err, "failed to execute care relationship transaction")
	}

	return nil
}

// RemoveCareRelationship removes a clinician from a patient's care team.
func (srv *careService) RemoveCareRelationship(ctx context.Context, patientID, clinicianID uuid.UUID) error {
	srv.log(ctx).Info("Removing care relationship", slog.Any("patientID", patientID), slog.Any("clinicianID", clinicianID))

	if err := srv.careRepo.DeleteRelationship(ctx, patientID, clinicianID); err != nil {
		if errors.Is(err, repository.ErrCareRelationshipNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "care relationship not found")
		}
		srv.log(ctx).Error("Failed to remove care relationship", slog.Any("error", err), slog.Any("patientID", patientID), slog.Any("clinicianID", clinicianID))

		return errors.Wrap(err, "failed to remove care relationship")
	}

	return nil
}

// GetCareTeam retrieves the clinicians responsible for a patient.
func (srv *careService) GetCareTeam(ctx context.Context, patientID uuid.UUID) ([]*entity.User, error) {
	team, err := srv.careRepo.FindCareTeam(ctx, patientID)
	if err != nil {
		srv.log(ctx).Error("Failed to get care team", slog.Any("error", err), slog.Any("patientID", patientID))

		return nil, errors.Wrap(err, "failed to get care team")
	}

	return team, nil
}

// GetPatients retrieves the patients under a clinician's care.
func (srv *careService) GetPatients(ctx context.Context, clinicianID uuid.UUID) ([]*entity.User, error) {
	patients, err := srv.careRepo.FindPatients(ctx, clinicianID)
	if err != nil {
		srv.log(ctx).Error("Failed to get patients", slog.Any("error", err), slog.Any("clinicianID", clinicianID))

		return nil, errors.Wrap(err, "failed to get patients")
	}

	return patients, nil
}
