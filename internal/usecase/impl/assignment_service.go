// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "medops/internal/delivery/context"
	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAssignmentPageSize = 50

// assignmentService implements the AssignmentUsecase interface.
type assignmentService struct {
	txManager      repository.TransactionManager
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
	logger         *slog.Logger
}

// AssignmentServiceParams holds dependencies for assignmentService, injected by Fx.
type AssignmentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AssignmentRepo repository.AssignmentRepository
	UserRepo       repository.UserRepository
	Logger         *slog.Logger
}

// NewAssignmentService is the constructor for assignmentService.
func NewAssignmentService(params AssignmentServiceParams) usecase.AssignmentUsecase {
	return &assignmentService{
		txManager:      params.TxManager,
		assignmentRepo: params.AssignmentRepo,
		userRepo:       params.UserRepo,
		logger:         params.Logger,
	}
}

func (srv *assignmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Assign opens an assignment interval for a device.
func (srv *assignmentService) Assign(ctx context.Context, input *usecase.AssignDeviceInput) (*entity.DeviceAssignment, error) {
	srv.log(ctx).Info("Assigning device",
		slog.Any("deviceID", input.DeviceID),
		slog.Any("patientID", input.PatientID),
		slog.Any("assignerID", input.AssignerID))

	startTime := input.StartTime
	if startTime.IsZero() {
		startTime = time.Now().UTC()
	}

	assignment := &entity.DeviceAssignment{
		ID:           uuid.New(),
		DeviceID:     input.DeviceID,
		PatientID:    input.PatientID,
		AssignerID:   input.AssignerID,
		DateAssigned: startTime,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := repoFactory.NewDeviceRepository().FindByID(ctx, input.DeviceID); err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
			}

			return errors.Wrap(err, "failed to find device")
		}

		patient, err := userRepo.FindByID(ctx, input.PatientID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "patient not found")
			}

			return errors.Wrap(err, "failed to find patient")
		}
		if !patient.Roles.Contains(entity.RolePatient) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "assignee does not hold the patient role")
		}

		assigner, err := userRepo.FindByID(ctx, input.AssignerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "assigner not found")
			}

			return errors.Wrap(err, "failed to find assigner")
		}
		if !assigner.Roles.Contains(entity.RoleClinician) && !assigner.Roles.Contains(entity.RoleAdmin) {
			return errors.Wrap(domainerrors.ErrForbidden, "assigner does not hold a medical staff role")
		}

		assignmentRepo := repoFactory.NewAssignmentRepository()

		// One open interval per device. The partial unique index catches the
		// concurrent race; this check catches everything else.
		if _, err := assignmentRepo.FindOpenByDevice(ctx, input.DeviceID); err == nil {
			return errors.Wrap(domainerrors.ErrDeviceAlreadyAssigned, "device already has an open assignment")
		} else if !errors.Is(err, repository.ErrAssignmentNotFound) {
			return errors.Wrap(err, "failed to check for an open assignment")
		}

		if err := assignmentRepo.Create(ctx, assignment); err != nil {
			if errors.Is(err, repository.ErrOpenAssignmentExists) {
				return errors.Wrap(domainerrors.ErrDeviceAlreadyAssigned, "device already has an open assignment")
			}

			return errors.Wrap(err, "failed to create assignment")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to assign device", slog.Any("error", err), slog.Any("deviceID", input.DeviceID))

		return nil, errors.Wrap(err, "failed to execute assignment transaction")
	}
	srv.log(ctx).Info("Device assigned", slog.Any("assignmentID", assignment.ID))

	return assignment, nil
}

// Unassign closes the open interval of a device.
func (srv *assignmentService) Unassign(ctx context.Context, deviceID uuid.UUID, endTime time.Time) (*entity.DeviceAssignment, error) {
	srv.log(ctx).Info("Unassigning device", slog.Any("deviceID", deviceID))

	if endTime.IsZero() {
		endTime = time.Now().UTC()
	}

	var closed *entity.DeviceAssignment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		assignmentRepo := repoFactory.NewAssignmentRepository()

		assignment, err := assignmentRepo.FindOpenByDevice(ctx, deviceID)
		if err != nil {
			if errors.Is(err, repository.ErrAssignmentNotFound) {
				return errors.Wrap(domainerrors.ErrDeviceNotAssigned, "device has no open assignment")
			}

			return errors.Wrap(err, "failed to find open assignment")
		}

		if endTime.Before(assignment.DateAssigned) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "return time precedes assignment start")
		}

		if err := assignmentRepo.Close(ctx, assignment.ID, endTime); err != nil {
			if errors.Is(err, repository.ErrAssignmentNotFound) {
				return errors.Wrap(domainerrors.ErrDeviceNotAssigned, "assignment already closed")
			}

			return errors.Wrap(err, "failed to close assignment")
		}

		assignment.DateReturned = &endTime
		closed = assignment

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to unassign device", slog.Any("error", err), slog.Any("deviceID", deviceID))

		return nil, errors.Wrap(err, "failed to execute unassignment transaction")
	}
	srv.log(ctx).Info("Device returned", slog.Any("assignmentID", closed.ID))

	return closed, nil
}

// ResolveUser returns the patient whose interval covers the given instant.
func (srv *assignmentService) ResolveUser(ctx context.Context, deviceID uuid.UUID, at time.Time) (*entity.User, error) {
	assignment, err := srv.assignmentRepo.FindCovering(ctx, deviceID, at)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAssignmentNotFound, "no assignment covers the requested time")
		}

		return nil, errors.Wrap(err, "failed to find covering assignment")
	}

	patient, err := srv.userRepo.FindByID(ctx, assignment.PatientID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "assigned patient no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find assigned patient")
	}

	return patient, nil
}

// GetDeviceHistory retrieves a device's assignment history, newest first.
func (srv *assignmentService) GetDeviceHistory(ctx context.Context, deviceID uuid.UUID, limit, offset int) ([]*entity.DeviceAssignment, error) {
	if limit <= 0 {
		limit = defaultAssignmentPageSize
	}

	history, err := srv.assignmentRepo.FindByDevice(ctx, deviceID, limit, offset)
	if err != nil {
		srv.log(ctx).Error("Failed to get device history", slog.Any("error", err), slog.Any("deviceID", deviceID))

		return nil, errors.Wrap(err, "failed to get device history")
	}

	return history, nil
}

// GetPatientHistory retrieves a patient's assignment history, newest first.
func (srv *assignmentService) GetPatientHistory(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*entity.DeviceAssignment, error) {
	if limit <= 0 {
		limit = defaultAssignmentPageSize
	}

	history, err := srv.assignmentRepo.FindByPatient(ctx, patientID, limit, offset)
	if err != nil {
		srv.log(ctx).Error("Failed to get patient history", slog.Any("error", err), slog.Any("patientID", patientID))

		return nil, errors.Wrap(err, "failed to get patient history")
	}

	return history, nil
}
