// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "medops/internal/delivery/context"
	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	"medops/internal/domain/service"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultDevicePageSize = 50

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager      repository.TransactionManager
	deviceRepo     repository.DeviceRepository
	assignmentRepo repository.AssignmentRepository
	qrcodeService  service.QRCodeService
	logger         *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	DeviceRepo     repository.DeviceRepository
	AssignmentRepo repository.AssignmentRepository
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		txManager:      params.TxManager,
		deviceRepo:     params.DeviceRepo,
		assignmentRepo: params.AssignmentRepo,
		qrcodeService:  params.QRCodeService,
		logger:         params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDevice registers a new clinical device.
func (srv *deviceService) CreateDevice(ctx context.Context, input *usecase.CreateDeviceInput) (*entity.Device, error) {
	srv.log(ctx).Info("Registering device", slog.Any("name", input.Name))

	if !entity.ValidateDeviceName(input.Name) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "device name must not be blank")
	}

	device := &entity.Device{
		ID:                     uuid.New(),
		Name:                   input.Name,
		CurrentFirmwareVersion: input.CurrentFirmwareVersion,
		DateOfPurchase:         input.DateOfPurchase,
		SerialNumber:           input.SerialNumber,
		MACAddress:             input.MACAddress,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()

		_, err := deviceRepo.FindByName(ctx, input.Name)
		if err == nil {
			return errors.Wrap(domainerrors.ErrDeviceAlreadyExists, "device name already taken")
		}
		if !errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(err, "failed to check device name")
		}

		if err := deviceRepo.Create(ctx, device); err != nil {
			if errors.Is(err, repository.ErrDuplicateDevice) {
				return errors.Wrap(domainerrors.ErrDeviceAlreadyExists, "device already registered")
			}

			return errors.Wrap(err, "failed to create device")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to register device", slog.Any("error", err), slog.Any("name", input.Name))

		return nil, errors.Wrap(err, "failed to execute device registration transaction")
	}
	srv.log(ctx).Info("Device registered", slog.Any("deviceID", device.ID))

	return device, nil
}

// GetDevice retrieves a device registry card by ID.
func (srv *deviceService) GetDevice(ctx context.Context, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return device, nil
}

// ListDevices retrieves registered devices, newest first.
func (srv *deviceService) ListDevices(ctx context.Context, limit, offset int) ([]*entity.Device, error) {
	if limit <= 0 {
		limit = defaultDevicePageSize
	}

	devices, err := srv.deviceRepo.List(ctx, limit, offset)
	if err != nil {
		srv.log(ctx).Error("Failed to list devices", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// UpdateDevice modifies the editable registry fields of a device.
func (srv *deviceService) UpdateDevice(ctx context.Context, deviceID uuid.UUID, input *usecase.UpdateDeviceInput) (*entity.Device, error) {
	srv.log(ctx).Info("Updating device", slog.Any("deviceID", deviceID))

	if input.Name != nil && !entity.ValidateDeviceName(*input.Name) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "device name must not be blank")
	}

	var updated *entity.Device
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()

		device, err := deviceRepo.FindByID(ctx, deviceID)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
			}

			return errors.Wrap(err, "failed to find device")
		}

		if input.Name != nil && *input.Name != device.Name {
			if _, err := deviceRepo.FindByName(ctx, *input.Name); err == nil {
				return errors.Wrap(domainerrors.ErrDeviceAlreadyExists, "device name already taken")
			} else if !errors.Is(err, repository.ErrDeviceNotFound) {
				return errors.Wrap(err, "failed to check device name")
			}
			device.Name = *input.Name
		}
		if input.CurrentFirmwareVersion != nil {
			device.CurrentFirmwareVersion = input.CurrentFirmwareVersion
		}
		if input.DateOfPurchase != nil {
			device.DateOfPurchase = input.DateOfPurchase
		}
		if input.SerialNumber != nil {
			device.SerialNumber = input.SerialNumber
		}
		if input.MACAddress != nil {
			device.MACAddress = input.MACAddress
		}

		if err := deviceRepo.Update(ctx, device); err != nil {
			if errors.Is(err, repository.ErrDuplicateDevice) {
				return errors.Wrap(domainerrors.ErrDeviceAlreadyExists, "device already registered")
			}

			return errors.Wrap(err, "failed to update device")
		}
		updated = device

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update device", slog.Any("error", err), slog.Any("deviceID", deviceID))

		return nil, errors.Wrap(err, "failed to execute device update transaction")
	}

	return updated, nil
}

// DeleteDevice removes a device from the registry. A device with an open
// assignment must be returned first.
func (srv *deviceService) DeleteDevice(ctx context.Context, deviceID uuid.UUID) error {
	srv.log(ctx).Info("Deleting device", slog.Any("deviceID", deviceID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.NewAssignmentRepository().FindOpenByDevice(ctx, deviceID)
		if err == nil {
			return errors.Wrap(domainerrors.ErrDeviceAlreadyAssigned, "device must be returned before deletion")
		}
		if !errors.Is(err, repository.ErrAssignmentNotFound) {
			return errors.Wrap(err, "failed to check open assignment")
		}

		if err := repoFactory.NewDeviceRepository().Delete(ctx, deviceID); err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
			}

			return errors.Wrap(err, "failed to delete device")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete device", slog.Any("error", err), slog.Any("deviceID", deviceID))

		return errors.Wrap(err, "failed to execute device deletion transaction")
	}

	return nil
}

// GenerateDeviceLabel renders the pairing QR label for a device as a PNG.
func (srv *deviceService) GenerateDeviceLabel(ctx context.Context, deviceID uuid.UUID) ([]byte, error) {
	if _, err := srv.deviceRepo.FindByID(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	label, err := srv.qrcodeService.GenerateDeviceQR(deviceID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate device label", slog.Any("error", err), slog.Any("deviceID", deviceID))

		return nil, errors.Wrap(err, "failed to generate device label")
	}

	return label, nil
}
