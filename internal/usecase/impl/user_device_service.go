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

// userDeviceService implements the UserDeviceUsecase interface for managing
// users' phones and tablets registered for push notifications.
type userDeviceService struct {
	txManager      repository.TransactionManager
	userDeviceRepo repository.UserDeviceRepository
	logger         *slog.Logger
}

// UserDeviceServiceParams holds dependencies for userDeviceService, injected by Fx.
type UserDeviceServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserDeviceRepo repository.UserDeviceRepository
	Logger         *slog.Logger
}

// NewUserDeviceService is the constructor for userDeviceService.
func NewUserDeviceService(params UserDeviceServiceParams) usecase.UserDeviceUsecase {
	return &userDeviceService{
		txManager:      params.TxManager,
		userDeviceRepo: params.UserDeviceRepo,
		logger:         params.Logger,
	}
}

func (srv *userDeviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice registers a new push device or refreshes the FCM token of an
// existing one. The client install identifier keys the device.
func (srv *userDeviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.UserDeviceInfo) (*entity.UserDevice, error) {
	srv.log(ctx).Info("Registering push device", slog.Any("userID", userID), slog.Any("deviceID", deviceInfo.DeviceID))

	if deviceInfo.FCMToken == "" || deviceInfo.DeviceID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "fcm token and device id are required")
	}

	var registered *entity.UserDevice
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userDeviceRepo := repoFactory.NewUserDeviceRepository()

		devices, err := userDeviceRepo.FindDevicesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user devices")
		}

		for _, device := range devices {
			if device.DeviceID != deviceInfo.DeviceID {
				continue
			}
			if err := userDeviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
				return errors.Wrap(err, "failed to refresh fcm token")
			}
			device.FCMToken = deviceInfo.FCMToken
			device.IsActive = true
			registered = device

			return nil
		}

		device := &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   userID,
			FCMToken: deviceInfo.FCMToken,
			DeviceID: deviceInfo.DeviceID,
			Platform: deviceInfo.Platform,
			IsActive: true,
		}
		if err := userDeviceRepo.CreateDevice(ctx, device); err != nil {
			return errors.Wrap(err, "failed to create push device")
		}
		registered = device

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to register push device", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to execute device registration transaction")
	}

	return registered, nil
}

// UpdateFCMToken updates the FCM token for a specific device.
func (srv *userDeviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if fcmToken == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "fcm token is required")
	}

	device, err := srv.userDeviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrUserDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "push device not found")
		}

		return errors.Wrap(err, "failed to find push device")
	}
	if device.UserID != userID {
		return errors.Wrap(domainerrors.ErrForbidden, "push device does not belong to user")
	}

	if err := srv.userDeviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		srv.log(ctx).Error("Failed to update fcm token", slog.Any("error", err), slog.Any("deviceID", deviceID))

		return errors.Wrap(err, "failed to update fcm token")
	}

	return nil
}

// GetUserDevices retrieves all push devices registered by a user.
func (srv *userDeviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.userDeviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to get user devices", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to get user devices")
	}

	return devices, nil
}

// DeactivateDevice deactivates a push device (soft delete).
func (srv *userDeviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	srv.log(ctx).Info("Deactivating push device", slog.Any("userID", userID), slog.Any("deviceID", deviceID))

	device, err := srv.userDeviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrUserDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "push device not found")
		}

		return errors.Wrap(err, "failed to find push device")
	}
	if device.UserID != userID {
		return errors.Wrap(domainerrors.ErrForbidden, "push device does not belong to user")
	}

	if err := srv.userDeviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		srv.log(ctx).Error("Failed to deactivate push device", slog.Any("error", err), slog.Any("deviceID", deviceID))

		return errors.Wrap(err, "failed to deactivate push device")
	}

	return nil
}
