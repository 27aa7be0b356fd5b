package impl

import (
	"context"
	"testing"

	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	mockRepo "medops/internal/mocks/repository"
	mockService "medops/internal/mocks/service"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service        usecase.DeviceUsecase
	txManager      *mockRepo.MockTransactionManager
	deviceRepo     *mockRepo.MockDeviceRepository
	assignmentRepo *mockRepo.MockAssignmentRepository
	qrcodeService  *mockService.MockQRCodeService
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	assignmentRepo := mockRepo.NewMockAssignmentRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)

	service := NewDeviceService(DeviceServiceParams{
		TxManager:      txManager,
		DeviceRepo:     deviceRepo,
		AssignmentRepo: assignmentRepo,
		QRCodeService:  qrcodeService,
		Logger:         newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:        service,
		txManager:      txManager,
		deviceRepo:     deviceRepo,
		assignmentRepo: assignmentRepo,
		qrcodeService:  qrcodeService,
	}
}

func TestDeviceService_CreateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	input := &usecase.CreateDeviceInput{
		Name:         "ward-3-thermometer",
		SerialNumber: stringPtr("SN-0042"),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockDeviceRepo.EXPECT().FindByName(ctx, input.Name).Return(nil, repository.ErrDeviceNotFound)
			mockDeviceRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)

			return fn(mockFactory)
		})

	device, err := fx.service.CreateDevice(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Name, device.Name)
	assert.Equal(t, "SN-0042", *device.SerialNumber)
	assert.NotEqual(t, uuid.Nil, device.ID)
}

func TestDeviceService_CreateDevice_BlankName(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	input := &usecase.CreateDeviceInput{Name: "   "}

	device, err := fx.service.CreateDevice(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_CreateDevice_NameTaken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	input := &usecase.CreateDeviceInput{Name: "ward-3-thermometer"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockDeviceRepo.EXPECT().
				FindByName(ctx, input.Name).
				Return(&entity.Device{ID: uuid.New(), Name: input.Name}, nil)

			return fn(mockFactory)
		})

	device, err := fx.service.CreateDevice(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceAlreadyExists))
}

func TestDeviceService_GetDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	device := &entity.Device{ID: deviceID, Name: "ward-3-thermometer"}

	fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(device, nil)

	found, err := fx.service.GetDevice(ctx, deviceID)

	require.NoError(t, err)
	assert.Equal(t, deviceID, found.ID)
}

func TestDeviceService_GetDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	found, err := fx.service.GetDevice(ctx, deviceID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_ListDevices_DefaultLimit(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	devices := []*entity.Device{{ID: uuid.New(), Name: "a"}, {ID: uuid.New(), Name: "b"}}

	fx.deviceRepo.EXPECT().List(ctx, defaultDevicePageSize, 0).Return(devices, nil)

	found, err := fx.service.ListDevices(ctx, 0, 0)

	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestDeviceService_UpdateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	existing := &entity.Device{ID: deviceID, Name: "old-name"}
	input := &usecase.UpdateDeviceInput{
		Name:                   stringPtr("new-name"),
		CurrentFirmwareVersion: stringPtr("2.1.0"),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockDeviceRepo.EXPECT().FindByID(ctx, deviceID).Return(existing, nil)
			mockDeviceRepo.EXPECT().FindByName(ctx, "new-name").Return(nil, repository.ErrDeviceNotFound)
			mockDeviceRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateDevice(ctx, deviceID, input)

	require.NoError(t, err)
	assert.Equal(t, "new-name", updated.Name)
	assert.Equal(t, "2.1.0", *updated.CurrentFirmwareVersion)
}

func TestDeviceService_DeleteDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewAssignmentRepository().Return(mockAssignmentRepo)
			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)

			mockAssignmentRepo.EXPECT().FindOpenByDevice(ctx, deviceID).Return(nil, repository.ErrAssignmentNotFound)
			mockDeviceRepo.EXPECT().Delete(ctx, deviceID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteDevice(ctx, deviceID)

	require.NoError(t, err)
}

func TestDeviceService_DeleteDevice_StillAssigned(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)

			mockFactory.EXPECT().NewAssignmentRepository().Return(mockAssignmentRepo)
			mockAssignmentRepo.EXPECT().
				FindOpenByDevice(ctx, deviceID).
				Return(&entity.DeviceAssignment{ID: uuid.New(), DeviceID: deviceID}, nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteDevice(ctx, deviceID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceAlreadyAssigned))
}

func TestDeviceService_GenerateDeviceLabel_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(&entity.Device{ID: deviceID}, nil)
	fx.qrcodeService.EXPECT().GenerateDeviceQR(deviceID).Return(pngBytes, nil)

	label, err := fx.service.GenerateDeviceLabel(ctx, deviceID)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, label)
}

func TestDeviceService_GenerateDeviceLabel_DeviceNotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	label, err := fx.service.GenerateDeviceLabel(ctx, deviceID)

	assert.Error(t, err)
	assert.Nil(t, label)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}
