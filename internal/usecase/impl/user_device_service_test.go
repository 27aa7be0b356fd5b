package impl

import (
	"context"
	"testing"

	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	mockRepo "medops/internal/mocks/repository"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userDeviceServiceFixtures holds all test dependencies for push device tests.
type userDeviceServiceFixtures struct {
	service        usecase.UserDeviceUsecase
	txManager      *mockRepo.MockTransactionManager
	userDeviceRepo *mockRepo.MockUserDeviceRepository
}

func createTestUserDeviceService(t *testing.T) userDeviceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userDeviceRepo := mockRepo.NewMockUserDeviceRepository(t)

	service := NewUserDeviceService(UserDeviceServiceParams{
		TxManager:      txManager,
		UserDeviceRepo: userDeviceRepo,
		Logger:         newDiscardLogger(),
	})

	return userDeviceServiceFixtures{
		service:        service,
		txManager:      txManager,
		userDeviceRepo: userDeviceRepo,
	}
}

func TestUserDeviceService_RegisterDevice_New(t *testing.T) {
	fx := createTestUserDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.UserDeviceInfo{
		FCMToken: "fcm-token-1",
		DeviceID: "install-abc",
		Platform: "android",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserDeviceRepo := mockRepo.NewMockUserDeviceRepository(t)

			mockFactory.EXPECT().NewUserDeviceRepository().Return(mockUserDeviceRepo)
			mockUserDeviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
			mockUserDeviceRepo.EXPECT().
				CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
				Return(nil)

			return fn(mockFactory)
		})

	registered, err := fx.service.RegisterDevice(ctx, userID, info)

	require.NoError(t, err)
	assert.Equal(t, userID, registered.UserID)
	assert.Equal(t, "fcm-token-1", registered.FCMToken)
	assert.True(t, registered.IsActive)
}

func TestUserDeviceService_RegisterDevice_RefreshExisting(t *testing.T) {
	fx := createTestUserDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "stale-token",
		DeviceID: "install-abc",
		IsActive: false,
	}
	info := &usecase.UserDeviceInfo{FCMToken: "fresh-token", DeviceID: "install-abc"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserDeviceRepo := mockRepo.NewMockUserDeviceRepository(t)

			mockFactory.EXPECT().NewUserDeviceRepository().Return(mockUserDeviceRepo)
			mockUserDeviceRepo.EXPECT().
				FindDevicesByUser(ctx, userID).
				Return([]*entity.UserDevice{existing}, nil)
			mockUserDeviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "fresh-token").Return(nil)

			return fn(mockFactory)
		})

	registered, err := fx.service.RegisterDevice(ctx, userID, info)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, registered.ID)
	assert.Equal(t, "fresh-token", registered.FCMToken)
	assert.True(t, registered.IsActive)
}

func TestUserDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	fx := createTestUserDeviceService(t)

	registered, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.UserDeviceInfo{DeviceID: "install-abc"})

	assert.Error(t, err)
	assert.Nil(t, registered)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserDeviceService_UpdateFCMToken_Success(t *testing.T) {
	fx := createTestUserDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	device := &entity.UserDevice{ID: deviceID, UserID: userID}

	fx.userDeviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(device, nil)
	fx.userDeviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "new-token").Return(nil)

	err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-token")

	require.NoError(t, err)
}

func TestUserDeviceService_UpdateFCMToken_WrongUser(t *testing.T) {
	fx := createTestUserDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	device := &entity.UserDevice{ID: deviceID, UserID: uuid.New()}

	fx.userDeviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(device, nil)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-token")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	fx := createTestUserDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.userDeviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrUserDeviceNotFound)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-token")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestUserDeviceService_GetUserDevices_Success(t *testing.T) {
	fx := createTestUserDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: userID}}

	fx.userDeviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devices, nil)

	found, err := fx.service.GetUserDevices(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestUserDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestUserDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	device := &entity.UserDevice{ID: deviceID, UserID: userID}

	fx.userDeviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(device, nil)
	fx.userDeviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

	err := fx.service.DeactivateDevice(ctx, userID, deviceID)

	require.NoError(t, err)
}

func TestUserDeviceService_DeactivateDevice_WrongUser(t *testing.T) {
	fx := createTestUserDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	device := &entity.UserDevice{ID: deviceID, UserID: uuid.New()}

	fx.userDeviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(device, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
