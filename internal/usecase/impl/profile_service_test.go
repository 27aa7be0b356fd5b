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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "jane.doe@example.com", Roles: entity.Roles{entity.RoleClinician}}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	found, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, found.ID)
	assert.True(t, found.Roles.Contains(entity.RoleClinician))
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	found, err := fx.service.GetProfile(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, FirstName: "Jane", LastName: "Doe"}
	input := &usecase.UpdateProfileInput{FirstName: stringPtr("Janet")}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName)
	assert.Equal(t, "Doe", updated.LastName)
}

func TestProfileService_ListUsers_RoleFilter(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	role := entity.RoleClinician
	users := []*entity.User{{ID: uuid.New(), Roles: entity.Roles{entity.RoleClinician}}}

	fx.userRepo.EXPECT().List(ctx, &role, defaultUserPageSize, 0).Return(users, nil)

	found, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{Role: "clinician"})

	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestProfileService_ListUsers_UnknownRole(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	found, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{Role: "superuser"})

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_SetRoles_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Roles: entity.Roles{entity.RolePatient}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
			mockUserRepo.EXPECT().RemoveRole(ctx, userID, entity.RolePatient).Return(nil)
			mockUserRepo.EXPECT().AssignRole(ctx, userID, entity.RoleClinician).Return(nil)
			mockUserRepo.EXPECT().AssignRole(ctx, userID, entity.RoleAdmin).Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.SetRoles(ctx, userID, []string{"clinician", "admin"})

	require.NoError(t, err)
	assert.True(t, updated.Roles.Contains(entity.RoleClinician))
	assert.True(t, updated.Roles.Contains(entity.RoleAdmin))
	assert.False(t, updated.Roles.Contains(entity.RolePatient))
}

func TestProfileService_SetRoles_UnknownRole(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	updated, err := fx.service.SetRoles(ctx, userID, []string{"patient", "superuser"})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_SetRoles_Empty(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	updated, err := fx.service.SetRoles(ctx, userID, nil)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_DeleteUser_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}

func TestProfileService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
