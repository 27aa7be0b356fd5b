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

// careServiceFixtures holds all test dependencies for care service tests.
type careServiceFixtures struct {
	service   usecase.CareUsecase
	txManager *mockRepo.MockTransactionManager
	careRepo  *mockRepo.MockCareRepository
}

func createTestCareService(t *testing.T) careServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	careRepo := mockRepo.NewMockCareRepository(t)

	service := NewCareService(CareServiceParams{
		TxManager: txManager,
		CareRepo:  careRepo,
		Logger:    newDiscardLogger(),
	})

	return careServiceFixtures{
		service:   service,
		txManager: txManager,
		careRepo:  careRepo,
	}
}

func TestCareService_AddCareRelationship_Success(t *testing.T) {
	fx := createTestCareService(t)

	ctx := context.Background()
	patientID := uuid.New()
	clinicianID := uuid.New()
	patient := &entity.User{ID: patientID, Roles: entity.Roles{entity.RolePatient}}
	clinician := &entity.User{ID: clinicianID, Roles: entity.Roles{entity.RoleClinician}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockCareRepo := mockRepo.NewMockCareRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewCareRepository().Return(mockCareRepo)

			mockUserRepo.EXPECT().FindByID(ctx, patientID).Return(patient, nil)
			mockUserRepo.EXPECT().FindByID(ctx, clinicianID).Return(clinician, nil)
			mockCareRepo.EXPECT().
				CreateRelationship(ctx, mock.AnythingOfType("*entity.CareRelationship")).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.AddCareRelationship(ctx, patientID, clinicianID)

	require.NoError(t, err)
}

func TestCareService_AddCareRelationship_SelfLink(t *testing.T) {
	fx := createTestCareService(t)

	ctx := context.Background()
	userID := uuid.New()

	err := fx.service.AddCareRelationship(ctx, userID, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCareService_AddCareRelationship_PatientMissingRole(t *testing.T) {
	fx := createTestCareService(t)

	ctx := context.Background()
	patientID := uuid.New()
	clinicianID := uuid.New()
	notAPatient := &entity.User{ID: patientID, Roles: entity.Roles{entity.RoleClinician}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, patientID).Return(notAPatient, nil)

			return fn(mockFactory)
		})

	err := fx.service.AddCareRelationship(ctx, patientID, clinicianID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCareService_AddCareRelationship_ClinicianMissingRole(t *testing.T) {
	fx := createTestCareService(t)

	ctx := context.Background()
	patientID := uuid.New()
	clinicianID := uuid.New()
	patient := &entity.User{ID: patientID, Roles: entity.Roles{entity.RolePatient}}
	notStaff := &entity.User{ID: clinicianID, Roles: entity.Roles{entity.RolePatient}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, patientID).Return(patient, nil)
			mockUserRepo.EXPECT().FindByID(ctx, clinicianID).Return(notStaff, nil)

			return fn(mockFactory)
		})

	err := fx.service.AddCareRelationship(ctx, patientID, clinicianID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCareService_AddCareRelationship_AdminAsClinician(t *testing.T) {
	fx := createTestCareService(t)

	ctx := context.Background()
	patientID := uuid.New()
	adminID := uuid.New()
	patient := &entity.User{ID: patientID, Roles: entity.Roles{entity.RolePatient}}
	admin := &entity.User{ID: adminID, Roles: entity.Roles{entity.RoleAdmin}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockCareRepo := mockRepo.NewMockCareRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewCareRepository().Return(mockCareRepo)

			mockUserRepo.EXPECT().FindByID(ctx, patientID).Return(patient, nil)
			mockUserRepo.EXPECT().FindByID(ctx, adminID).Return(admin, nil)
			mockCareRepo.EXPECT().
				CreateRelationship(ctx, mock.AnythingOfType("*entity.CareRelationship")).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.AddCareRelationship(ctx, patientID, adminID)

	require.NoError(t, err)
}

func TestCareService_RemoveCareRelationship_Success(t *testing.T) {
	fx := createTestCareService(t)

	ctx := context.Background()
	patientID := uuid.New()
	clinicianID := uuid.New()

	fx.careRepo.EXPECT().DeleteRelationship(ctx, patientID, clinicianID).Return(nil)

	err := fx.service.RemoveCareRelationship(ctx, patientID, clinicianID)

	require.NoError(t, err)
}

func TestCareService_RemoveCareRelationship_NotFound(t *testing.T) {
	fx := createTestCareService(t)

	ctx := context.Background()
	patientID := uuid.New()
	clinicianID := uuid.New()

	fx.careRepo.EXPECT().
		DeleteRelationship(ctx, patientID, clinicianID).
		Return(repository.ErrCareRelationshipNotFound)

	err := fx.service.RemoveCareRelationship(ctx, patientID, clinicianID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCareService_GetCareTeam_Success(t *testing.T) {
	fx := createTestCareService(t)

	ctx := context.Background()
	patientID := uuid.New()
	team := []*entity.User{{ID: uuid.New(), Roles: entity.Roles{entity.RoleClinician}}}

	fx.careRepo.EXPECT().FindCareTeam(ctx, patientID).Return(team, nil)

	found, err := fx.service.GetCareTeam(ctx, patientID)

	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestCareService_GetPatients_Success(t *testing.T) {
	fx := createTestCareService(t)

	ctx := context.Background()
	clinicianID := uuid.New()
	patients := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.careRepo.EXPECT().FindPatients(ctx, clinicianID).Return(patients, nil)

	found, err := fx.service.GetPatients(ctx, clinicianID)

	require.NoError(t, err)
	assert.Len(t, found, 2)
}
