package impl

import (
	"context"
	"testing"
	"time"

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

// assignmentServiceFixtures holds all test dependencies for assignment service tests.
type assignmentServiceFixtures struct {
	service        usecase.AssignmentUsecase
	txManager      *mockRepo.MockTransactionManager
	assignmentRepo *mockRepo.MockAssignmentRepository
	userRepo       *mockRepo.MockUserRepository
}

func createTestAssignmentService(t *testing.T) assignmentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	assignmentRepo := mockRepo.NewMockAssignmentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewAssignmentService(AssignmentServiceParams{
		TxManager:      txManager,
		AssignmentRepo: assignmentRepo,
		UserRepo:       userRepo,
		Logger:         newDiscardLogger(),
	})

	return assignmentServiceFixtures{
		service:        service,
		txManager:      txManager,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
	}
}

func TestAssignmentService_Assign_Success(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	input := &usecase.AssignDeviceInput{
		DeviceID:   uuid.New(),
		PatientID:  uuid.New(),
		AssignerID: uuid.New(),
		StartTime:  time.Now().UTC().Add(-time.Minute),
	}
	patient := &entity.User{ID: input.PatientID, Roles: entity.Roles{entity.RolePatient}}
	assigner := &entity.User{ID: input.AssignerID, Roles: entity.Roles{entity.RoleClinician}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAssignmentRepository().Return(mockAssignmentRepo)

			mockDeviceRepo.EXPECT().FindByID(ctx, input.DeviceID).Return(&entity.Device{ID: input.DeviceID}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, input.PatientID).Return(patient, nil)
			mockUserRepo.EXPECT().FindByID(ctx, input.AssignerID).Return(assigner, nil)
			mockAssignmentRepo.EXPECT().FindOpenByDevice(ctx, input.DeviceID).Return(nil, repository.ErrAssignmentNotFound)
			mockAssignmentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DeviceAssignment")).Return(nil)

			return fn(mockFactory)
		})

	assignment, err := fx.service.Assign(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.DeviceID, assignment.DeviceID)
	assert.Equal(t, input.PatientID, assignment.PatientID)
	assert.Equal(t, input.StartTime, assignment.DateAssigned)
	assert.Nil(t, assignment.DateReturned)
}

func TestAssignmentService_Assign_DeviceNotFound(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	input := &usecase.AssignDeviceInput{DeviceID: uuid.New(), PatientID: uuid.New(), AssignerID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockDeviceRepo.EXPECT().FindByID(ctx, input.DeviceID).Return(nil, repository.ErrDeviceNotFound)

			return fn(mockFactory)
		})

	assignment, err := fx.service.Assign(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, assignment)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestAssignmentService_Assign_AssigneeNotPatient(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	input := &usecase.AssignDeviceInput{DeviceID: uuid.New(), PatientID: uuid.New(), AssignerID: uuid.New()}
	notAPatient := &entity.User{ID: input.PatientID, Roles: entity.Roles{entity.RoleClinician}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)

			mockDeviceRepo.EXPECT().FindByID(ctx, input.DeviceID).Return(&entity.Device{ID: input.DeviceID}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, input.PatientID).Return(notAPatient, nil)

			return fn(mockFactory)
		})

	assignment, err := fx.service.Assign(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, assignment)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAssignmentService_Assign_AssignerNotStaff(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	input := &usecase.AssignDeviceInput{DeviceID: uuid.New(), PatientID: uuid.New(), AssignerID: uuid.New()}
	patient := &entity.User{ID: input.PatientID, Roles: entity.Roles{entity.RolePatient}}
	notStaff := &entity.User{ID: input.AssignerID, Roles: entity.Roles{entity.RolePatient}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)

			mockDeviceRepo.EXPECT().FindByID(ctx, input.DeviceID).Return(&entity.Device{ID: input.DeviceID}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, input.PatientID).Return(patient, nil)
			mockUserRepo.EXPECT().FindByID(ctx, input.AssignerID).Return(notStaff, nil)

			return fn(mockFactory)
		})

	assignment, err := fx.service.Assign(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, assignment)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAssignmentService_Assign_DeviceAlreadyAssigned(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	input := &usecase.AssignDeviceInput{DeviceID: uuid.New(), PatientID: uuid.New(), AssignerID: uuid.New()}
	patient := &entity.User{ID: input.PatientID, Roles: entity.Roles{entity.RolePatient}}
	assigner := &entity.User{ID: input.AssignerID, Roles: entity.Roles{entity.RoleAdmin}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockFactory.EXPECT().NewAssignmentRepository().Return(mockAssignmentRepo)

			mockDeviceRepo.EXPECT().FindByID(ctx, input.DeviceID).Return(&entity.Device{ID: input.DeviceID}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, input.PatientID).Return(patient, nil)
			mockUserRepo.EXPECT().FindByID(ctx, input.AssignerID).Return(assigner, nil)
			mockAssignmentRepo.EXPECT().
				FindOpenByDevice(ctx, input.DeviceID).
				Return(&entity.DeviceAssignment{ID: uuid.New(), DeviceID: input.DeviceID}, nil)

			return fn(mockFactory)
		})

	assignment, err := fx.service.Assign(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, assignment)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceAlreadyAssigned))
}

// A concurrent assign can slip past the open-interval check; the partial
// unique index turns the losing insert into ErrOpenAssignmentExists.
func TestAssignmentService_Assign_ConcurrentInsertLosesRace(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	input := &usecase.AssignDeviceInput{DeviceID: uuid.New(), PatientID: uuid.New(), AssignerID: uuid.New()}
	patient := &entity.User{ID: input.PatientID, Roles: entity.Roles{entity.RolePatient}}
	assigner := &entity.User{ID: input.AssignerID, Roles: entity.Roles{entity.RoleClinician}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockFactory.EXPECT().NewAssignmentRepository().Return(mockAssignmentRepo)

			mockDeviceRepo.EXPECT().FindByID(ctx, input.DeviceID).Return(&entity.Device{ID: input.DeviceID}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, input.PatientID).Return(patient, nil)
			mockUserRepo.EXPECT().FindByID(ctx, input.AssignerID).Return(assigner, nil)
			mockAssignmentRepo.EXPECT().FindOpenByDevice(ctx, input.DeviceID).Return(nil, repository.ErrAssignmentNotFound)
			mockAssignmentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.DeviceAssignment")).
				Return(repository.ErrOpenAssignmentExists)

			return fn(mockFactory)
		})

	assignment, err := fx.service.Assign(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, assignment)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceAlreadyAssigned))
}

func TestAssignmentService_Unassign_Success(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	started := time.Now().UTC().Add(-48 * time.Hour)
	endTime := time.Now().UTC()
	open := &entity.DeviceAssignment{ID: uuid.New(), DeviceID: deviceID, DateAssigned: started}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)

			mockFactory.EXPECT().NewAssignmentRepository().Return(mockAssignmentRepo)
			mockAssignmentRepo.EXPECT().FindOpenByDevice(ctx, deviceID).Return(open, nil)
			mockAssignmentRepo.EXPECT().Close(ctx, open.ID, endTime).Return(nil)

			return fn(mockFactory)
		})

	closed, err := fx.service.Unassign(ctx, deviceID, endTime)

	require.NoError(t, err)
	require.NotNil(t, closed.DateReturned)
	assert.Equal(t, endTime, *closed.DateReturned)
}

func TestAssignmentService_Unassign_NotAssigned(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)

			mockFactory.EXPECT().NewAssignmentRepository().Return(mockAssignmentRepo)
			mockAssignmentRepo.EXPECT().FindOpenByDevice(ctx, deviceID).Return(nil, repository.ErrAssignmentNotFound)

			return fn(mockFactory)
		})

	closed, err := fx.service.Unassign(ctx, deviceID, time.Now().UTC())

	assert.Error(t, err)
	assert.Nil(t, closed)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotAssigned))
}

func TestAssignmentService_Unassign_EndBeforeStart(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	started := time.Now().UTC()
	endTime := started.Add(-time.Hour)
	open := &entity.DeviceAssignment{ID: uuid.New(), DeviceID: deviceID, DateAssigned: started}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAssignmentRepo := mockRepo.NewMockAssignmentRepository(t)

			mockFactory.EXPECT().NewAssignmentRepository().Return(mockAssignmentRepo)
			mockAssignmentRepo.EXPECT().FindOpenByDevice(ctx, deviceID).Return(open, nil)

			return fn(mockFactory)
		})

	closed, err := fx.service.Unassign(ctx, deviceID, endTime)

	assert.Error(t, err)
	assert.Nil(t, closed)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAssignmentService_ResolveUser_Success(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	patientID := uuid.New()
	at := time.Now().UTC().Add(-time.Hour)
	assignment := &entity.DeviceAssignment{ID: uuid.New(), DeviceID: deviceID, PatientID: patientID}
	patient := &entity.User{ID: patientID, Roles: entity.Roles{entity.RolePatient}}

	fx.assignmentRepo.EXPECT().FindCovering(ctx, deviceID, at).Return(assignment, nil)
	fx.userRepo.EXPECT().FindByID(ctx, patientID).Return(patient, nil)

	resolved, err := fx.service.ResolveUser(ctx, deviceID, at)

	require.NoError(t, err)
	assert.Equal(t, patientID, resolved.ID)
}

func TestAssignmentService_ResolveUser_NoCoveringAssignment(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	at := time.Now().UTC()

	fx.assignmentRepo.EXPECT().FindCovering(ctx, deviceID, at).Return(nil, repository.ErrAssignmentNotFound)

	resolved, err := fx.service.ResolveUser(ctx, deviceID, at)

	assert.Error(t, err)
	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrAssignmentNotFound))
}

func TestAssignmentService_GetDeviceHistory_DefaultLimit(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	history := []*entity.DeviceAssignment{{ID: uuid.New(), DeviceID: deviceID}}

	fx.assignmentRepo.EXPECT().FindByDevice(ctx, deviceID, defaultAssignmentPageSize, 0).Return(history, nil)

	found, err := fx.service.GetDeviceHistory(ctx, deviceID, 0, 0)

	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestAssignmentService_GetPatientHistory_Success(t *testing.T) {
	fx := createTestAssignmentService(t)

	ctx := context.Background()
	patientID := uuid.New()
	history := []*entity.DeviceAssignment{{ID: uuid.New(), PatientID: patientID}}

	fx.assignmentRepo.EXPECT().FindByPatient(ctx, patientID, 10, 0).Return(history, nil)

	found, err := fx.service.GetPatientHistory(ctx, patientID, 10, 0)

	require.NoError(t, err)
	assert.Len(t, found, 1)
}
