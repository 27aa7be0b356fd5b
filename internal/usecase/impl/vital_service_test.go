package impl

import (
	"context"
	"testing"
	"time"

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

// vitalServiceFixtures holds all test dependencies for vital service tests.
type vitalServiceFixtures struct {
	service          usecase.VitalUsecase
	txManager        *mockRepo.MockTransactionManager
	vitalRepo        *mockRepo.MockVitalRepository
	assignmentRepo   *mockRepo.MockAssignmentRepository
	careRepo         *mockRepo.MockCareRepository
	notificationRepo *mockRepo.MockNotificationRepository
	eventPublisher   *mockService.MockEventPublisher
}

func createTestVitalService(t *testing.T) vitalServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	vitalRepo := mockRepo.NewMockVitalRepository(t)
	assignmentRepo := mockRepo.NewMockAssignmentRepository(t)
	careRepo := mockRepo.NewMockCareRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)

	service := NewVitalService(VitalServiceParams{
		TxManager:        txManager,
		VitalRepo:        vitalRepo,
		AssignmentRepo:   assignmentRepo,
		CareRepo:         careRepo,
		NotificationRepo: notificationRepo,
		EventPublisher:   eventPublisher,
		Config:           newTestConfig(0),
		Logger:           newDiscardLogger(),
	})

	return vitalServiceFixtures{
		service:          service,
		txManager:        txManager,
		vitalRepo:        vitalRepo,
		assignmentRepo:   assignmentRepo,
		careRepo:         careRepo,
		notificationRepo: notificationRepo,
		eventPublisher:   eventPublisher,
	}
}

func errorCode(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return ""
}

func TestVitalService_IngestBatch_Success(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	patientID := uuid.New()
	collected := time.Now().UTC().Add(-time.Minute)
	input := &usecase.IngestBatchInput{
		Readings: []*usecase.IngestReadingInput{
			{
				DeviceID:       deviceID,
				CollectionTime: collected,
				Type:           entity.VitalHeartRate,
				Measurement:    entity.Measurement{BPM: intPtr(72)},
			},
		},
	}

	fx.assignmentRepo.EXPECT().
		FindCovering(ctx, deviceID, collected).
		Return(&entity.DeviceAssignment{ID: uuid.New(), DeviceID: deviceID, PatientID: patientID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockVitalRepo := mockRepo.NewMockVitalRepository(t)

			mockFactory.EXPECT().NewVitalRepository().Return(mockVitalRepo)
			mockVitalRepo.EXPECT().
				BatchCreate(ctx, mock.AnythingOfType("[]*entity.VitalReading")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.IngestBatch(ctx, input)

	require.NoError(t, err)
	require.Len(t, output.Readings, 1)
	assert.Equal(t, patientID, output.Readings[0].PatientID)
	assert.False(t, output.Readings[0].ReceivedTime.IsZero())
}

func TestVitalService_IngestBatch_Empty(t *testing.T) {
	fx := createTestVitalService(t)

	output, err := fx.service.IngestBatch(context.Background(), &usecase.IngestBatchInput{})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVitalService_IngestBatch_UnknownVitalType(t *testing.T) {
	fx := createTestVitalService(t)

	input := &usecase.IngestBatchInput{
		Readings: []*usecase.IngestReadingInput{
			{
				DeviceID:       uuid.New(),
				CollectionTime: time.Now().UTC(),
				Type:           entity.VitalType("mood"),
			},
		},
	}

	output, err := fx.service.IngestBatch(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, "INVALID_MEASUREMENT", errorCode(err))
}

func TestVitalService_IngestBatch_MeasurementFieldMismatch(t *testing.T) {
	fx := createTestVitalService(t)

	input := &usecase.IngestBatchInput{
		Readings: []*usecase.IngestReadingInput{
			{
				DeviceID:       uuid.New(),
				CollectionTime: time.Now().UTC(),
				Type:           entity.VitalHeartRate,
				Measurement:    entity.Measurement{DegC: float64Ptr(36.6)},
			},
		},
	}

	output, err := fx.service.IngestBatch(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, "INVALID_MEASUREMENT", errorCode(err))
}

func TestVitalService_IngestBatch_Unattributed(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	collected := time.Now().UTC().Add(-time.Minute)
	input := &usecase.IngestBatchInput{
		Readings: []*usecase.IngestReadingInput{
			{
				DeviceID:       deviceID,
				CollectionTime: collected,
				Type:           entity.VitalHeartRate,
				Measurement:    entity.Measurement{BPM: intPtr(72)},
			},
		},
	}

	fx.assignmentRepo.EXPECT().
		FindCovering(ctx, deviceID, collected).
		Return(nil, repository.ErrAssignmentNotFound)

	output, err := fx.service.IngestBatch(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, "READING_UNATTRIBUTED", errorCode(err))
}

func TestVitalService_IngestBatch_HintFallback(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	hintedPatient := uuid.New()
	collected := time.Now().UTC().Add(-time.Minute)
	input := &usecase.IngestBatchInput{
		Readings: []*usecase.IngestReadingInput{
			{
				DeviceID:       deviceID,
				CollectionTime: collected,
				Type:           entity.VitalHeartRate,
				Measurement:    entity.Measurement{BPM: intPtr(72)},
				AssignedUser:   &hintedPatient,
			},
		},
	}

	fx.assignmentRepo.EXPECT().
		FindCovering(ctx, deviceID, collected).
		Return(nil, repository.ErrAssignmentNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockVitalRepo := mockRepo.NewMockVitalRepository(t)

			mockFactory.EXPECT().NewVitalRepository().Return(mockVitalRepo)
			mockVitalRepo.EXPECT().
				BatchCreate(ctx, mock.AnythingOfType("[]*entity.VitalReading")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.IngestBatch(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, hintedPatient, output.Readings[0].PatientID)
}

func TestVitalService_IngestBatch_CoveringIntervalWinsOverHint(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	assignedPatient := uuid.New()
	hintedPatient := uuid.New()
	collected := time.Now().UTC().Add(-time.Minute)
	input := &usecase.IngestBatchInput{
		Readings: []*usecase.IngestReadingInput{
			{
				DeviceID:       deviceID,
				CollectionTime: collected,
				Type:           entity.VitalHeartRate,
				Measurement:    entity.Measurement{BPM: intPtr(72)},
				AssignedUser:   &hintedPatient,
			},
		},
	}

	fx.assignmentRepo.EXPECT().
		FindCovering(ctx, deviceID, collected).
		Return(&entity.DeviceAssignment{ID: uuid.New(), DeviceID: deviceID, PatientID: assignedPatient}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockVitalRepo := mockRepo.NewMockVitalRepository(t)

			mockFactory.EXPECT().NewVitalRepository().Return(mockVitalRepo)
			mockVitalRepo.EXPECT().
				BatchCreate(ctx, mock.AnythingOfType("[]*entity.VitalReading")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.IngestBatch(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, assignedPatient, output.Readings[0].PatientID)
}

func TestVitalService_QueryReadings_RequiresFilter(t *testing.T) {
	fx := createTestVitalService(t)

	readings, err := fx.service.QueryReadings(context.Background(), &usecase.QueryVitalsInput{})

	assert.Error(t, err)
	assert.Nil(t, readings)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVitalService_QueryReadings_ByPatientWithTypeFilter(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	patientID := uuid.New()
	vitalType := entity.VitalTemperature
	stored := []*entity.VitalReading{
		{ID: uuid.New(), PatientID: patientID, Type: entity.VitalTemperature},
		{ID: uuid.New(), PatientID: patientID, Type: entity.VitalHeartRate},
	}

	fx.vitalRepo.EXPECT().
		FindByPatient(ctx, patientID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), defaultVitalPageSize, 0).
		Return(stored, nil)

	readings, err := fx.service.QueryReadings(ctx, &usecase.QueryVitalsInput{
		RequesterID:    patientID,
		RequesterRoles: entity.Roles{entity.RolePatient},
		PatientID:      &patientID,
		Type:           &vitalType,
	})

	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, entity.VitalTemperature, readings[0].Type)
}

func TestVitalService_QueryReadings_ByDevice(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	from := time.Now().UTC().Add(-24 * time.Hour)
	to := time.Now().UTC()
	stored := []*entity.VitalReading{{ID: uuid.New(), DeviceID: deviceID, Type: entity.VitalWeight}}

	fx.vitalRepo.EXPECT().
		FindByDevice(ctx, deviceID, from, to, 10, 5).
		Return(stored, nil)

	readings, err := fx.service.QueryReadings(ctx, &usecase.QueryVitalsInput{
		RequesterID:    uuid.New(),
		RequesterRoles: entity.Roles{entity.RoleAdmin},
		DeviceID:       &deviceID,
		From:           from,
		To:             to,
		Limit:          10,
		Offset:         5,
	})

	require.NoError(t, err)
	assert.Len(t, readings, 1)
}

func TestVitalService_QueryReadings_PatientCannotReadAnotherPatient(t *testing.T) {
	fx := createTestVitalService(t)

	requesterID := uuid.New()
	otherPatientID := uuid.New()

	readings, err := fx.service.QueryReadings(context.Background(), &usecase.QueryVitalsInput{
		RequesterID:    requesterID,
		RequesterRoles: entity.Roles{entity.RolePatient},
		PatientID:      &otherPatientID,
	})

	assert.Error(t, err)
	assert.Nil(t, readings)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestVitalService_QueryReadings_DeviceQueryNarrowedToRequesterForPatients(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	deviceID := uuid.New()
	stored := []*entity.VitalReading{
		{ID: uuid.New(), DeviceID: deviceID, PatientID: requesterID, Type: entity.VitalHeartRate},
	}

	// A patient's device query resolves through their own readings, never the
	// device's full history.
	fx.vitalRepo.EXPECT().
		FindByPatient(ctx, requesterID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), defaultVitalPageSize, 0).
		Return(stored, nil)

	readings, err := fx.service.QueryReadings(ctx, &usecase.QueryVitalsInput{
		RequesterID:    requesterID,
		RequesterRoles: entity.Roles{entity.RolePatient},
		DeviceID:       &deviceID,
	})

	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, requesterID, readings[0].PatientID)
}

func TestVitalService_QueryReadings_ClinicianOutsideCareTeamForbidden(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	clinicianID := uuid.New()
	patientID := uuid.New()

	fx.careRepo.EXPECT().
		FindPatients(ctx, clinicianID).
		Return([]*entity.User{{ID: uuid.New()}}, nil)

	readings, err := fx.service.QueryReadings(ctx, &usecase.QueryVitalsInput{
		RequesterID:    clinicianID,
		RequesterRoles: entity.Roles{entity.RoleClinician},
		PatientID:      &patientID,
	})

	assert.Error(t, err)
	assert.Nil(t, readings)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestVitalService_QueryReadings_ClinicianCareTeamPatientAllowed(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	clinicianID := uuid.New()
	patientID := uuid.New()
	stored := []*entity.VitalReading{{ID: uuid.New(), PatientID: patientID, Type: entity.VitalGlucoseLevel}}

	fx.careRepo.EXPECT().
		FindPatients(ctx, clinicianID).
		Return([]*entity.User{{ID: patientID}}, nil)
	fx.vitalRepo.EXPECT().
		FindByPatient(ctx, patientID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), defaultVitalPageSize, 0).
		Return(stored, nil)

	readings, err := fx.service.QueryReadings(ctx, &usecase.QueryVitalsInput{
		RequesterID:    clinicianID,
		RequesterRoles: entity.Roles{entity.RoleClinician},
		PatientID:      &patientID,
	})

	require.NoError(t, err)
	assert.Len(t, readings, 1)
}

func TestVitalService_QueryReadings_ClinicianDeviceQueryFiltersToCareTeam(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	clinicianID := uuid.New()
	caredPatientID := uuid.New()
	deviceID := uuid.New()
	stored := []*entity.VitalReading{
		{ID: uuid.New(), DeviceID: deviceID, PatientID: caredPatientID, Type: entity.VitalWeight},
		{ID: uuid.New(), DeviceID: deviceID, PatientID: uuid.New(), Type: entity.VitalWeight},
	}

	fx.careRepo.EXPECT().
		FindPatients(ctx, clinicianID).
		Return([]*entity.User{{ID: caredPatientID}}, nil)
	fx.vitalRepo.EXPECT().
		FindByDevice(ctx, deviceID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), defaultVitalPageSize, 0).
		Return(stored, nil)

	readings, err := fx.service.QueryReadings(ctx, &usecase.QueryVitalsInput{
		RequesterID:    clinicianID,
		RequesterRoles: entity.Roles{entity.RoleClinician},
		DeviceID:       &deviceID,
	})

	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, caredPatientID, readings[0].PatientID)
}
