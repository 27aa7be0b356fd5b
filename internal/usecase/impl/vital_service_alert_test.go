package impl

import (
	"context"
	"testing"
	"time"

	"medops/internal/domain/entity"
	"medops/internal/domain/repository"
	"medops/internal/domain/service"
	mockRepo "medops/internal/mocks/repository"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ingestAbnormalHeartRate(fx vitalServiceFixtures, t *testing.T, ctx context.Context, deviceID, patientID uuid.UUID) *usecase.IngestBatchInput {
	t.Helper()

	collected := time.Now().UTC().Add(-time.Minute)
	input := &usecase.IngestBatchInput{
		Readings: []*usecase.IngestReadingInput{
			{
				DeviceID:       deviceID,
				CollectionTime: collected,
				Type:           entity.VitalHeartRate,
				Measurement:    entity.Measurement{BPM: intPtr(160)},
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

	return input
}

func TestVitalService_IngestBatch_AbnormalReadingAlertsCareTeam(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	patientID := uuid.New()
	clinicianID := uuid.New()
	input := ingestAbnormalHeartRate(fx, t, ctx, deviceID, patientID)

	fx.careRepo.EXPECT().
		FindCareTeam(ctx, patientID).
		Return([]*entity.User{{ID: clinicianID, Roles: entity.Roles{entity.RoleClinician}}}, nil)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		RunAndReturn(func(ctx context.Context, notification *entity.Notification) error {
			assert.Equal(t, entity.NotificationVitalsAlert, notification.Kind)
			assert.Equal(t, patientID, notification.SubjectID)

			return nil
		})
	fx.eventPublisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		RunAndReturn(func(ctx context.Context, event *service.NotificationEvent) error {
			assert.Equal(t, service.EventVitalsRecorded, event.Type)
			assert.Equal(t, patientID.String(), event.SubjectID)
			assert.Equal(t, []string{clinicianID.String()}, event.RecipientIDs)

			return nil
		})

	output, err := fx.service.IngestBatch(ctx, input)

	require.NoError(t, err)
	assert.Len(t, output.Readings, 1)
}

func TestVitalService_IngestBatch_AbnormalReadingWithoutCareTeam(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	patientID := uuid.New()
	input := ingestAbnormalHeartRate(fx, t, ctx, deviceID, patientID)

	// No care team means nothing to fan out; ingestion still succeeds.
	fx.careRepo.EXPECT().FindCareTeam(ctx, patientID).Return(nil, nil)

	output, err := fx.service.IngestBatch(ctx, input)

	require.NoError(t, err)
	assert.Len(t, output.Readings, 1)
}

func TestVitalService_IngestBatch_AlertPublishFailureDoesNotFailIngest(t *testing.T) {
	fx := createTestVitalService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	patientID := uuid.New()
	input := ingestAbnormalHeartRate(fx, t, ctx, deviceID, patientID)

	fx.careRepo.EXPECT().
		FindCareTeam(ctx, patientID).
		Return([]*entity.User{{ID: uuid.New()}}, nil)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.eventPublisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.IngestBatch(ctx, input)

	require.NoError(t, err)
	assert.Len(t, output.Readings, 1)
}

func TestVitalService_IngestBatch_NormalReadingDoesNotAlert(t *testing.T) {
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
				Type:           entity.VitalOxygenSaturation,
				Measurement:    entity.Measurement{Percentage: float64Ptr(98.0)},
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
	assert.Len(t, output.Readings, 1)
}

func TestVitalService_IngestBatch_StorageFailureSkipsAlerts(t *testing.T) {
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
				Measurement:    entity.Measurement{BPM: intPtr(160)},
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
				Return(errors.New("insert failed"))

			return fn(mockFactory)
		})

	output, err := fx.service.IngestBatch(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
}
