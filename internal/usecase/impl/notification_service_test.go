package impl

import (
	"context"
	"testing"

	"medops/internal/domain/entity"
	"medops/internal/domain/service"
	mockRepo "medops/internal/mocks/repository"
	mockService "medops/internal/mocks/service"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for fanout tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	pushService      *mockService.MockNotificationService
	userDeviceRepo   *mockRepo.MockUserDeviceRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	pushService := mockService.NewMockNotificationService(t)
	userDeviceRepo := mockRepo.NewMockUserDeviceRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	service := NewNotificationService(NotificationServiceParams{
		PushService:      pushService,
		UserDeviceRepo:   userDeviceRepo,
		NotificationRepo: notificationRepo,
		Logger:           newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:          service,
		pushService:      pushService,
		userDeviceRepo:   userDeviceRepo,
		notificationRepo: notificationRepo,
	}
}

func newTestEvent(notificationID uuid.UUID, recipientIDs ...uuid.UUID) *service.NotificationEvent {
	recipients := make([]string, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		recipients = append(recipients, id.String())
	}

	return &service.NotificationEvent{
		RequestID:      uuid.New().String(),
		NotificationID: notificationID.String(),
		Type:           service.EventVitalsRecorded,
		SubjectID:      uuid.New().String(),
		Title:          "Abnormal vital reading",
		Body:           "An abnormal heart_rate reading was recorded.",
		RecipientIDs:   recipients,
	}
}

func TestNotificationService_ProcessEvent_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	recipientID := uuid.New()
	event := newTestEvent(notificationID, recipientID)
	device := &entity.UserDevice{ID: uuid.New(), UserID: recipientID, FCMToken: "token-1", IsActive: true}

	fx.userDeviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{device}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, event.Title, event.Body, mock.AnythingOfType("map[string]string")).
		Return(1, 0, nil, nil)
	fx.notificationRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.AnythingOfType("[]*entity.NotificationLog")).
		RunAndReturn(func(ctx context.Context, logs []*entity.NotificationLog) error {
			require.Len(t, logs, 1)
			assert.Equal(t, notificationID, logs[0].NotificationID)
			assert.Equal(t, "sent", logs[0].Status)

			return nil
		})
	fx.notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, notificationID, 1, 0).
		Return(nil)

	err := fx.service.ProcessEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_ProcessEvent_InvalidNotificationID(t *testing.T) {
	fx := createTestNotificationService(t)

	event := newTestEvent(uuid.New(), uuid.New())
	event.NotificationID = "not-a-uuid"

	err := fx.service.ProcessEvent(context.Background(), event)

	// A malformed event must not be retried.
	assert.Error(t, err)
	assert.False(t, usecase.IsRetryable(err))
}

func TestNotificationService_ProcessEvent_InvalidRecipientSkipped(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	recipientID := uuid.New()
	event := newTestEvent(notificationID, recipientID)
	event.RecipientIDs = append(event.RecipientIDs, "not-a-uuid")
	device := &entity.UserDevice{ID: uuid.New(), UserID: recipientID, FCMToken: "token-1", IsActive: true}

	fx.userDeviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{device}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, event.Title, event.Body, mock.AnythingOfType("map[string]string")).
		Return(1, 0, nil, nil)
	fx.notificationRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.AnythingOfType("[]*entity.NotificationLog")).
		Return(nil)
	fx.notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, notificationID, 1, 0).
		Return(nil)

	err := fx.service.ProcessEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_ProcessEvent_NoRecipients(t *testing.T) {
	fx := createTestNotificationService(t)

	event := newTestEvent(uuid.New())

	err := fx.service.ProcessEvent(context.Background(), event)

	require.NoError(t, err)
}

func TestNotificationService_ProcessEvent_NoActiveDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	recipientID := uuid.New()
	event := newTestEvent(notificationID, recipientID)

	fx.userDeviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return(nil, nil)
	fx.notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, notificationID, 0, 0).
		Return(nil)

	err := fx.service.ProcessEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_ProcessEvent_DeviceLookupFailureIsRetryable(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	event := newTestEvent(uuid.New(), recipientID)

	fx.userDeviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return(nil, errors.New("database unavailable"))

	err := fx.service.ProcessEvent(ctx, event)

	assert.Error(t, err)
	assert.True(t, usecase.IsRetryable(err))
}

func TestNotificationService_ProcessEvent_InvalidTokensDeactivated(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	recipientID := uuid.New()
	event := newTestEvent(notificationID, recipientID)
	goodDevice := &entity.UserDevice{ID: uuid.New(), UserID: recipientID, FCMToken: "token-good", IsActive: true}
	staleDevice := &entity.UserDevice{ID: uuid.New(), UserID: recipientID, FCMToken: "token-stale", IsActive: true}

	fx.userDeviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{goodDevice, staleDevice}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-good", "token-stale"}, event.Title, event.Body, mock.AnythingOfType("map[string]string")).
		Return(1, 1, []string{"token-stale"}, nil)
	fx.userDeviceRepo.EXPECT().
		DeactivateByFCMTokens(ctx, []string{"token-stale"}).
		Return(nil)
	fx.notificationRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.AnythingOfType("[]*entity.NotificationLog")).
		RunAndReturn(func(ctx context.Context, logs []*entity.NotificationLog) error {
			require.Len(t, logs, 2)
			statuses := map[uuid.UUID]string{}
			for _, log := range logs {
				statuses[log.DeviceID] = log.Status
			}
			assert.Equal(t, "sent", statuses[goodDevice.ID])
			assert.Equal(t, "failed", statuses[staleDevice.ID])

			return nil
		})
	fx.notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, notificationID, 1, 1).
		Return(nil)

	err := fx.service.ProcessEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_ProcessEvent_BatchSendFailureLogged(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()
	recipientID := uuid.New()
	event := newTestEvent(notificationID, recipientID)
	device := &entity.UserDevice{ID: uuid.New(), UserID: recipientID, FCMToken: "token-1", IsActive: true}

	fx.userDeviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{recipientID}).
		Return([]*entity.UserDevice{device}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, event.Title, event.Body, mock.AnythingOfType("map[string]string")).
		Return(0, 0, nil, errors.New("fcm unavailable"))
	fx.notificationRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.AnythingOfType("[]*entity.NotificationLog")).
		RunAndReturn(func(ctx context.Context, logs []*entity.NotificationLog) error {
			require.Len(t, logs, 1)
			assert.Equal(t, "failed", logs[0].Status)
			assert.Contains(t, logs[0].ErrorMessage, "batch send error")

			return nil
		})
	fx.notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, notificationID, 0, 1).
		Return(nil)

	err := fx.service.ProcessEvent(ctx, event)

	// The whole batch failing is absorbed into per-device logs, not retried.
	require.NoError(t, err)
}

func TestNotificationService_GetNotificationHistory_DefaultLimit(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	subjectID := uuid.New()
	notifications := []*entity.Notification{{ID: uuid.New(), SubjectID: subjectID}}

	fx.notificationRepo.EXPECT().
		FindNotificationsBySubject(ctx, subjectID, defaultNotificationPageSize, 0).
		Return(notifications, nil)

	found, err := fx.service.GetNotificationHistory(ctx, subjectID, 0, 0)

	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestNotificationService_ProcessEvent_PushProviderNotConfigured(t *testing.T) {
	userDeviceRepo := mockRepo.NewMockUserDeviceRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	// The worker binary provides a nil push service when Firebase is absent.
	svc := NewNotificationService(NotificationServiceParams{
		PushService:      nil,
		UserDeviceRepo:   userDeviceRepo,
		NotificationRepo: notificationRepo,
		Logger:           newDiscardLogger(),
	})

	ctx := context.Background()
	notificationID := uuid.New()
	event := newTestEvent(notificationID, uuid.New())

	notificationRepo.EXPECT().
		UpdateNotificationStatus(ctx, notificationID, 0, 0).
		Return(nil)

	err := svc.ProcessEvent(ctx, event)

	// Acknowledged and dropped: retrying without a provider cannot succeed.
	require.NoError(t, err)
}
