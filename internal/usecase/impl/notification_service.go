// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	deliverycontext "medops/internal/delivery/context"
	"medops/internal/domain/entity"
	"medops/internal/domain/repository"
	"medops/internal/domain/service"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fcmBatchSize is the maximum number of tokens FCM accepts per multicast.
const fcmBatchSize = 500

const defaultNotificationPageSize = 50

// notificationService implements the NotificationUsecase interface. It is the
// consuming end of the notification topic: events published by the vitals and
// chat services land here through the alert worker.
type notificationService struct {
	pushService      service.NotificationService
	userDeviceRepo   repository.UserDeviceRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	PushService      service.NotificationService
	UserDeviceRepo   repository.UserDeviceRepository
	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		pushService:      params.PushService,
		userDeviceRepo:   params.UserDeviceRepo,
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessEvent fans an event out to the recipients' registered push devices.
// Malformed events return plain errors so the caller acknowledges and drops
// them; transient failures are wrapped as retryable.
func (srv *notificationService) ProcessEvent(ctx context.Context, event *service.NotificationEvent) error {
	notificationID, recipientIDs, err := srv.parseEventIDs(ctx, event)
	if err != nil {
		return err
	}

	if len(recipientIDs) == 0 {
		srv.log(ctx).Info("No recipients to notify", slog.String("notification_id", event.NotificationID))

		return nil
	}

	// The push provider is optional in dev deployments. Without one the event
	// is acknowledged and dropped; retrying would never succeed.
	if srv.pushService == nil {
		srv.log(ctx).Warn("Push delivery is not configured; skipping send",
			slog.String("notification_id", event.NotificationID))
		srv.saveResults(ctx, notificationID, nil, 0, 0, 0, event.NotificationID)

		return nil
	}

	devices, deviceMap, err := srv.getDevicesForUsers(ctx, recipientIDs, event.NotificationID)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		srv.saveResults(ctx, notificationID, nil, 0, 0, 0, event.NotificationID)

		return nil
	}

	data := map[string]string{
		"notification_id": event.NotificationID,
		"type":            event.Type,
		"subject_id":      event.SubjectID,
	}
	tokens := collectTokens(devices)

	totalSent, totalFailed, invalidTokens, notificationLogs := srv.sendBatchedNotifications(
		ctx, tokens, deviceMap, event.Title, event.Body, data, notificationID,
	)

	srv.cleanupInvalidTokens(ctx, invalidTokens)
	srv.saveResults(ctx, notificationID, notificationLogs, totalSent, totalFailed, len(invalidTokens), event.NotificationID)

	return nil
}

// parseEventIDs validates the IDs carried on the event. Unparseable recipient
// IDs are skipped with a warning rather than failing the whole fanout.
func (srv *notificationService) parseEventIDs(ctx context.Context, event *service.NotificationEvent) (uuid.UUID, []uuid.UUID, error) {
	notificationID, err := uuid.Parse(event.NotificationID)
	if err != nil {
		return uuid.Nil, nil, errors.Wrap(err, "event carries an invalid notification id")
	}

	recipientIDs := make([]uuid.UUID, 0, len(event.RecipientIDs))
	for _, idStr := range event.RecipientIDs {
		id, parseErr := uuid.Parse(idStr)
		if parseErr != nil {
			srv.log(ctx).Warn("Skipping invalid recipient id",
				slog.String("notification_id", event.NotificationID),
				slog.String("recipient_id", idStr))

			continue
		}
		recipientIDs = append(recipientIDs, id)
	}

	return notificationID, recipientIDs, nil
}

// getDevicesForUsers retrieves the active push devices for the given users.
func (srv *notificationService) getDevicesForUsers(ctx context.Context, userIDs []uuid.UUID, notificationID string) ([]*entity.UserDevice, map[string]*entity.UserDevice, error) {
	devices, err := srv.userDeviceRepo.FindActiveDevicesByUsers(ctx, userIDs)
	if err != nil {
		return nil, nil, usecase.NewRetryableError(errors.Wrap(err, "failed to find recipient devices"))
	}

	if len(devices) == 0 {
		srv.log(ctx).Info("No active devices found for recipients",
			slog.String("notification_id", notificationID))

		return nil, nil, nil
	}

	deviceMap := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		deviceMap[device.FCMToken] = device
	}

	return devices, deviceMap, nil
}

// collectTokens extracts FCM tokens from devices.
func collectTokens(devices []*entity.UserDevice) []string {
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}

// sendBatchedNotifications sends notifications in FCM-sized batches and
// collects per-device logs.
func (srv *notificationService) sendBatchedNotifications(ctx context.Context, tokens []string, deviceMap map[string]*entity.UserDevice, title, body string, data map[string]string, notificationID uuid.UUID) (sent, failed int, invalidTokens []string, logs []*entity.NotificationLog) {
	totalSent := 0
	totalFailed := 0
	var allInvalidTokens []string
	var notificationLogs []*entity.NotificationLog

	for idx := 0; idx < len(tokens); idx += fcmBatchSize {
		end := min(idx+fcmBatchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, batchInvalidTokens, sendErr := srv.pushService.SendBatchNotification(
			ctx, batch, title, body, data,
		)

		if sendErr != nil {
			srv.log(ctx).Error("Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			totalFailed += len(batch)

			for _, token := range batch {
				device, ok := deviceMap[token]
				if !ok || device == nil {
					continue
				}

				notificationLogs = append(notificationLogs, &entity.NotificationLog{
					ID:             uuid.New(),
					NotificationID: notificationID,
					UserID:         device.UserID,
					DeviceID:       device.ID,
					Status:         "failed",
					ErrorMessage:   fmt.Sprintf("batch send error: %v", sendErr),
					SentAt:         time.Now(),
				})
			}

			continue
		}

		totalSent += successCount
		totalFailed += failureCount
		allInvalidTokens = append(allInvalidTokens, batchInvalidTokens...)

		for _, token := range batch {
			device, ok := deviceMap[token]
			if !ok || device == nil {
				srv.log(ctx).Warn("Device not found for token",
					slog.String("token_prefix", token[:min(10, len(token))]))

				continue
			}

			status := "sent"
			errorMsg := ""
			if slices.Contains(batchInvalidTokens, token) {
				status = "failed"
				errorMsg = "invalid or unregistered token"
			}

			notificationLogs = append(notificationLogs, &entity.NotificationLog{
				ID:             uuid.New(),
				NotificationID: notificationID,
				UserID:         device.UserID,
				DeviceID:       device.ID,
				Status:         status,
				ErrorMessage:   errorMsg,
				SentAt:         time.Now(),
			})
		}
	}

	return totalSent, totalFailed, allInvalidTokens, notificationLogs
}

// cleanupInvalidTokens deactivates devices whose tokens FCM reports as no
// longer registered.
func (srv *notificationService) cleanupInvalidTokens(ctx context.Context, invalidTokens []string) {
	if len(invalidTokens) == 0 {
		return
	}

	if err := srv.userDeviceRepo.DeactivateByFCMTokens(ctx, invalidTokens); err != nil {
		srv.log(ctx).Warn("Failed to deactivate invalid devices",
			slog.Int("token_count", len(invalidTokens)),
			slog.Any("error", err),
		)
	}
}

// saveResults persists per-device logs and the fanout totals. The pushes are
// already out, so failures here are logged rather than retried.
func (srv *notificationService) saveResults(ctx context.Context, notificationID uuid.UUID, logs []*entity.NotificationLog, sent, failed, invalidTokensCount int, eventID string) {
	if len(logs) > 0 {
		if err := srv.notificationRepo.BatchCreateNotificationLogs(ctx, logs); err != nil {
			srv.log(ctx).Error("Failed to create notification logs", slog.Any("error", err))
		}
	}

	if err := srv.notificationRepo.UpdateNotificationStatus(ctx, notificationID, sent, failed); err != nil {
		srv.log(ctx).Error("Failed to update notification status", slog.Any("error", err))
	}

	srv.log(ctx).Info("Notification fanout completed",
		slog.String("notification_id", eventID),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", invalidTokensCount),
	)
}

// GetNotificationHistory retrieves the notifications concerning a user, newest first.
func (srv *notificationService) GetNotificationHistory(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}

	notifications, err := srv.notificationRepo.FindNotificationsBySubject(ctx, subjectID, limit, offset)
	if err != nil {
		srv.log(ctx).Error("Failed to get notification history", slog.Any("error", err), slog.Any("subjectID", subjectID))

		return nil, errors.Wrap(err, "failed to get notification history")
	}

	return notifications, nil
}
