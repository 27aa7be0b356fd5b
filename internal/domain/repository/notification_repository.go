// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrNotificationLogNotFound is returned when a notification log is not found.
	ErrNotificationLogNotFound = errors.New("notification log not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification fanout record.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsBySubject retrieves notifications concerning a user, newest first.
	FindNotificationsBySubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// UpdateNotificationStatus updates the total sent and failed counts for a notification.
	UpdateNotificationStatus(ctx context.Context, id uuid.UUID, totalSent, totalFailed int) error

	// CreateNotificationLog persists a single notification log entry.
	CreateNotificationLog(ctx context.Context, log *entity.NotificationLog) error

	// BatchCreateNotificationLogs persists multiple notification log entries in a batch for better performance.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error
}
