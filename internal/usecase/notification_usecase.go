package usecase

import (
	"context"
	"errors"

	"medops/internal/domain/entity"
	"medops/internal/domain/service"

	"github.com/google/uuid"
)

// RetryableError marks a processing failure as transient. Consumers that see
// one should negatively acknowledge the event so the broker redelivers it.
type RetryableError struct {
	Err error
}

// Error implements the error interface.
func (e *RetryableError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError wraps an error to signal that redelivery may succeed.
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}

// IsRetryable reports whether an error carries the redelivery signal.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}

// NotificationUsecase defines the interface for push notification fanout.
// The alert worker consumes events from the notification topic and hands
// them here.
type NotificationUsecase interface {
	// ProcessEvent fans an event out to the recipients' registered push
	// devices, records the notification and per-device logs, and deactivates
	// tokens FCM reports as invalid. A returned error wrapped as retryable
	// signals the caller to request a redelivery.
	ProcessEvent(ctx context.Context, event *service.NotificationEvent) error

	// GetNotificationHistory retrieves the notifications concerning a user,
	// newest first.
	GetNotificationHistory(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}
