package service

import (
	"context"
)

// Event type names carried on the notification topic.
const (
	EventVitalsRecorded = "vitals.recorded"
	EventMessageLogged  = "message.logged"
)

// NotificationEvent represents an event to be processed by the alert worker.
// RecipientIDs is resolved by the publisher side so the worker only has to
// fan out to devices.
type NotificationEvent struct {
	RequestID      string   `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string   `json:"notification_id"`
	Type           string   `json:"type"`       // EventVitalsRecorded or EventMessageLogged
	SubjectID      string   `json:"subject_id"` // Patient (vitals) or sender (chat)
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	RecipientIDs   []string `json:"recipient_ids"` // Pre-resolved recipient user IDs
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
