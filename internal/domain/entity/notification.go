// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind identifies what triggered a push notification.
type NotificationKind string

const (
	// NotificationVitalsAlert is sent to the care team when an abnormal reading arrives.
	NotificationVitalsAlert NotificationKind = "vitals_alert"
	// NotificationChatMessage is sent to conversation members when a message is logged.
	NotificationChatMessage NotificationKind = "chat_message"
)

// String returns the string representation of the NotificationKind.
func (k NotificationKind) String() string {
	return string(k)
}

// Notification represents one fanout performed by the alert worker: a single
// triggering event delivered to some number of user devices.
type Notification struct {
	ID          uuid.UUID        `json:"id"`           // The Global Unique Identifier (GUID) for the notification.
	Kind        NotificationKind `json:"kind"`         // What triggered the fanout.
	SubjectID   uuid.UUID        `json:"subject_id"`   // The patient (vitals alert) or sender (chat message) the event concerns.
	Title       string           `json:"title"`        // The push title shown to recipients.
	Body        string           `json:"body"`         // The push body shown to recipients.
	TotalSent   int              `json:"total_sent"`   // Number of notifications successfully sent.
	TotalFailed int              `json:"total_failed"` // Number of notifications that failed to send.
	CreatedAt   time.Time        `json:"created_at"`   // Timestamp of when this record was created.
}

// NotificationLog represents a log entry for a single notification sent to a user device.
type NotificationLog struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the log entry.
	NotificationID uuid.UUID `json:"notification_id"` // The ID of the notification this log belongs to.
	UserID         uuid.UUID `json:"user_id"`         // The ID of the user who received the notification.
	DeviceID       uuid.UUID `json:"device_id"`       // The ID of the user device that received the notification.
	Status         string    `json:"status"`          // The status of the notification (sent, failed).
	FCMMessageID   string    `json:"fcm_message_id"`  // The Firebase Cloud Messaging message ID.
	ErrorMessage   string    `json:"error_message"`   // Error message if the notification failed.
	SentAt         time.Time `json:"sent_at"`         // Timestamp of when the notification was sent.
}
