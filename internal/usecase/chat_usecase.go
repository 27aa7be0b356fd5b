// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput defines the data required to append a chat message. The
// sender is added to the participant set when absent; a zero Timestamp is
// stamped server-side.
type SendMessageInput struct {
	SenderID     uuid.UUID
	Participants []uuid.UUID
	Text         string
	Attachments  []entity.MessageAttachment
	Timestamp    time.Time
}

// ChatQueryInput identifies a conversation and the time window to read. Both
// bounds are exclusive; zero bounds are open-ended.
type ChatQueryInput struct {
	RequesterID  uuid.UUID
	Participants []uuid.UUID
	From         time.Time
	To           time.Time
}

// ChatLatestInput identifies a conversation and how many trailing messages to
// read. Only messages strictly before Until are considered; a zero Until is
// unbounded. A non-positive limit falls back to the store's default page size.
type ChatLatestInput struct {
	RequesterID  uuid.UUID
	Participants []uuid.UUID
	Until        time.Time
	Limit        int
}

// ChatUsecase defines the interface for the participant-set-keyed chat log.
// Logs are append-only; messages are never edited or removed.
type ChatUsecase interface {
	// SendMessage appends a message to the conversation identified by the
	// participant set and publishes a message.logged event for push fanout.
	SendMessage(ctx context.Context, input *SendMessageInput) (*entity.Message, error)

	// QueryTimeRange retrieves a conversation's messages inside an exclusive
	// time window, oldest first. The requester must be a participant.
	QueryTimeRange(ctx context.Context, input *ChatQueryInput) ([]*entity.Message, error)

	// QueryLatest retrieves a conversation's most recent messages, returned
	// oldest first. The requester must be a participant.
	QueryLatest(ctx context.Context, input *ChatLatestInput) ([]*entity.Message, error)

	// GetUserChats retrieves the conversations a user participates in.
	GetUserChats(ctx context.Context, userID uuid.UUID) ([]*entity.ChatSummary, error)
}
