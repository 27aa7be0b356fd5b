// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for chat log persistence.
var (
	// ErrChatNotFound is returned when no conversation exists for a participant set.
	ErrChatNotFound = errors.New("chat not found")
	// ErrMessageNotFound is returned when a message is not found.
	ErrMessageNotFound = errors.New("message not found")
)

// ChatLogRepository defines the interface for the append-only chat log store.
// Conversations are identified by their canonical participant set; callers
// pass participant IDs and the implementation derives the storage key.
type ChatLogRepository interface {
	// AppendMessage appends a message to the conversation for the given
	// participants, creating the conversation on first write. The stored
	// message ID is written back into msg.
	AppendMessage(ctx context.Context, participants []uuid.UUID, msg *entity.Message) error

	// QueryTimeRange retrieves messages with from < Timestamp < to, oldest
	// first. Both bounds are exclusive.
	QueryTimeRange(ctx context.Context, participants []uuid.UUID, from, to time.Time) ([]*entity.Message, error)

	// QueryLatest retrieves the most recent limit messages strictly before
	// until, returned oldest first. A zero until is unbounded; a non-positive
	// limit falls back to the default page size.
	QueryLatest(ctx context.Context, participants []uuid.UUID, until time.Time, limit int) ([]*entity.Message, error)

	// GetUserChats retrieves the conversations a user participates in.
	GetUserChats(ctx context.Context, userID uuid.UUID) ([]*entity.ChatSummary, error)
}
