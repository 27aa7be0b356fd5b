// Package entity contains the core business objects of the project.
package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Schema versions stamped on stored chat documents. Bump only with a data
// migration plan; existing collections are keyed by the current hashing.
const (
	MessageSchemaVersion    = 1
	AttachmentSchemaVersion = 1
)

// AttachmentType identifies the media kind an attachment references.
type AttachmentType string

const (
	// AttachmentVideo is a video attachment.
	AttachmentVideo AttachmentType = "video"
	// AttachmentAudio is an audio attachment.
	AttachmentAudio AttachmentType = "audio"
	// AttachmentImage is an image attachment.
	AttachmentImage AttachmentType = "image"
	// AttachmentFile is a generic file attachment.
	AttachmentFile AttachmentType = "file"
)

// String returns the string representation of the AttachmentType.
func (t AttachmentType) String() string {
	return string(t)
}

// IsValid checks if the AttachmentType is a valid value.
func (t AttachmentType) IsValid() bool {
	switch t {
	case AttachmentVideo, AttachmentAudio, AttachmentImage, AttachmentFile:
		return true
	default:
		return false
	}
}

// MessageAttachment is metadata referencing externally stored media linked
// to a message. The chat log stores only the reference, never the bytes.
type MessageAttachment struct {
	Type AttachmentType `json:"type"` // The media kind. One of video, audio, image, file.
	URL  string         `json:"url"`  // The URL of the stored media. Never empty.
}

// Message is a single chat message document. Messages are append-only; once
// logged they are never edited or removed.
type Message struct {
	ID            string              `json:"id"`             // Identifier assigned by the store on append.
	SchemaVersion int                 `json:"schema_version"` // Document format version, stamped on write.
	Timestamp     time.Time           `json:"timestamp"`      // When the message was sent, in UTC.
	FromUser      uuid.UUID           `json:"from_user"`      // The ID of the user who sent the message.
	Text          string              `json:"text"`           // The content of the message.
	Attachments   []MessageAttachment `json:"attachments"`    // Ordered attachments sent with the message. May be empty.
}

// ChatSummary describes one conversation a user participates in, as listed
// by the conversation index.
type ChatSummary struct {
	Key          string      `json:"key"`             // Storage key derived from the participant set.
	Participants []uuid.UUID `json:"participants"`    // Canonical participant set.
	CreatedAt    time.Time   `json:"created_at"`      // When the conversation was first written.
	LastMessage  time.Time   `json:"last_message_at"` // Timestamp of the most recent message.
}

// CanonicalParticipants deduplicates and sorts a participant list. The
// resulting slice is the canonical form of the conversation's identity: two
// participant lists describe the same conversation exactly when their
// canonical forms are equal.
func CanonicalParticipants(userIDs []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(userIDs))
	out := make([]uuid.UUID, 0, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	slices.SortFunc(out, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})

	return out
}

// ChatKey derives the storage key for a participant set: the SHA-256 digest
// of the concatenated canonical participant IDs, prefixed with "chat_".
// Changing this derivation requires migrating every stored conversation.
func ChatKey(userIDs []uuid.UUID) string {
	digest := sha256.New()
	for _, id := range CanonicalParticipants(userIDs) {
		digest.Write([]byte(id.String()))
	}

	return "chat_" + hex.EncodeToString(digest.Sum(nil))
}
