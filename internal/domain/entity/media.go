// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaFile describes one uploaded media object. Bytes live in the blob
// bucket under Key; this record is the metadata handed out as an
// attachment URL.
type MediaFile struct {
	ID         string         `json:"id"`          // Identifier assigned by the metadata store.
	Key        string         `json:"-"`           // Object key inside the blob bucket.
	Filename   string         `json:"filename"`    // Original filename as uploaded.
	MimeType   string         `json:"mime_type"`   // Full MIME type of the content.
	MediaType  AttachmentType `json:"media_type"`  // Coarse media kind derived from the MIME type.
	Size       int64          `json:"size"`        // Content size in bytes.
	Checksum   string         `json:"checksum"`    // SHA-256 of the content, for integrity checks.
	URL        string         `json:"url"`         // Public URL used in message attachments.
	UploadedBy uuid.UUID      `json:"uploaded_by"` // The ID of the user who uploaded the file.
	UploadedAt time.Time      `json:"uploaded_at"` // Upload timestamp.
}

// MediaTypeFromMime derives the coarse attachment kind for a MIME type.
// Anything that is not video, audio, or image is a generic file.
func MediaTypeFromMime(mimeType string) AttachmentType {
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return AttachmentVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return AttachmentAudio
	case strings.HasPrefix(mimeType, "image/"):
		return AttachmentImage
	default:
		return AttachmentFile
	}
}
