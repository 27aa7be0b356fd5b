// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"medops/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrMediaNotFound is returned when a media file's metadata is not found.
var ErrMediaNotFound = errors.New("media file not found")

// MediaRepository defines the interface for media file metadata persistence.
// The bytes themselves live in the blob store; this tracks the records.
type MediaRepository interface {
	// Create persists metadata for a newly uploaded media file and writes the
	// assigned ID back into the entity.
	Create(ctx context.Context, media *entity.MediaFile) error

	// FindByID retrieves media metadata by its ID.
	FindByID(ctx context.Context, id string) (*entity.MediaFile, error)
}
