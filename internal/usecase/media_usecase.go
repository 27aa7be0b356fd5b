// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadMediaInput defines the data required to store an attachment's bytes.
type UploadMediaInput struct {
	UploaderID uuid.UUID
	Filename   string
	MimeType   string
	Size       int64
	Content    io.Reader
}

// MediaUsecase defines the interface for attachment media storage. Bytes land
// in the blob bucket; metadata is recorded and the public URL returned for
// use in message attachments.
type MediaUsecase interface {
	// UploadMedia stores the content and returns its metadata, URL included.
	UploadMedia(ctx context.Context, input *UploadMediaInput) (*entity.MediaFile, error)

	// DownloadMedia opens the stored content by media ID. The caller must
	// close the returned reader.
	DownloadMedia(ctx context.Context, mediaID string) (*entity.MediaFile, io.ReadCloser, error)
}
