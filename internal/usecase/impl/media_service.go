// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"medops/config"
	deliverycontext "medops/internal/delivery/context"
	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	"medops/internal/domain/service"
	"medops/internal/usecase"
	"medops/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultContentType = "application/octet-stream"

// mediaService implements the MediaUsecase interface. Bytes land in the blob
// bucket; metadata goes to the document store.
type mediaService struct {
	mediaRepo     repository.MediaRepository
	storage       service.MediaStorage
	maxUploadSize int64
	logger        *slog.Logger
}

// MediaServiceParams holds dependencies for mediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	MediaRepo repository.MediaRepository
	Storage   service.MediaStorage
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) (usecase.MediaUsecase, error) {
	if params.Config.Media == nil {
		return nil, errors.New("media configuration is required")
	}
	maxUploadSize, err := bytes.Parse(params.Config.Media.MaxUploadSize)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid max upload size %q", params.Config.Media.MaxUploadSize)
	}

	return &mediaService{
		mediaRepo:     params.MediaRepo,
		storage:       params.Storage,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
	}, nil
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// countingReader tracks how many bytes pass through a reader.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}

// UploadMedia stores the content and returns its metadata, URL included.
func (srv *mediaService) UploadMedia(ctx context.Context, input *usecase.UploadMediaInput) (*entity.MediaFile, error) {
	if input.Filename == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "filename is required")
	}
	if input.Size > srv.maxUploadSize {
		return nil, errors.Wrap(domainerrors.ErrMediaTooLarge, "declared size exceeds the upload limit")
	}

	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = defaultContentType
	}

	uploadedAt := time.Now().UTC()
	key := fmt.Sprintf("%s/%s%s", uploadedAt.Format("2006/01/02"), uuid.New(), path.Ext(input.Filename))

	// The stored byte count is the source of truth; the declared size is only
	// an early rejection. One extra byte past the limit trips the check.
	hasher := sha256.New()
	counter := &countingReader{r: io.LimitReader(input.Content, srv.maxUploadSize+1)}
	if err := srv.storage.Put(ctx, key, mimeType, io.TeeReader(counter, hasher)); err != nil {
		srv.log(ctx).Error("Failed to store media object", slog.Any("error", err), slog.Any("key", key))

		return nil, errors.Wrap(err, "failed to store media object")
	}
	if counter.n > srv.maxUploadSize {
		srv.deleteObject(ctx, key)

		return nil, errors.Wrap(domainerrors.ErrMediaTooLarge, "content exceeds the upload limit")
	}

	media := &entity.MediaFile{
		Key:        key,
		Filename:   input.Filename,
		MimeType:   mimeType,
		MediaType:  entity.MediaTypeFromMime(mimeType),
		Size:       counter.n,
		Checksum:   hex.EncodeToString(hasher.Sum(nil)),
		URL:        srv.storage.URL(key),
		UploadedBy: input.UploaderID,
		UploadedAt: uploadedAt,
	}
	if err := srv.mediaRepo.Create(ctx, media); err != nil {
		srv.deleteObject(ctx, key)
		srv.log(ctx).Error("Failed to record media metadata", slog.Any("error", err), slog.Any("key", key))

		return nil, errors.Wrap(err, "failed to record media metadata")
	}
	srv.log(ctx).Info("Media uploaded",
		slog.Any("mediaID", media.ID),
		slog.Any("uploadedBy", input.UploaderID),
		slog.String("size", util.FormatBytes(media.Size)))

	return media, nil
}

// DownloadMedia opens the stored content by media ID.
func (srv *mediaService) DownloadMedia(ctx context.Context, mediaID string) (*entity.MediaFile, io.ReadCloser, error) {
	media, err := srv.mediaRepo.FindByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrMediaNotFound, "media file not found")
		}

		return nil, nil, errors.Wrap(err, "failed to find media metadata")
	}

	reader, err := srv.storage.Get(ctx, media.Key)
	if err != nil {
		srv.log(ctx).Error("Failed to open media object", slog.Any("error", err), slog.Any("mediaID", mediaID))

		return nil, nil, errors.Wrap(err, "failed to open media object")
	}

	return media, reader, nil
}

// deleteObject removes an orphaned blob after a failed upload. Best effort.
func (srv *mediaService) deleteObject(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete orphaned media object", slog.Any("error", err), slog.Any("key", key))
	}
}
