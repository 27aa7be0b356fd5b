// Package storage implements the media blob store on top of gocloud.dev
// buckets, so local development (file://) and production (gs://) share one
// code path.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"medops/config"
	"medops/internal/domain/lifecycle"
	"medops/internal/domain/service"
	"medops/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobStorage implements the service.MediaStorage interface.
type blobStorage struct {
	bucket    *blob.Bucket
	publicURL string
}

// New opens the configured bucket and manages its lifetime through fx.
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Media

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			// Accessibility check; the key does not need to exist.
			checkCtx, checkCancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer checkCancel()

			if _, err := bucket.Exists(checkCtx, ".healthcheck"); err != nil {
				return errors.Wrap(err, "media bucket is not accessible")
			}

			params.Logger.Info("media bucket opened", slog.String("bucket", cfg.BucketURL))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:    bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// Put streams an object into the bucket under the given key.
func (s *blobStorage) Put(ctx context.Context, key, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		// Close aborts the write when Copy failed.
		_ = w.Close()

		return errors.Wrap(err, "failed to write media object")
	}

	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed to finalize media object")
	}

	return nil
}

// Get opens the object stored under key for reading.
func (s *blobStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media object")
	}

	return r, nil
}

// Delete removes the object stored under key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete media object")
	}

	return nil
}

// URL returns the public URL for the object stored under key.
func (s *blobStorage) URL(key string) string {
	return s.publicURL + "/" + key
}
