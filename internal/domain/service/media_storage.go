package service

import (
	"context"
	"io"
)

// MediaStorage defines the interface for the media blob store. Implementations
// write attachment bytes to a bucket and serve them back by key.
type MediaStorage interface {
	// Put streams an object into the bucket under the given key.
	Put(ctx context.Context, key, contentType string, r io.Reader) error

	// Get opens the object stored under key for reading.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for the object stored under key.
	URL(key string) string
}
