package impl

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"medops/config"
	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	mockRepo "medops/internal/mocks/repository"
	mockService "medops/internal/mocks/service"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mediaServiceFixtures holds all test dependencies for media service tests.
type mediaServiceFixtures struct {
	service   usecase.MediaUsecase
	mediaRepo *mockRepo.MockMediaRepository
	storage   *mockService.MockMediaStorage
}

func createTestMediaService(t *testing.T, maxUploadSize string) mediaServiceFixtures {
	mediaRepo := mockRepo.NewMockMediaRepository(t)
	storage := mockService.NewMockMediaStorage(t)

	service, err := NewMediaService(MediaServiceParams{
		MediaRepo: mediaRepo,
		Storage:   storage,
		Config: &config.Config{
			Media: &config.MediaConfig{
				BucketURL:     "mem://",
				PublicURL:     "https://media.example.com",
				MaxUploadSize: maxUploadSize,
			},
		},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	return mediaServiceFixtures{
		service:   service,
		mediaRepo: mediaRepo,
		storage:   storage,
	}
}

// drainingPut mocks a storage Put that consumes the content stream the way
// the real blob writer does.
func drainingPut(fx mediaServiceFixtures) {
	fx.storage.EXPECT().
		Put(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		RunAndReturn(func(ctx context.Context, key, contentType string, r io.Reader) error {
			_, err := io.Copy(io.Discard, r)

			return err
		})
}

func TestNewMediaService_InvalidUploadSize(t *testing.T) {
	_, err := NewMediaService(MediaServiceParams{
		MediaRepo: mockRepo.NewMockMediaRepository(t),
		Storage:   mockService.NewMockMediaStorage(t),
		Config:    &config.Config{Media: &config.MediaConfig{MaxUploadSize: "a lot"}},
		Logger:    newDiscardLogger(),
	})

	assert.Error(t, err)
}

func TestMediaService_UploadMedia_Success(t *testing.T) {
	fx := createTestMediaService(t, "1MB")

	ctx := context.Background()
	uploaderID := uuid.New()
	content := []byte("not actually a png")
	wantChecksum := sha256.Sum256(content)

	drainingPut(fx)
	fx.storage.EXPECT().URL(mock.AnythingOfType("string")).
		RunAndReturn(func(key string) string {
			return "https://media.example.com/" + key
		})
	fx.mediaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MediaFile")).
		RunAndReturn(func(ctx context.Context, media *entity.MediaFile) error {
			media.ID = "media-1"

			return nil
		})

	media, err := fx.service.UploadMedia(ctx, &usecase.UploadMediaInput{
		UploaderID: uploaderID,
		Filename:   "scan.png",
		MimeType:   "image/png",
		Size:       int64(len(content)),
		Content:    bytes.NewReader(content),
	})

	require.NoError(t, err)
	assert.Equal(t, "media-1", media.ID)
	assert.Equal(t, int64(len(content)), media.Size)
	assert.Equal(t, hex.EncodeToString(wantChecksum[:]), media.Checksum)
	assert.Equal(t, entity.AttachmentImage, media.MediaType)
	assert.Equal(t, uploaderID, media.UploadedBy)
	assert.Contains(t, media.URL, "https://media.example.com/")
	assert.True(t, strings.HasSuffix(media.Key, ".png"))
}

func TestMediaService_UploadMedia_DefaultContentType(t *testing.T) {
	fx := createTestMediaService(t, "1MB")

	ctx := context.Background()
	content := []byte("plain bytes")

	fx.storage.EXPECT().
		Put(mock.Anything, mock.AnythingOfType("string"), defaultContentType, mock.Anything).
		RunAndReturn(func(ctx context.Context, key, contentType string, r io.Reader) error {
			_, err := io.Copy(io.Discard, r)

			return err
		})
	fx.storage.EXPECT().URL(mock.AnythingOfType("string")).Return("https://media.example.com/x")
	fx.mediaRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.MediaFile")).Return(nil)

	media, err := fx.service.UploadMedia(ctx, &usecase.UploadMediaInput{
		UploaderID: uuid.New(),
		Filename:   "notes.bin",
		Size:       int64(len(content)),
		Content:    bytes.NewReader(content),
	})

	require.NoError(t, err)
	assert.Equal(t, defaultContentType, media.MimeType)
	assert.Equal(t, entity.AttachmentFile, media.MediaType)
}

func TestMediaService_UploadMedia_MissingFilename(t *testing.T) {
	fx := createTestMediaService(t, "1MB")

	media, err := fx.service.UploadMedia(context.Background(), &usecase.UploadMediaInput{
		UploaderID: uuid.New(),
		Content:    strings.NewReader("x"),
	})

	assert.Error(t, err)
	assert.Nil(t, media)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMediaService_UploadMedia_DeclaredSizeTooLarge(t *testing.T) {
	fx := createTestMediaService(t, "1KB")

	media, err := fx.service.UploadMedia(context.Background(), &usecase.UploadMediaInput{
		UploaderID: uuid.New(),
		Filename:   "huge.mp4",
		Size:       10 << 20,
		Content:    strings.NewReader("irrelevant"),
	})

	assert.Error(t, err)
	assert.Nil(t, media)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaTooLarge))
}

func TestMediaService_UploadMedia_StreamedSizeTooLarge(t *testing.T) {
	fx := createTestMediaService(t, "1KB")

	ctx := context.Background()
	// Declared size lies; the streamed content is over the limit. The stored
	// object is rolled back.
	content := bytes.Repeat([]byte("a"), 4096)

	drainingPut(fx)
	fx.storage.EXPECT().Delete(ctx, mock.AnythingOfType("string")).Return(nil)

	media, err := fx.service.UploadMedia(ctx, &usecase.UploadMediaInput{
		UploaderID: uuid.New(),
		Filename:   "sneaky.bin",
		Size:       10,
		Content:    bytes.NewReader(content),
	})

	assert.Error(t, err)
	assert.Nil(t, media)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaTooLarge))
}

func TestMediaService_UploadMedia_MetadataFailureRollsBackBlob(t *testing.T) {
	fx := createTestMediaService(t, "1MB")

	ctx := context.Background()
	content := []byte("payload")

	drainingPut(fx)
	fx.storage.EXPECT().URL(mock.AnythingOfType("string")).Return("https://media.example.com/x")
	fx.mediaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MediaFile")).
		Return(errors.New("document store unavailable"))
	fx.storage.EXPECT().Delete(ctx, mock.AnythingOfType("string")).Return(nil)

	media, err := fx.service.UploadMedia(ctx, &usecase.UploadMediaInput{
		UploaderID: uuid.New(),
		Filename:   "scan.png",
		MimeType:   "image/png",
		Size:       int64(len(content)),
		Content:    bytes.NewReader(content),
	})

	assert.Error(t, err)
	assert.Nil(t, media)
	assert.Contains(t, err.Error(), "failed to record media metadata")
}

func TestMediaService_DownloadMedia_Success(t *testing.T) {
	fx := createTestMediaService(t, "1MB")

	ctx := context.Background()
	stored := &entity.MediaFile{ID: "media-1", Key: "2026/08/24/abc.png", MimeType: "image/png"}

	fx.mediaRepo.EXPECT().FindByID(ctx, "media-1").Return(stored, nil)
	fx.storage.EXPECT().Get(ctx, stored.Key).Return(io.NopCloser(strings.NewReader("bytes")), nil)

	media, reader, err := fx.service.DownloadMedia(ctx, "media-1")

	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(content))
	assert.Equal(t, "media-1", media.ID)
}

func TestMediaService_DownloadMedia_NotFound(t *testing.T) {
	fx := createTestMediaService(t, "1MB")

	ctx := context.Background()

	fx.mediaRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrMediaNotFound)

	media, reader, err := fx.service.DownloadMedia(ctx, "missing")

	assert.Error(t, err)
	assert.Nil(t, media)
	assert.Nil(t, reader)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaNotFound))
}
