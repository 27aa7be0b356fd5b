package mongodb

import (
	"context"
	"time"

	"medops/internal/domain/entity"
	"medops/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mediaCollection holds metadata for uploaded attachment files. The bytes
// themselves live in the blob store.
const mediaCollection = "media_files"

// mediaRepository implements repository.MediaRepository on MongoDB.
type mediaRepository struct {
	media *mongo.Collection
}

// NewMediaRepository is the constructor for mediaRepository.
func NewMediaRepository(db *mongo.Database) repository.MediaRepository {
	return &mediaRepository{
		media: db.Collection(mediaCollection),
	}
}

// mediaDocument is the BSON shape of one media metadata record.
type mediaDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Key        string             `bson:"key"`
	Filename   string             `bson:"filename"`
	MimeType   string             `bson:"mime_type"`
	MediaType  string             `bson:"media_type"`
	Size       int64              `bson:"size"`
	Checksum   string             `bson:"checksum"`
	URL        string             `bson:"url"`
	UploadedBy string             `bson:"uploaded_by"`
	UploadedAt time.Time          `bson:"uploaded_at"`
}

// Create persists metadata for a newly uploaded media file.
func (repo *mediaRepository) Create(ctx context.Context, media *entity.MediaFile) error {
	doc := fromMediaDomain(media)

	result, err := repo.media.InsertOne(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to create media metadata")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		media.ID = oid.Hex()
	}

	return nil
}

// FindByID retrieves media metadata by its ID.
func (repo *mediaRepository) FindByID(ctx context.Context, id string) (*entity.MediaFile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrMediaNotFound
	}

	var doc mediaDocument
	if err := repo.media.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMediaNotFound
		}

		return nil, errors.Wrap(err, "failed to find media metadata")
	}

	return toMediaDomain(&doc)
}

// --- Mapper Functions ---

// toMediaDomain converts a stored media document to a domain MediaFile entity.
func toMediaDomain(doc *mediaDocument) (*entity.MediaFile, error) {
	uploadedBy, err := uuid.Parse(doc.UploadedBy)
	if err != nil {
		return nil, errors.Wrap(err, "invalid uploader ID in media metadata")
	}

	return &entity.MediaFile{
		ID:         doc.ID.Hex(),
		Key:        doc.Key,
		Filename:   doc.Filename,
		MimeType:   doc.MimeType,
		MediaType:  entity.AttachmentType(doc.MediaType),
		Size:       doc.Size,
		Checksum:   doc.Checksum,
		URL:        doc.URL,
		UploadedBy: uploadedBy,
		UploadedAt: doc.UploadedAt,
	}, nil
}

// fromMediaDomain converts a domain MediaFile entity to its stored document.
func fromMediaDomain(media *entity.MediaFile) *mediaDocument {
	return &mediaDocument{
		Key:        media.Key,
		Filename:   media.Filename,
		MimeType:   media.MimeType,
		MediaType:  media.MediaType.String(),
		Size:       media.Size,
		Checksum:   media.Checksum,
		URL:        media.URL,
		UploadedBy: media.UploadedBy.String(),
		UploadedAt: media.UploadedAt,
	}
}
