package mongodb

import (
	"context"
	"slices"
	"time"

	"medops/internal/domain/entity"
	"medops/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// chatsIndexCollection records which users participate in which conversation.
const chatsIndexCollection = "chats_index"

// defaultLatestLimit is the page size for QueryLatest when the caller does
// not specify one.
const defaultLatestLimit = 10

// chatLogRepository implements repository.ChatLogRepository on MongoDB. Each
// conversation owns a collection named by its canonical chat key; the
// chats_index collection makes conversations discoverable by participant.
type chatLogRepository struct {
	db *mongo.Database
}

// NewChatLogRepository is the constructor for chatLogRepository.
func NewChatLogRepository(db *mongo.Database) repository.ChatLogRepository {
	return &chatLogRepository{db: db}
}

// ensureIndexes creates the chats_index indexes. Per-conversation collections
// are created implicitly on first insert. Index creation is idempotent, so
// this runs on every startup.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	// Uniqueness lives on chat_id: one index entry per conversation. The
	// user_ids index is multikey, so a unique constraint there would forbid
	// a user from appearing in two conversations.
	_, err := db.Collection(chatsIndexCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "chat_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_ids", Value: 1}},
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create chats_index indexes")
	}

	return nil
}

// messageDocument is the BSON shape of one stored message.
type messageDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	SchemaVersion int                  `bson:"schema_version"`
	Timestamp     time.Time            `bson:"timestamp"`
	FromUser      string               `bson:"from_user"`
	Text          string               `bson:"text"`
	Attachments   []attachmentDocument `bson:"attachments,omitempty"`
}

type attachmentDocument struct {
	Type          string `bson:"type"`
	URL           string `bson:"url"`
	SchemaVersion int    `bson:"schema_version"`
}

// chatDocument is the BSON shape of one conversation index entry.
type chatDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ChatID        string             `bson:"chat_id"`
	UserIDs       []string           `bson:"user_ids"`
	CreatedAt     time.Time          `bson:"created_at"`
	LastMessageAt time.Time          `bson:"last_message_at"`
}

// AppendMessage appends a message to the conversation's collection, creating
// the conversation index entry on first write.
func (repo *chatLogRepository) AppendMessage(ctx context.Context, participants []uuid.UUID, msg *entity.Message) error {
	canonical := entity.CanonicalParticipants(participants)
	key := entity.ChatKey(canonical)

	doc := fromMessageDomain(msg)
	result, err := repo.db.Collection(key).InsertOne(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to append chat message")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		msg.ID = oid.Hex()
	}

	participantStrings := make([]string, len(canonical))
	for i, id := range canonical {
		participantStrings[i] = id.String()
	}

	// Upsert the conversation index entry so GetUserChats can list it.
	update := bson.M{
		"$setOnInsert": bson.M{
			"chat_id":    key,
			"user_ids":   participantStrings,
			"created_at": msg.Timestamp,
		},
		"$max": bson.M{"last_message_at": msg.Timestamp},
	}
	filter := bson.M{"chat_id": key}
	if _, err := repo.db.Collection(chatsIndexCollection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return errors.Wrap(err, "failed to upsert chat index entry")
	}

	return nil
}

// chatWindowFilter builds the exclusive timestamp clause for a query window.
// Zero bounds are open-ended and add no constraint.
func chatWindowFilter(from, to time.Time) bson.M {
	window := bson.M{}
	if !from.IsZero() {
		window["$gt"] = from
	}
	if !to.IsZero() {
		window["$lt"] = to
	}
	if len(window) == 0 {
		return bson.M{}
	}

	return bson.M{"timestamp": window}
}

// QueryTimeRange retrieves messages with from < Timestamp < to, oldest first.
func (repo *chatLogRepository) QueryTimeRange(ctx context.Context, participants []uuid.UUID, from, to time.Time) ([]*entity.Message, error) {
	key := entity.ChatKey(participants)

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := repo.db.Collection(key).Find(ctx, chatWindowFilter(from, to), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query chat messages by time range")
	}

	return decodeMessages(ctx, cursor)
}

// QueryLatest retrieves the most recent limit messages strictly before until,
// returned oldest first. A zero until is unbounded.
func (repo *chatLogRepository) QueryLatest(ctx context.Context, participants []uuid.UUID, until time.Time, limit int) ([]*entity.Message, error) {
	key := entity.ChatKey(participants)

	if limit <= 0 {
		limit = defaultLatestLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := repo.db.Collection(key).Find(ctx, chatWindowFilter(time.Time{}, until), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query latest chat messages")
	}

	messages, err := decodeMessages(ctx, cursor)
	if err != nil {
		return nil, err
	}

	// The query sorts newest first; callers expect chronological order.
	slices.Reverse(messages)

	return messages, nil
}

// GetUserChats retrieves the conversations a user participates in.
func (repo *chatLogRepository) GetUserChats(ctx context.Context, userID uuid.UUID) ([]*entity.ChatSummary, error) {
	filter := bson.M{"user_ids": userID.String()}
	opts := options.Find().SetSort(bson.D{{Key: "last_message_at", Value: -1}})

	cursor, err := repo.db.Collection(chatsIndexCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query user chats")
	}
	defer cursor.Close(ctx)

	summaries := make([]*entity.ChatSummary, 0)
	for cursor.Next(ctx) {
		var doc chatDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode chat index entry")
		}

		summary, err := toChatSummaryDomain(&doc)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate user chats")
	}

	return summaries, nil
}

func decodeMessages(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Message, error) {
	defer cursor.Close(ctx)

	messages := make([]*entity.Message, 0)
	for cursor.Next(ctx) {
		var doc messageDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode chat message")
		}

		msg, err := toMessageDomain(&doc)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate chat messages")
	}

	return messages, nil
}

// --- Mapper Functions ---

// toMessageDomain converts a stored message document to a domain Message entity.
func toMessageDomain(doc *messageDocument) (*entity.Message, error) {
	fromUser, err := uuid.Parse(doc.FromUser)
	if err != nil {
		return nil, errors.Wrap(err, "invalid sender ID in stored message")
	}

	attachments := make([]entity.MessageAttachment, 0, len(doc.Attachments))
	for _, att := range doc.Attachments {
		attachments = append(attachments, entity.MessageAttachment{
			Type: entity.AttachmentType(att.Type),
			URL:  att.URL,
		})
	}

	return &entity.Message{
		ID:            doc.ID.Hex(),
		SchemaVersion: doc.SchemaVersion,
		Timestamp:     doc.Timestamp,
		FromUser:      fromUser,
		Text:          doc.Text,
		Attachments:   attachments,
	}, nil
}

// fromMessageDomain converts a domain Message entity to its stored document.
// The schema version is stamped on write.
func fromMessageDomain(msg *entity.Message) *messageDocument {
	attachments := make([]attachmentDocument, 0, len(msg.Attachments))
	for _, att := range msg.Attachments {
		attachments = append(attachments, attachmentDocument{
			Type:          att.Type.String(),
			URL:           att.URL,
			SchemaVersion: entity.AttachmentSchemaVersion,
		})
	}

	return &messageDocument{
		SchemaVersion: entity.MessageSchemaVersion,
		Timestamp:     msg.Timestamp,
		FromUser:      msg.FromUser.String(),
		Text:          msg.Text,
		Attachments:   attachments,
	}
}

// toChatSummaryDomain converts a chat index document to a domain ChatSummary.
func toChatSummaryDomain(doc *chatDocument) (*entity.ChatSummary, error) {
	participants := make([]uuid.UUID, 0, len(doc.UserIDs))
	for _, s := range doc.UserIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errors.Wrap(err, "invalid participant ID in chat index")
		}
		participants = append(participants, id)
	}

	return &entity.ChatSummary{
		Key:          doc.ChatID,
		Participants: participants,
		CreatedAt:    doc.CreatedAt,
		LastMessage:  doc.LastMessageAt,
	}, nil
}
