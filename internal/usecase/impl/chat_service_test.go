package impl

import (
	"context"
	"testing"
	"time"

	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	"medops/internal/domain/service"
	mockRepo "medops/internal/mocks/repository"
	mockService "medops/internal/mocks/service"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// chatServiceFixtures holds all test dependencies for chat service tests.
type chatServiceFixtures struct {
	service          usecase.ChatUsecase
	chatLogRepo      *mockRepo.MockChatLogRepository
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	eventPublisher   *mockService.MockEventPublisher
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	chatLogRepo := mockRepo.NewMockChatLogRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)

	service := NewChatService(ChatServiceParams{
		ChatLogRepo:      chatLogRepo,
		UserRepo:         userRepo,
		NotificationRepo: notificationRepo,
		EventPublisher:   eventPublisher,
		Logger:           newDiscardLogger(),
	})

	return chatServiceFixtures{
		service:          service,
		chatLogRepo:      chatLogRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		eventPublisher:   eventPublisher,
	}
}

func TestChatService_SendMessage_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()
	sender := &entity.User{ID: senderID, FirstName: "Jane", LastName: "Doe"}
	input := &usecase.SendMessageInput{
		SenderID:     senderID,
		Participants: []uuid.UUID{recipientID},
		Text:         "How are you feeling today?",
	}

	fx.chatLogRepo.EXPECT().
		AppendMessage(ctx, entity.CanonicalParticipants([]uuid.UUID{senderID, recipientID}), mock.AnythingOfType("*entity.Message")).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, senderID).Return(sender, nil)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		RunAndReturn(func(ctx context.Context, notification *entity.Notification) error {
			assert.Equal(t, entity.NotificationChatMessage, notification.Kind)
			assert.Equal(t, "New message from Jane Doe", notification.Title)

			return nil
		})
	fx.eventPublisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		RunAndReturn(func(ctx context.Context, event *service.NotificationEvent) error {
			assert.Equal(t, service.EventMessageLogged, event.Type)
			assert.Equal(t, []string{recipientID.String()}, event.RecipientIDs)

			return nil
		})

	msg, err := fx.service.SendMessage(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, senderID, msg.FromUser)
	assert.Equal(t, input.Text, msg.Text)
	assert.Equal(t, entity.MessageSchemaVersion, msg.SchemaVersion)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestChatService_SendMessage_SenderAddedToParticipants(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()
	want := entity.CanonicalParticipants([]uuid.UUID{senderID, recipientID})

	// The participant list repeats the sender; the canonical set still has two.
	input := &usecase.SendMessageInput{
		SenderID:     senderID,
		Participants: []uuid.UUID{senderID, recipientID},
		Text:         "hello",
	}

	fx.chatLogRepo.EXPECT().AppendMessage(ctx, want, mock.AnythingOfType("*entity.Message")).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, senderID).Return(nil, repository.ErrUserNotFound)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		RunAndReturn(func(ctx context.Context, notification *entity.Notification) error {
			// Sender lookup failed, so the generic title is used.
			assert.Equal(t, "New message", notification.Title)

			return nil
		})
	fx.eventPublisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)

	msg, err := fx.service.SendMessage(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, msg)
}

func TestChatService_SendMessage_TooFewParticipants(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	input := &usecase.SendMessageInput{
		SenderID:     senderID,
		Participants: []uuid.UUID{senderID},
		Text:         "talking to myself",
	}

	msg, err := fx.service.SendMessage(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, msg)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestChatService_SendMessage_Empty(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	input := &usecase.SendMessageInput{
		SenderID:     uuid.New(),
		Participants: []uuid.UUID{uuid.New()},
	}

	msg, err := fx.service.SendMessage(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, msg)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyMessage))
}

func TestChatService_SendMessage_InvalidAttachmentType(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	input := &usecase.SendMessageInput{
		SenderID:     uuid.New(),
		Participants: []uuid.UUID{uuid.New()},
		Attachments: []entity.MessageAttachment{
			{Type: entity.AttachmentType("hologram"), URL: "https://cdn.example.com/a"},
		},
	}

	msg, err := fx.service.SendMessage(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, msg)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(err))
}

func TestChatService_SendMessage_AttachmentMissingURL(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	input := &usecase.SendMessageInput{
		SenderID:     uuid.New(),
		Participants: []uuid.UUID{uuid.New()},
		Attachments:  []entity.MessageAttachment{{Type: entity.AttachmentImage}},
	}

	msg, err := fx.service.SendMessage(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, msg)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(err))
}

func TestChatService_SendMessage_AttachmentOnlyBody(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()
	input := &usecase.SendMessageInput{
		SenderID:     senderID,
		Participants: []uuid.UUID{recipientID},
		Attachments: []entity.MessageAttachment{
			{Type: entity.AttachmentImage, URL: "https://cdn.example.com/scan.png"},
		},
	}

	fx.chatLogRepo.EXPECT().
		AppendMessage(ctx, mock.AnythingOfType("[]uuid.UUID"), mock.AnythingOfType("*entity.Message")).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, senderID).Return(&entity.User{ID: senderID, FirstName: "Jane", LastName: "Doe"}, nil)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		RunAndReturn(func(ctx context.Context, notification *entity.Notification) error {
			assert.Equal(t, "Sent an attachment", notification.Body)

			return nil
		})
	fx.eventPublisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)

	msg, err := fx.service.SendMessage(ctx, input)

	require.NoError(t, err)
	assert.Len(t, msg.Attachments, 1)
}

func TestChatService_SendMessage_PublishFailureDoesNotFailSend(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	input := &usecase.SendMessageInput{
		SenderID:     senderID,
		Participants: []uuid.UUID{uuid.New()},
		Text:         "hello",
	}

	fx.chatLogRepo.EXPECT().
		AppendMessage(ctx, mock.AnythingOfType("[]uuid.UUID"), mock.AnythingOfType("*entity.Message")).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, senderID).Return(&entity.User{ID: senderID}, nil)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.eventPublisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Return(errors.New("broker unavailable"))

	msg, err := fx.service.SendMessage(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, msg)
}

func TestChatService_QueryTimeRange_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	otherID := uuid.New()
	participants := entity.CanonicalParticipants([]uuid.UUID{requesterID, otherID})
	from := time.Now().UTC().Add(-time.Hour)
	to := time.Now().UTC()
	messages := []*entity.Message{{ID: "m1", FromUser: otherID, Text: "hi"}}

	fx.chatLogRepo.EXPECT().QueryTimeRange(ctx, participants, from, to).Return(messages, nil)

	found, err := fx.service.QueryTimeRange(ctx, &usecase.ChatQueryInput{
		RequesterID:  requesterID,
		Participants: []uuid.UUID{requesterID, otherID},
		From:         from,
		To:           to,
	})

	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestChatService_QueryTimeRange_NotParticipant(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()

	found, err := fx.service.QueryTimeRange(ctx, &usecase.ChatQueryInput{
		RequesterID:  uuid.New(),
		Participants: []uuid.UUID{uuid.New(), uuid.New()},
	})

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrNotParticipant))
}

func TestChatService_QueryTimeRange_ChatNotFound(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	otherID := uuid.New()

	fx.chatLogRepo.EXPECT().
		QueryTimeRange(ctx, mock.AnythingOfType("[]uuid.UUID"), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrChatNotFound)

	found, err := fx.service.QueryTimeRange(ctx, &usecase.ChatQueryInput{
		RequesterID:  requesterID,
		Participants: []uuid.UUID{requesterID, otherID},
	})

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrChatNotFound))
}

func TestChatService_QueryLatest_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	otherID := uuid.New()
	participants := entity.CanonicalParticipants([]uuid.UUID{requesterID, otherID})
	messages := []*entity.Message{{ID: "m1"}, {ID: "m2"}}

	fx.chatLogRepo.EXPECT().QueryLatest(ctx, participants, time.Time{}, 20).Return(messages, nil)

	found, err := fx.service.QueryLatest(ctx, &usecase.ChatLatestInput{
		RequesterID:  requesterID,
		Participants: []uuid.UUID{requesterID, otherID},
		Limit:        20,
	})

	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestChatService_QueryLatest_UntilBoundForwarded(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	otherID := uuid.New()
	participants := entity.CanonicalParticipants([]uuid.UUID{requesterID, otherID})
	until := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	fx.chatLogRepo.EXPECT().QueryLatest(ctx, participants, until, 5).Return([]*entity.Message{{ID: "m1"}}, nil)

	found, err := fx.service.QueryLatest(ctx, &usecase.ChatLatestInput{
		RequesterID:  requesterID,
		Participants: []uuid.UUID{requesterID, otherID},
		Until:        until,
		Limit:        5,
	})

	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestChatService_QueryLatest_NotParticipant(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()

	found, err := fx.service.QueryLatest(ctx, &usecase.ChatLatestInput{
		RequesterID:  uuid.New(),
		Participants: []uuid.UUID{uuid.New(), uuid.New()},
	})

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrNotParticipant))
}

func TestChatService_GetUserChats_Success(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	chats := []*entity.ChatSummary{{Key: entity.ChatKey([]uuid.UUID{userID, uuid.New()})}}

	fx.chatLogRepo.EXPECT().GetUserChats(ctx, userID).Return(chats, nil)

	found, err := fx.service.GetUserChats(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, found, 1)
}
