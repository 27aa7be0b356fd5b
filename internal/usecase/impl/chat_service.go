// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "medops/internal/delivery/context"
	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	"medops/internal/domain/service"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface. The chat log store is
// append-only and lives outside the relational transaction boundary.
type chatService struct {
	chatLogRepo      repository.ChatLogRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	eventPublisher   service.EventPublisher
	logger           *slog.Logger
}

// ChatServiceParams holds dependencies for chatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatLogRepo      repository.ChatLogRepository
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	EventPublisher   service.EventPublisher
	Logger           *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatLogRepo:      params.ChatLogRepo,
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		eventPublisher:   params.EventPublisher,
		logger:           params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage appends a message to the conversation identified by the
// participant set.
func (srv *chatService) SendMessage(ctx context.Context, input *usecase.SendMessageInput) (*entity.Message, error) {
	participants := entity.CanonicalParticipants(append(input.Participants, input.SenderID))
	if len(participants) < 2 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a conversation needs at least two participants")
	}

	if input.Text == "" && len(input.Attachments) == 0 {
		return nil, errors.Wrap(domainerrors.ErrEmptyMessage, "message has neither text nor attachments")
	}
	for i, att := range input.Attachments {
		if !att.Type.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("attachment %d: unknown type %q", i, att.Type))
		}
		if att.URL == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("attachment %d: url is required", i))
		}
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	msg := &entity.Message{
		SchemaVersion: entity.MessageSchemaVersion,
		Timestamp:     timestamp.UTC(),
		FromUser:      input.SenderID,
		Text:          input.Text,
		Attachments:   input.Attachments,
	}
	if err := srv.chatLogRepo.AppendMessage(ctx, participants, msg); err != nil {
		srv.log(ctx).Error("Failed to append message", slog.Any("error", err), slog.Any("senderID", input.SenderID))

		return nil, errors.Wrap(err, "failed to append message")
	}
	srv.log(ctx).Info("Message logged", slog.Any("senderID", input.SenderID), slog.Int("participants", len(participants)))

	srv.publishMessageLogged(ctx, participants, input.SenderID, msg)

	return msg, nil
}

// publishMessageLogged records a notification for a logged message and hands
// the push fanout to the alert worker. Failures are logged, never propagated:
// the message is already stored.
func (srv *chatService) publishMessageLogged(ctx context.Context, participants []uuid.UUID, senderID uuid.UUID, msg *entity.Message) {
	recipientIDs := make([]string, 0, len(participants)-1)
	for _, id := range participants {
		if id != senderID {
			recipientIDs = append(recipientIDs, id.String())
		}
	}
	if len(recipientIDs) == 0 {
		return
	}

	title := "New message"
	if sender, err := srv.userRepo.FindByID(ctx, senderID); err == nil {
		title = "New message from " + sender.FullName()
	}
	body := msg.Text
	if body == "" {
		body = "Sent an attachment"
	}

	notification := &entity.Notification{
		ID:        uuid.New(),
		Kind:      entity.NotificationChatMessage,
		SubjectID: senderID,
		Title:     title,
		Body:      body,
	}
	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		srv.log(ctx).Error("Failed to record chat notification", slog.Any("error", err), slog.Any("senderID", senderID))

		return
	}

	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		Type:           service.EventMessageLogged,
		SubjectID:      senderID.String(),
		Title:          title,
		Body:           body,
		RecipientIDs:   recipientIDs,
	}
	if err := srv.eventPublisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish message event", slog.Any("error", err), slog.Any("notificationID", notification.ID))
	}
}

// QueryTimeRange retrieves a conversation's messages inside an exclusive time
// window, oldest first.
func (srv *chatService) QueryTimeRange(ctx context.Context, input *usecase.ChatQueryInput) ([]*entity.Message, error) {
	participants, err := srv.requireParticipant(input.RequesterID, input.Participants)
	if err != nil {
		return nil, err
	}

	messages, err := srv.chatLogRepo.QueryTimeRange(ctx, participants, input.From, input.To)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChatNotFound, "conversation not found")
		}
		srv.log(ctx).Error("Failed to query messages", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to query messages")
	}

	return messages, nil
}

// QueryLatest retrieves a conversation's most recent messages, oldest first.
func (srv *chatService) QueryLatest(ctx context.Context, input *usecase.ChatLatestInput) ([]*entity.Message, error) {
	participants, err := srv.requireParticipant(input.RequesterID, input.Participants)
	if err != nil {
		return nil, err
	}

	messages, err := srv.chatLogRepo.QueryLatest(ctx, participants, input.Until, input.Limit)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChatNotFound, "conversation not found")
		}
		srv.log(ctx).Error("Failed to query latest messages", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to query latest messages")
	}

	return messages, nil
}

// GetUserChats retrieves the conversations a user participates in.
func (srv *chatService) GetUserChats(ctx context.Context, userID uuid.UUID) ([]*entity.ChatSummary, error) {
	chats, err := srv.chatLogRepo.GetUserChats(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to get user chats", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to get user chats")
	}

	return chats, nil
}

// requireParticipant canonicalizes a participant set and checks that the
// requester belongs to it.
func (srv *chatService) requireParticipant(requesterID uuid.UUID, raw []uuid.UUID) ([]uuid.UUID, error) {
	participants := entity.CanonicalParticipants(raw)
	if len(participants) < 2 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a conversation needs at least two participants")
	}

	for _, id := range participants {
		if id == requesterID {
			return participants, nil
		}
	}

	return nil, errors.Wrap(domainerrors.ErrNotParticipant, "requester is not in the participant set")
}
