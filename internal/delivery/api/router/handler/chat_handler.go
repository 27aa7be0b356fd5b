// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"medops/internal/delivery/api/middleware"
	"medops/internal/delivery/api/response"
	"medops/internal/domain/entity"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler holds dependencies for chat log handlers.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler.
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// AttachmentRequest is one attachment reference inside a message.
type AttachmentRequest struct {
	Type string `json:"type" validate:"required"`
	URL  string `json:"url" validate:"required"`
}

// SendMessageRequest represents the request body for logging a message.
type SendMessageRequest struct {
	Participants []uuid.UUID         `json:"participants" validate:"required,min=1"`
	Text         string              `json:"text"`
	Attachments  []AttachmentRequest `json:"attachments,omitempty" validate:"omitempty,dive"`
	Timestamp    *time.Time          `json:"timestamp,omitempty"`
}

// ChatQueryRequest represents the request body for a time-window query.
type ChatQueryRequest struct {
	Participants []uuid.UUID `json:"participants" validate:"required,min=1"`
	From         *time.Time  `json:"from,omitempty"`
	To           *time.Time  `json:"to,omitempty"`
}

// ChatLatestRequest represents the request body for a trailing-messages query.
type ChatLatestRequest struct {
	Participants []uuid.UUID `json:"participants" validate:"required,min=1"`
	Until        *time.Time  `json:"until,omitempty"`
	Limit        int         `json:"limit,omitempty"`
}

// SendMessage appends a message to the conversation for a participant set.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	senderID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	attachments := make([]entity.MessageAttachment, 0, len(req.Attachments))
	for _, att := range req.Attachments {
		attachments = append(attachments, entity.MessageAttachment{
			Type: entity.AttachmentType(att.Type),
			URL:  att.URL,
		})
	}

	input := &usecase.SendMessageInput{
		SenderID:     senderID,
		Participants: req.Participants,
		Text:         req.Text,
		Attachments:  attachments,
	}
	if req.Timestamp != nil {
		input.Timestamp = *req.Timestamp
	}

	msg, err := h.chatUC.SendMessage(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, msg)
}

// QueryTimeRange retrieves a conversation's messages inside an exclusive time
// window, oldest first.
func (h *ChatHandler) QueryTimeRange(c echo.Context) error {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ChatQueryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ChatQueryInput{
		RequesterID:  requesterID,
		Participants: req.Participants,
	}
	if req.From != nil {
		input.From = *req.From
	}
	if req.To != nil {
		input.To = *req.To
	}

	messages, err := h.chatUC.QueryTimeRange(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// QueryLatest retrieves a conversation's most recent messages, oldest first.
func (h *ChatHandler) QueryLatest(c echo.Context) error {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ChatLatestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ChatLatestInput{
		RequesterID:  requesterID,
		Participants: req.Participants,
		Limit:        req.Limit,
	}
	if req.Until != nil {
		input.Until = *req.Until
	}

	messages, err := h.chatUC.QueryLatest(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// GetUserChats lists the conversations the caller participates in.
func (h *ChatHandler) GetUserChats(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	chats, err := h.chatUC.GetUserChats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chats)
}
