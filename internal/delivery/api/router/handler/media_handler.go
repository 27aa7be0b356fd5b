// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"medops/internal/delivery/api/middleware"
	"medops/internal/delivery/api/response"
	"medops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler holds dependencies for attachment media handlers.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// UploadMedia stores an attachment uploaded as multipart form data under the
// "file" field.
func (h *MediaHandler) UploadMedia(c echo.Context) error {
	uploaderID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field \"file\" is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to open uploaded file")
	}
	defer src.Close()

	media, err := h.mediaUC.UploadMedia(c.Request().Context(), &usecase.UploadMediaInput{
		UploaderID: uploaderID,
		Filename:   fileHeader.Filename,
		MimeType:   fileHeader.Header.Get("Content-Type"),
		Size:       fileHeader.Size,
		Content:    src,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, media)
}

// DownloadMedia streams a stored attachment back to the caller.
func (h *MediaHandler) DownloadMedia(c echo.Context) error {
	mediaID := c.Param("id")
	if mediaID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid media ID")
	}

	media, reader, err := h.mediaUC.DownloadMedia(c.Request().Context(), mediaID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+media.Filename+`"`)

	return c.Stream(http.StatusOK, media.MimeType, reader)
}
