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

// VitalHandlerParams holds dependencies for VitalHandler, injected by Fx.
type VitalHandlerParams struct {
	fx.In

	VitalUC usecase.VitalUsecase
	Logger  *slog.Logger
}

// VitalHandler holds dependencies for vitals ingestion and query handlers.
type VitalHandler struct {
	vitalUC usecase.VitalUsecase
	logger  *slog.Logger
}

// NewVitalHandler is the constructor for VitalHandler.
func NewVitalHandler(params VitalHandlerParams) *VitalHandler {
	return &VitalHandler{
		vitalUC: params.VitalUC,
		logger:  params.Logger,
	}
}

// IngestReadingRequest is a single reading inside an ingestion batch.
type IngestReadingRequest struct {
	DeviceID       uuid.UUID          `json:"device_id" validate:"required"`
	CollectionTime time.Time          `json:"collection_time" validate:"required"`
	Type           string             `json:"data_type" validate:"required"`
	Measurement    entity.Measurement `json:"data" validate:"required"`
	AssignedUser   *uuid.UUID         `json:"assigned_user,omitempty"`
}

// IngestBatchRequest represents the request body for batch ingestion.
type IngestBatchRequest struct {
	Readings []IngestReadingRequest `json:"readings" validate:"required,min=1,dive"`
}

// IngestBatch stores a batch of readings atomically.
func (h *VitalHandler) IngestBatch(c echo.Context) error {
	var req IngestBatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vitals input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	readings := make([]*usecase.IngestReadingInput, 0, len(req.Readings))
	for _, r := range req.Readings {
		readings = append(readings, &usecase.IngestReadingInput{
			DeviceID:       r.DeviceID,
			CollectionTime: r.CollectionTime,
			Type:           entity.VitalType(r.Type),
			Measurement:    r.Measurement,
			AssignedUser:   r.AssignedUser,
		})
	}

	output, err := h.vitalUC.IngestBatch(c.Request().Context(), &usecase.IngestBatchInput{Readings: readings})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output.Readings)
}

// QueryReadings retrieves readings matching the query filters, newest first.
// Results are scoped to the caller: patients see their own readings,
// clinicians their care-team patients', admins everything.
func (h *VitalHandler) QueryReadings(c echo.Context) error {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input := &usecase.QueryVitalsInput{RequesterID: requesterID}
	if roles, ok := middleware.GetRoles(c); ok {
		input.RequesterRoles = entity.RolesFromStrings(roles)
	}

	if raw := c.QueryParam("patient_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid patient ID")
		}
		input.PatientID = &id
	}
	if raw := c.QueryParam("device_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
		}
		input.DeviceID = &id
	}
	if raw := c.QueryParam("type"); raw != "" {
		vitalType := entity.VitalType(raw)
		if !vitalType.IsValid() {
			return response.BadRequest(c, "INVALID_TYPE", "Unknown vital type")
		}
		input.Type = &vitalType
	}
	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_TIMESTAMP", "From bound must be RFC 3339")
		}
		input.From = from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_TIMESTAMP", "To bound must be RFC 3339")
		}
		input.To = to
	}
	input.Limit, input.Offset = parsePagination(c)

	readings, err := h.vitalUC.QueryReadings(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, readings)
}
