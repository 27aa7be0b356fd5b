// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"medops/internal/delivery/api/middleware"
	"medops/internal/delivery/api/response"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssignmentHandlerParams holds dependencies for AssignmentHandler, injected by Fx.
type AssignmentHandlerParams struct {
	fx.In

	AssignmentUC usecase.AssignmentUsecase
	Logger       *slog.Logger
}

// AssignmentHandler holds dependencies for device assignment handlers.
type AssignmentHandler struct {
	assignmentUC usecase.AssignmentUsecase
	logger       *slog.Logger
}

// NewAssignmentHandler is the constructor for AssignmentHandler.
func NewAssignmentHandler(params AssignmentHandlerParams) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUC: params.AssignmentUC,
		logger:       params.Logger,
	}
}

// AssignDeviceRequest represents the request body for opening an assignment.
type AssignDeviceRequest struct {
	PatientID uuid.UUID  `json:"patient_id" validate:"required"`
	StartTime *time.Time `json:"start_time,omitempty"`
}

// ReturnDeviceRequest represents the request body for closing an assignment.
type ReturnDeviceRequest struct {
	EndTime *time.Time `json:"end_time,omitempty"`
}

// AssignDevice opens an assignment interval for a device.
func (h *AssignmentHandler) AssignDevice(c echo.Context) error {
	assignerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req AssignDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AssignDeviceInput{
		DeviceID:   deviceID,
		PatientID:  req.PatientID,
		AssignerID: assignerID,
	}
	if req.StartTime != nil {
		input.StartTime = *req.StartTime
	}

	assignment, err := h.assignmentUC.Assign(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, assignment)
}

// ReturnDevice closes the open assignment interval of a device.
func (h *AssignmentHandler) ReturnDevice(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req ReturnDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return input")
	}

	var endTime time.Time
	if req.EndTime != nil {
		endTime = *req.EndTime
	}

	assignment, err := h.assignmentUC.Unassign(c.Request().Context(), deviceID, endTime)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assignment)
}

// GetDeviceHistory lists a device's assignment intervals, newest first.
func (h *AssignmentHandler) GetDeviceHistory(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	limit, offset := parsePagination(c)
	history, err := h.assignmentUC.GetDeviceHistory(c.Request().Context(), deviceID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// GetPatientHistory lists a patient's assignment intervals, newest first.
func (h *AssignmentHandler) GetPatientHistory(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid patient ID")
	}

	limit, offset := parsePagination(c)
	history, err := h.assignmentUC.GetPatientHistory(c.Request().Context(), patientID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// ResolveUser returns the patient a device was assigned to at a given instant.
func (h *AssignmentHandler) ResolveUser(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	at := time.Now().UTC()
	if raw := c.QueryParam("timestamp"); raw != "" {
		at, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_TIMESTAMP", "Timestamp must be RFC 3339")
		}
	}

	patient, err := h.assignmentUC.ResolveUser(c.Request().Context(), deviceID, at)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, patient)
}
