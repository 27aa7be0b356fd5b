// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"medops/internal/delivery/api/middleware"
	"medops/internal/delivery/api/response"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CareHandlerParams holds dependencies for CareHandler, injected by Fx.
type CareHandlerParams struct {
	fx.In

	CareUC usecase.CareUsecase
	Logger *slog.Logger
}

// CareHandler holds dependencies for care-team handlers.
type CareHandler struct {
	careUC usecase.CareUsecase
	logger *slog.Logger
}

// NewCareHandler is the constructor for CareHandler.
func NewCareHandler(params CareHandlerParams) *CareHandler {
	return &CareHandler{
		careUC: params.CareUC,
		logger: params.Logger,
	}
}

// AddCareTeamMemberRequest represents the request body for adding a clinician
// to a patient's care team.
type AddCareTeamMemberRequest struct {
	ClinicianID uuid.UUID `json:"clinician_id" validate:"required"`
}

// GetCareTeam lists the clinicians responsible for a patient.
func (h *CareHandler) GetCareTeam(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid patient ID")
	}

	team, err := h.careUC.GetCareTeam(c.Request().Context(), patientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, team)
}

// AddCareTeamMember links a clinician to a patient's care team.
func (h *CareHandler) AddCareTeamMember(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid patient ID")
	}

	var req AddCareTeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid care team input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.careUC.AddCareRelationship(c.Request().Context(), patientID, req.ClinicianID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Care team member added successfully"})
}

// RemoveCareTeamMember removes a clinician from a patient's care team.
func (h *CareHandler) RemoveCareTeamMember(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid patient ID")
	}

	clinicianID, err := uuid.Parse(c.Param("clinicianID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid clinician ID")
	}

	if err := h.careUC.RemoveCareRelationship(c.Request().Context(), patientID, clinicianID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Care team member removed successfully"})
}

// GetMyPatients lists the patients under the calling clinician's care.
func (h *CareHandler) GetMyPatients(c echo.Context) error {
	clinicianID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	patients, err := h.careUC.GetPatients(c.Request().Context(), clinicianID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, patients)
}
