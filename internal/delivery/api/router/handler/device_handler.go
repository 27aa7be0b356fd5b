// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"medops/internal/delivery/api/response"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for the clinical device registry handlers.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler.
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// CreateDeviceRequest represents the request body for registering a clinical device.
type CreateDeviceRequest struct {
	Name                   string     `json:"name" validate:"required"`
	CurrentFirmwareVersion *string    `json:"current_firmware_version,omitempty"`
	DateOfPurchase         *time.Time `json:"date_of_purchase,omitempty"`
	SerialNumber           *string    `json:"serial_number,omitempty"`
	MACAddress             *string    `json:"mac_address,omitempty"`
}

// UpdateDeviceRequest represents the request body for updating a device.
type UpdateDeviceRequest struct {
	Name                   *string    `json:"name,omitempty"`
	CurrentFirmwareVersion *string    `json:"current_firmware_version,omitempty"`
	DateOfPurchase         *time.Time `json:"date_of_purchase,omitempty"`
	SerialNumber           *string    `json:"serial_number,omitempty"`
	MACAddress             *string    `json:"mac_address,omitempty"`
}

// CreateDevice handles clinical device registration.
func (h *DeviceHandler) CreateDevice(c echo.Context) error {
	var req CreateDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.CreateDevice(c.Request().Context(), &usecase.CreateDeviceInput{
		Name:                   req.Name,
		CurrentFirmwareVersion: req.CurrentFirmwareVersion,
		DateOfPurchase:         req.DateOfPurchase,
		SerialNumber:           req.SerialNumber,
		MACAddress:             req.MACAddress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// ListDevices lists registered devices, newest first.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	limit, offset := parsePagination(c)

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// GetDevice retrieves a device registry card by ID.
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	device, err := h.deviceUC.GetDevice(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// UpdateDevice modifies the editable registry fields of a device.
func (h *DeviceHandler) UpdateDevice(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req UpdateDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	device, err := h.deviceUC.UpdateDevice(c.Request().Context(), deviceID, &usecase.UpdateDeviceInput{
		Name:                   req.Name,
		CurrentFirmwareVersion: req.CurrentFirmwareVersion,
		DateOfPurchase:         req.DateOfPurchase,
		SerialNumber:           req.SerialNumber,
		MACAddress:             req.MACAddress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// DeleteDevice removes a device from the registry.
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deleted successfully"})
}

// GetDeviceLabel renders the pairing QR label for a device as a PNG.
func (h *DeviceHandler) GetDeviceLabel(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	label, err := h.deviceUC.GenerateDeviceLabel(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", label)
}
