package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pklradar/internal/delivery/http/response"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location sharing handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// VendorLocationRequest represents the request body for a vendor location update
type VendorLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// BuyerLocationRequest represents the request body for a buyer location update.
// A nil radius keeps the previously stored radius.
type BuyerLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusM   *int    `json:"radius_m,omitempty" validate:"omitempty,oneof=300 500 1000 1500"`
}

// UpdateVendorLocation handles a vendor posting its live position
func (h *LocationHandler) UpdateVendorLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req VendorLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.locationUC.UpdateVendorLocation(c.Request().Context(), userID, req.Latitude, req.Longitude)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Vendor location updated successfully")
}

// DeactivateVendor handles a vendor stopping its location broadcast
func (h *LocationHandler) DeactivateVendor(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.locationUC.DeactivateVendor(c.Request().Context(), userID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "inactive"}, "Vendor deactivated successfully")
}

// GetVendorLocationHistory handles retrieving the caller's recent location history
func (h *LocationHandler) GetVendorLocationHistory(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	locations, err := h.locationUC.GetVendorLocationHistory(c.Request().Context(), userID, limit)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Vendor location history retrieved successfully")
}

// UpdateBuyerLocation handles a buyer posting its position, triggering the
// nearby vendor evaluation
func (h *LocationHandler) UpdateBuyerLocation(c echo.Context) error {
	buyerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req BuyerLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.locationUC.UpdateBuyerLocation(c.Request().Context(), buyerID, req.Latitude, req.Longitude, req.RadiusM)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Buyer location updated successfully")
}

// handleAppError handles application errors
func (h *LocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
