// Package handler contains the HTTP handlers of the Echo delivery.
package handler

import (
	"log/slog"
	"net/http"

	"pklradar/internal/delivery/http/response"
	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
	Logger   *slog.Logger
}

// VendorHandler holds dependencies for vendor profile handlers
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		vendorUC: params.VendorUC,
		logger:   params.Logger,
	}
}

// VerificationRequest represents the request body for an admin verification decision
type VerificationRequest struct {
	Status string `json:"status" validate:"required,oneof=ACCEPTED REJECTED"`
	Note   string `json:"note" validate:"max=500"`
}

// CreateProfile handles registering the caller's vendor profile
func (h *VendorHandler) CreateProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req usecase.CreateVendorInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	vendor, err := h.vendorUC.CreateVendorProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, vendor, "Vendor profile created successfully")
}

// GetProfile handles retrieving the caller's vendor profile
func (h *VendorHandler) GetProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	vendor, err := h.vendorUC.GetVendorByUser(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor profile retrieved successfully")
}

// UpdateProfile handles updating the caller's vendor profile
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateVendorInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	vendor, err := h.vendorUC.UpdateVendorProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor profile updated successfully")
}

// SetVerification handles an admin verification decision for a vendor
func (h *VendorHandler) SetVerification(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	var req VerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.vendorUC.SetVendorVerification(c.Request().Context(), vendorID, entity.VerificationStatus(req.Status), req.Note); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status}, "Vendor verification updated successfully")
}

// GetLive handles retrieving a visible vendor with its latest location
func (h *VendorHandler) GetLive(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	output, err := h.vendorUC.GetVendorLive(c.Request().Context(), vendorID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Vendor live position retrieved successfully")
}

// GetDailyStats handles retrieving the caller's vendor daily stats
func (h *VendorHandler) GetDailyStats(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.vendorUC.GetDailyStats(c.Request().Context(), userID, 0)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Vendor daily stats retrieved successfully")
}

// GetPaymentQR handles rendering a vendor's QRIS payment link as a PNG QR code
func (h *VendorHandler) GetPaymentQR(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	png, err := h.vendorUC.GetPaymentQR(c.Request().Context(), vendorID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// getUserID extracts the authenticated user ID from the context
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *VendorHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
