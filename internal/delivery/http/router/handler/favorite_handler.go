package handler

import (
	"log/slog"
	"net/http"

	"pklradar/internal/delivery/http/response"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for favorite management handlers
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddFavorite handles a buyer favoriting a vendor
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	buyerID, err := getUserID(c)
	if err != nil {
		return err
	}

	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	favorite, err := h.favoriteUC.AddFavorite(c.Request().Context(), buyerID, vendorID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Vendor favorited successfully")
}

// RemoveFavorite handles a buyer removing a vendor from favorites
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	buyerID, err := getUserID(c)
	if err != nil {
		return err
	}

	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), buyerID, vendorID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Favorite removed"}, "Favorite removed successfully")
}

// ListFavorites handles retrieving the buyer's favorites with vendor profiles
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	buyerID, err := getUserID(c)
	if err != nil {
		return err
	}

	items, err := h.favoriteUC.ListFavorites(c.Request().Context(), buyerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Favorites retrieved successfully")
}

// handleAppError handles application errors
func (h *FavoriteHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
