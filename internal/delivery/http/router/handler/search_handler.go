package handler

import (
	"log/slog"
	"net/http"

	"pklradar/internal/delivery/http/response"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for vendor discovery handlers
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// ListActiveVendors handles listing active verified vendors with optional
// fuzzy query (?search=) and category filter (?jenis=)
func (h *SearchHandler) ListActiveVendors(c echo.Context) error {
	var input usecase.SearchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	results, err := h.searchUC.ListActiveVendors(c.Request().Context(), &input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Active vendors retrieved successfully")
}

// handleAppError handles application errors
func (h *SearchHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
