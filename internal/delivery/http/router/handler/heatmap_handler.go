package handler

import (
	"log/slog"
	"net/http"

	"agroalert/internal/delivery/http/response"
	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/repository"
	"agroalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeatmapHandlerParams holds dependencies for HeatmapHandler, injected by Fx.
type HeatmapHandlerParams struct {
	fx.In

	HeatmapUC usecase.HeatmapUsecase
	Logger    *slog.Logger
}

// HeatmapHandler holds dependencies for heatmap query handlers
type HeatmapHandler struct {
	heatmapUC usecase.HeatmapUsecase
	logger    *slog.Logger
}

// NewHeatmapHandler is the constructor for HeatmapHandler
func NewHeatmapHandler(params HeatmapHandlerParams) *HeatmapHandler {
	return &HeatmapHandler{
		heatmapUC: params.HeatmapUC,
		logger:    params.Logger,
	}
}

// ListHeatmap handles querying heatmap points with optional disease and
// severity filters
func (h *HeatmapHandler) ListHeatmap(c echo.Context) error {
	filter := repository.HeatmapFilter{
		Disease: c.QueryParam("disease"),
	}

	if raw := c.QueryParam("severity"); raw != "" {
		severity := entity.Severity(raw)
		if !severity.Valid() {
			return response.BadRequest(c, "INVALID_SEVERITY", "Severity must be one of low, medium or high")
		}
		filter.Severity = severity
	}

	points, err := h.heatmapUC.ListPoints(c.Request().Context(), filter)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points, "Heatmap points retrieved successfully")
}

// ListHeatmapAll dumps every heatmap point without filtering. Registered only
// when test routes are enabled.
func (h *HeatmapHandler) ListHeatmapAll(c echo.Context) error {
	points, err := h.heatmapUC.ListPoints(c.Request().Context(), repository.HeatmapFilter{})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points, "All heatmap points retrieved successfully")
}

// handleAppError handles application errors
func (h *HeatmapHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
