package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"agroalert/internal/delivery/http/response"
	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// ReportHandler holds dependencies for disease report and alert handlers
type ReportHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// CreateReportRequest represents the request body for submitting a disease report.
// Coordinates are pointers so a missing field is distinguishable from zero and
// rejected with 400 rather than treated as the Null Island origin.
type CreateReportRequest struct {
	Disease   string   `json:"disease" validate:"required"`
	Severity  string   `json:"severity" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	CropType  string   `json:"crop_type"`
}

// ReportOutcomeResponse is the response payload for a processed report
type ReportOutcomeResponse struct {
	AlertCreated  bool          `json:"alert_created"`
	NotifiedCount int           `json:"notified_count"`
	Alert         *entity.Alert `json:"alert,omitempty"`
}

// CreateReport handles an incoming disease report
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid disease report input")
	}

	if err := c.Validate(&req); err != nil {
		if req.Latitude == nil || req.Longitude == nil {
			return response.BadRequest(c, "INVALID_COORDINATES", "Latitude and longitude are required")
		}

		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	outcome, err := h.alertUC.ReportDisease(c.Request().Context(), usecase.DiseaseReport{
		Disease:   req.Disease,
		Severity:  entity.Severity(req.Severity),
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		CropType:  req.CropType,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	payload := &ReportOutcomeResponse{
		AlertCreated:  outcome.AlertCreated,
		NotifiedCount: outcome.NotifiedCount,
		Alert:         outcome.Alert,
	}

	if !outcome.AlertCreated {
		return response.Success(c, http.StatusOK, payload, "Report recorded, severity below alert threshold")
	}

	return response.Success(c, http.StatusCreated, payload, "Disease alert created")
}

// ListAlerts handles querying alerts near a location
func (h *ReportHandler) ListAlerts(c echo.Context) error {
	lat, lon, ok := parseCoordinates(c)
	if !ok {
		return response.BadRequest(c, "INVALID_COORDINATES", "Query parameters latitude and longitude are required")
	}

	radius := 0.0
	if raw := c.QueryParam("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_RADIUS", "Radius must be a number of meters")
		}
		radius = parsed
	}

	alerts, err := h.alertUC.ListAlertsNear(c.Request().Context(), lat, lon, radius)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts, "Alerts retrieved successfully")
}

// parseCoordinates reads the latitude/longitude query parameters. Both must
// be present and numeric.
func parseCoordinates(c echo.Context) (lat, lon float64, ok bool) {
	rawLat := c.QueryParam("latitude")
	rawLon := c.QueryParam("longitude")
	if rawLat == "" || rawLon == "" {
		return 0, 0, false
	}

	lat, errLat := strconv.ParseFloat(rawLat, 64)
	lon, errLon := strconv.ParseFloat(rawLon, 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}

	return lat, lon, true
}

// handleAppError handles application errors
func (h *ReportHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
