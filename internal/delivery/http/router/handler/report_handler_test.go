package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agroalert/internal/delivery/http/validator"
	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	mockusecase "agroalert/internal/mocks/usecase"
	"agroalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReportTestContext(t *testing.T, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e, e.NewContext(req, rec), rec
}

func TestReportHandler_CreateReport_MissingCoordinates(t *testing.T) {
	alertUC := mockusecase.NewMockAlertUsecase(t)
	handler := &ReportHandler{alertUC: alertUC, logger: slog.Default()}

	body := `{"disease": "late blight", "severity": "high"}`
	_, c, rec := newReportTestContext(t, body)

	err := handler.CreateReport(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_COORDINATES")
}

func TestReportHandler_CreateReport_LowSeverityAcknowledged(t *testing.T) {
	alertUC := mockusecase.NewMockAlertUsecase(t)
	alertUC.EXPECT().
		ReportDisease(mock.Anything, mock.AnythingOfType("usecase.DiseaseReport")).
		Return(&usecase.ReportOutcome{AlertCreated: false}, nil)

	handler := &ReportHandler{alertUC: alertUC, logger: slog.Default()}

	body := `{"disease": "rust", "severity": "low", "latitude": 6.5244, "longitude": 3.3792}`
	_, c, rec := newReportTestContext(t, body)

	err := handler.CreateReport(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alert_created":false`)
}

func TestReportHandler_CreateReport_AlertCreated(t *testing.T) {
	alertUC := mockusecase.NewMockAlertUsecase(t)
	alertUC.EXPECT().
		ReportDisease(mock.Anything, mock.MatchedBy(func(report usecase.DiseaseReport) bool {
			return report.Disease == "late blight" &&
				report.Severity == entity.SeverityHigh &&
				report.CropType == "potato"
		})).
		Return(&usecase.ReportOutcome{
			Alert:         &entity.Alert{Disease: "late blight", Severity: entity.SeverityHigh},
			NotifiedCount: 4,
			AlertCreated:  true,
		}, nil)

	handler := &ReportHandler{alertUC: alertUC, logger: slog.Default()}

	body := `{"disease": "late blight", "severity": "high", "latitude": 6.5244, "longitude": 3.3792, "crop_type": "potato"}`
	_, c, rec := newReportTestContext(t, body)

	err := handler.CreateReport(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alert_created":true`)
	assert.Contains(t, rec.Body.String(), `"notified_count":4`)
}

func TestReportHandler_CreateReport_InvalidSeverity(t *testing.T) {
	alertUC := mockusecase.NewMockAlertUsecase(t)
	alertUC.EXPECT().
		ReportDisease(mock.Anything, mock.AnythingOfType("usecase.DiseaseReport")).
		Return(nil, domainerrors.ErrInvalidSeverity)

	handler := &ReportHandler{alertUC: alertUC, logger: slog.Default()}

	body := `{"disease": "rust", "severity": "catastrophic", "latitude": 6.5244, "longitude": 3.3792}`
	_, c, rec := newReportTestContext(t, body)

	err := handler.CreateReport(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_SEVERITY")
}

func TestReportHandler_ListAlerts_RequiresCoordinates(t *testing.T) {
	alertUC := mockusecase.NewMockAlertUsecase(t)
	handler := &ReportHandler{alertUC: alertUC, logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/alerts?latitude=6.5244", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListAlerts(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_COORDINATES")
}

func TestReportHandler_ListAlerts_PassesRadius(t *testing.T) {
	alertUC := mockusecase.NewMockAlertUsecase(t)
	alertUC.EXPECT().
		ListAlertsNear(mock.Anything, 6.5244, 3.3792, 5000.0).
		Return([]*entity.Alert{}, nil)

	handler := &ReportHandler{alertUC: alertUC, logger: slog.Default()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/alerts?latitude=6.5244&longitude=3.3792&radius=5000", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListAlerts(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
