package impl

import (
	"context"
	"log/slog"
	"testing"

	"agroalert/config"
	"agroalert/internal/domain/constants"
	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	mockRepo "agroalert/internal/mocks/repository"
	mockUC "agroalert/internal/mocks/usecase"
	"agroalert/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAlertTestConfig() *config.Config {
	return &config.Config{
		Alerting: &config.AlertingConfig{
			DefaultRadiusMeters:      2000.0,
			HeatmapMergeRadiusMeters: 100.0,
		},
	}
}

func TestAlertService_ReportDisease_MediumSeverityCreatesAlert(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockDispatch := mockUC.NewMockDispatchUsecase(t)
	mockHeatmap := mockUC.NewMockHeatmapUsecase(t)
	service := NewAlertService(mockAlertRepo, mockDispatch, mockHeatmap, newAlertTestConfig(), slog.Default())

	ctx := context.Background()

	mockAlertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(nil)

	mockDispatch.EXPECT().
		NotifyNearby(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(3, nil)

	mockHeatmap.EXPECT().
		RecordPoint(ctx, "late blight", entity.SeverityMedium, 23.5, 120.5).
		Return(&entity.HeatmapPoint{Count: 1}, nil)

	outcome, err := service.ReportDisease(ctx, usecase.DiseaseReport{
		Disease:   "late blight",
		Severity:  entity.SeverityMedium,
		Latitude:  23.5,
		Longitude: 120.5,
		CropType:  "potato",
	})
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.True(t, outcome.AlertCreated)
	assert.Equal(t, 3, outcome.NotifiedCount)
	require.NotNil(t, outcome.Alert)
	assert.Equal(t, "late blight", outcome.Alert.Disease)
	assert.Equal(t, "potato", outcome.Alert.AffectedCrop)
	assert.Equal(t, float64(2000.0), outcome.Alert.RadiusMeters)
	assert.NotZero(t, outcome.Alert.ID)
}

func TestAlertService_ReportDisease_DefaultsForMissingCrop(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockDispatch := mockUC.NewMockDispatchUsecase(t)
	mockHeatmap := mockUC.NewMockHeatmapUsecase(t)
	service := NewAlertService(mockAlertRepo, mockDispatch, mockHeatmap, newAlertTestConfig(), slog.Default())

	ctx := context.Background()

	mockAlertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(nil)
	mockDispatch.EXPECT().
		NotifyNearby(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(0, nil)
	mockHeatmap.EXPECT().
		RecordPoint(ctx, "rust", entity.SeverityHigh, 10.0, 20.0).
		Return(&entity.HeatmapPoint{Count: 1}, nil)

	outcome, err := service.ReportDisease(ctx, usecase.DiseaseReport{
		Disease:   "rust",
		Severity:  entity.SeverityHigh,
		Latitude:  10.0,
		Longitude: 20.0,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.UnknownCrop, outcome.Alert.AffectedCrop)
}

func TestAlertService_ReportDisease_LowSeverityIsNoOp(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockDispatch := mockUC.NewMockDispatchUsecase(t)
	mockHeatmap := mockUC.NewMockHeatmapUsecase(t)
	service := NewAlertService(mockAlertRepo, mockDispatch, mockHeatmap, newAlertTestConfig(), slog.Default())

	// No repository or dispatch expectations: a low severity report must not
	// touch storage, dispatch, or the heatmap.
	outcome, err := service.ReportDisease(context.Background(), usecase.DiseaseReport{
		Disease:   "mild mildew",
		Severity:  entity.SeverityLow,
		Latitude:  23.5,
		Longitude: 120.5,
	})
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.False(t, outcome.AlertCreated)
	assert.Nil(t, outcome.Alert)
	assert.Zero(t, outcome.NotifiedCount)
}

func TestAlertService_ReportDisease_InvalidSeverity(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockDispatch := mockUC.NewMockDispatchUsecase(t)
	mockHeatmap := mockUC.NewMockHeatmapUsecase(t)
	service := NewAlertService(mockAlertRepo, mockDispatch, mockHeatmap, newAlertTestConfig(), slog.Default())

	outcome, err := service.ReportDisease(context.Background(), usecase.DiseaseReport{
		Disease:   "blight",
		Severity:  entity.Severity("catastrophic"),
		Latitude:  23.5,
		Longitude: 120.5,
	})
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSeverity)
}

func TestAlertService_ReportDisease_InvalidCoordinates(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockDispatch := mockUC.NewMockDispatchUsecase(t)
	mockHeatmap := mockUC.NewMockHeatmapUsecase(t)
	service := NewAlertService(mockAlertRepo, mockDispatch, mockHeatmap, newAlertTestConfig(), slog.Default())

	outcome, err := service.ReportDisease(context.Background(), usecase.DiseaseReport{
		Disease:   "blight",
		Severity:  entity.SeverityHigh,
		Latitude:  91.0,
		Longitude: 120.5,
	})
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestAlertService_ReportDisease_MissingDisease(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockDispatch := mockUC.NewMockDispatchUsecase(t)
	mockHeatmap := mockUC.NewMockHeatmapUsecase(t)
	service := NewAlertService(mockAlertRepo, mockDispatch, mockHeatmap, newAlertTestConfig(), slog.Default())

	outcome, err := service.ReportDisease(context.Background(), usecase.DiseaseReport{
		Disease:   "   ",
		Severity:  entity.SeverityHigh,
		Latitude:  23.5,
		Longitude: 120.5,
	})
	assert.Nil(t, outcome)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAlertService_ReportDisease_DispatchFailureDoesNotFailReport(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockDispatch := mockUC.NewMockDispatchUsecase(t)
	mockHeatmap := mockUC.NewMockHeatmapUsecase(t)
	service := NewAlertService(mockAlertRepo, mockDispatch, mockHeatmap, newAlertTestConfig(), slog.Default())

	ctx := context.Background()

	mockAlertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(nil)
	mockDispatch.EXPECT().
		NotifyNearby(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(0, errors.New("fcm unavailable"))
	mockHeatmap.EXPECT().
		RecordPoint(ctx, "blight", entity.SeverityHigh, 23.5, 120.5).
		Return(nil, errors.New("db down"))

	outcome, err := service.ReportDisease(ctx, usecase.DiseaseReport{
		Disease:   "blight",
		Severity:  entity.SeverityHigh,
		Latitude:  23.5,
		Longitude: 120.5,
	})
	require.NoError(t, err)
	assert.True(t, outcome.AlertCreated)
	assert.Zero(t, outcome.NotifiedCount)
}

func TestAlertService_ReportDisease_CreateFailurePropagates(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockDispatch := mockUC.NewMockDispatchUsecase(t)
	mockHeatmap := mockUC.NewMockHeatmapUsecase(t)
	service := NewAlertService(mockAlertRepo, mockDispatch, mockHeatmap, newAlertTestConfig(), slog.Default())

	ctx := context.Background()
	createErr := errors.New("insert failed")

	mockAlertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(createErr)

	outcome, err := service.ReportDisease(ctx, usecase.DiseaseReport{
		Disease:   "blight",
		Severity:  entity.SeverityHigh,
		Latitude:  23.5,
		Longitude: 120.5,
	})
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, createErr)
}

func TestAlertService_ListAlertsNear_DefaultRadius(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockDispatch := mockUC.NewMockDispatchUsecase(t)
	mockHeatmap := mockUC.NewMockHeatmapUsecase(t)
	service := NewAlertService(mockAlertRepo, mockDispatch, mockHeatmap, newAlertTestConfig(), slog.Default())

	ctx := context.Background()
	expected := []*entity.Alert{{Disease: "blight"}}

	mockAlertRepo.EXPECT().
		FindWithinRadius(ctx, 23.5, 120.5, 2000.0).
		Return(expected, nil)

	alerts, err := service.ListAlertsNear(ctx, 23.5, 120.5, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}

func TestAlertService_ListAlertsNear_InvalidCoordinates(t *testing.T) {
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockDispatch := mockUC.NewMockDispatchUsecase(t)
	mockHeatmap := mockUC.NewMockHeatmapUsecase(t)
	service := NewAlertService(mockAlertRepo, mockDispatch, mockHeatmap, newAlertTestConfig(), slog.Default())

	alerts, err := service.ListAlertsNear(context.Background(), 23.5, 181.0, 500)
	assert.Nil(t, alerts)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}
