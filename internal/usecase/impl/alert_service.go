package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"agroalert/config"
	deliverycontext "agroalert/internal/delivery/context"
	"agroalert/internal/domain/constants"
	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/repository"
	"agroalert/internal/usecase"
	"agroalert/internal/util"

	"github.com/google/uuid"
)

type alertService struct {
	alertRepo  repository.AlertRepository
	dispatchUC usecase.DispatchUsecase
	heatmapUC  usecase.HeatmapUsecase
	alerting   *config.AlertingConfig
	logger     *slog.Logger
}

// NewAlertService creates a new alert service instance
func NewAlertService(
	alertRepo repository.AlertRepository,
	dispatchUC usecase.DispatchUsecase,
	heatmapUC usecase.HeatmapUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AlertUsecase {
	return &alertService{
		alertRepo:  alertRepo,
		dispatchUC: dispatchUC,
		heatmapUC:  heatmapUC,
		alerting:   cfg.Alerting,
		logger:     logger,
	}
}

// ReportDisease processes an incoming disease report. Medium and high
// severity reports become alerts and trigger notification dispatch plus
// heatmap aggregation; low severity reports are acknowledged and dropped.
// Dispatch and heatmap failures never fail the report itself: the alert is
// already persisted, and losing a notification is preferable to rejecting
// the observation.
func (s *alertService) ReportDisease(ctx context.Context, report usecase.DiseaseReport) (*usecase.ReportOutcome, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if strings.TrimSpace(report.Disease) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("disease name is required")
	}
	if !report.Severity.Valid() {
		return nil, domainerrors.ErrInvalidSeverity
	}
	if !util.ValidCoordinates(report.Latitude, report.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	if !report.Severity.TriggersAlert() {
		logger.Info("Low severity report acknowledged without alert",
			slog.String("disease", report.Disease),
		)

		return &usecase.ReportOutcome{AlertCreated: false}, nil
	}

	crop := strings.TrimSpace(report.CropType)
	if crop == "" {
		crop = constants.UnknownCrop
	}

	alert := &entity.Alert{
		ID:           uuid.New(),
		Disease:      report.Disease,
		Severity:     report.Severity,
		Latitude:     report.Latitude,
		Longitude:    report.Longitude,
		RadiusMeters: s.alerting.DefaultRadiusMeters,
		AffectedCrop: crop,
		Timestamp:    time.Now(),
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}

	notifiedCount, err := s.dispatchUC.NotifyNearby(ctx, alert)
	if err != nil {
		logger.Error("Failed to dispatch alert notifications",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
	}

	if _, err := s.heatmapUC.RecordPoint(ctx, alert.Disease, alert.Severity, alert.Latitude, alert.Longitude); err != nil {
		logger.Error("Failed to record heatmap point",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
	}

	return &usecase.ReportOutcome{
		Alert:         alert,
		NotifiedCount: notifiedCount,
		AlertCreated:  true,
	}, nil
}

// ListAlertsNear returns alerts within radiusMeters of the given point,
// nearest first.
func (s *alertService) ListAlertsNear(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.Alert, error) {
	if !util.ValidCoordinates(lat, lon) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	if radiusMeters <= 0 {
		radiusMeters = s.alerting.DefaultRadiusMeters
	}

	return s.alertRepo.FindWithinRadius(ctx, lat, lon, radiusMeters)
}
