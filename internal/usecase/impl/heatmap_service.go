package impl

import (
	"context"
	"log/slog"
	"time"

	"agroalert/config"
	deliverycontext "agroalert/internal/delivery/context"
	"agroalert/internal/domain/entity"
	"agroalert/internal/domain/repository"
	"agroalert/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type heatmapService struct {
	txManager   repository.TransactionManager
	heatmapRepo repository.HeatmapRepository
	alerting    *config.AlertingConfig
	logger      *slog.Logger
}

// NewHeatmapService creates a new heatmap service instance
func NewHeatmapService(
	txManager repository.TransactionManager,
	heatmapRepo repository.HeatmapRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.HeatmapUsecase {
	return &heatmapService{
		txManager:   txManager,
		heatmapRepo: heatmapRepo,
		alerting:    cfg.Alerting,
		logger:      logger,
	}
}

// RecordPoint folds one report into the heatmap. The whole find-or-create
// runs in a single transaction: an advisory lock on the (disease, severity)
// pair serializes concurrent reports, so two simultaneous reports of the
// same outbreak never produce duplicate points inside the merge radius.
func (s *heatmapService) RecordPoint(ctx context.Context, disease string, severity entity.Severity, lat, lon float64) (*entity.HeatmapPoint, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	var result *entity.HeatmapPoint

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewHeatmapRepository()

		if err := repo.AcquireClusterLock(ctx, disease, severity); err != nil {
			return err
		}

		existing, err := repo.FindNearbyForUpdate(ctx, disease, severity, lat, lon, s.alerting.HeatmapMergeRadiusMeters)
		if err != nil {
			if !errors.Is(err, repository.ErrHeatmapPointNotFound) {
				return err
			}

			// No point within the merge radius, start a new one
			point := &entity.HeatmapPoint{
				ID:        uuid.New(),
				Disease:   disease,
				Severity:  severity,
				Latitude:  lat,
				Longitude: lon,
				Count:     1,
				Timestamp: time.Now(),
			}
			if err := repo.Create(ctx, point); err != nil {
				return err
			}
			result = point

			return nil
		}

		updated, err := repo.IncrementCount(ctx, existing.ID)
		if err != nil {
			return err
		}
		result = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Heatmap point recorded",
		slog.String("disease", disease),
		slog.String("severity", string(severity)),
		slog.Int("count", result.Count),
	)

	return result, nil
}

// ListPoints returns heatmap points matching the filter, newest first.
func (s *heatmapService) ListPoints(ctx context.Context, filter repository.HeatmapFilter) ([]*entity.HeatmapPoint, error) {
	if filter.Severity != "" && !filter.Severity.Valid() {
		return nil, errors.New("invalid severity filter")
	}

	return s.heatmapRepo.List(ctx, filter)
}
