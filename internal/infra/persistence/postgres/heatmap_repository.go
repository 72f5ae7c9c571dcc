// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/repository"
	"agroalert/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// heatmapRepository implements the repository.HeatmapRepository interface.
type heatmapRepository struct {
	db *gorm.DB
}

// NewHeatmapRepository is the constructor for heatmapRepository.
func NewHeatmapRepository(db *gorm.DB) repository.HeatmapRepository {
	return &heatmapRepository{
		db: db,
	}
}

// AcquireClusterLock takes a transaction-scoped advisory lock keyed on the
// (disease, severity) pair. Concurrent reports for the same pair serialize
// here, so the subsequent find-or-create has at most one winner per cluster.
// The lock is released automatically on commit or rollback.
func (repo *heatmapRepository) AcquireClusterLock(ctx context.Context, disease string, severity entity.Severity) error {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(? || ':' || ?))", disease, string(severity)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to acquire heatmap cluster lock")
	}

	return nil
}

// FindNearbyForUpdate returns one heatmap point of the same disease and
// severity within radiusMeters of the given coordinates, row-locked for
// update. ST_DWithin on geography is inclusive of the boundary.
func (repo *heatmapRepository) FindNearbyForUpdate(ctx context.Context, disease string, severity entity.Severity, lat, lon, radiusMeters float64) (*entity.HeatmapPoint, error) {
	var pointM model.HeatmapPointModel

	query := `
		SELECT *
		FROM heatmap_points
		WHERE disease = ?
		  AND severity = ?
		  AND ST_DWithin(
		    location,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326),
		    ?
		  )
		LIMIT 1
		FOR UPDATE
	`

	result := repo.db.WithContext(ctx).
		Raw(query, disease, string(severity), lon, lat, radiusMeters).
		Scan(&pointM)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find nearby heatmap point")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrHeatmapPointNotFound
	}

	return toHeatmapDomain(&pointM), nil
}

// IncrementCount adds one report to the point and refreshes its timestamp.
func (repo *heatmapRepository) IncrementCount(ctx context.Context, id uuid.UUID) (*entity.HeatmapPoint, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.HeatmapPointModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"count":     gorm.Expr("count + 1"),
			"timestamp": time.Now(),
		})

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment heatmap count")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrHeatmapPointNotFound
	}

	var pointM model.HeatmapPointModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pointM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload heatmap point")
	}

	return toHeatmapDomain(&pointM), nil
}

// Create persists a new heatmap point.
func (repo *heatmapRepository) Create(ctx context.Context, point *entity.HeatmapPoint) error {
	pointM := fromHeatmapDomain(point)

	if err := repo.db.WithContext(ctx).Create(pointM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create heatmap point")
	}

	// Update the entity with generated values
	point.ID = pointM.ID

	return nil
}

// List returns all heatmap points matching the filter, newest first.
func (repo *heatmapRepository) List(ctx context.Context, filter repository.HeatmapFilter) ([]*entity.HeatmapPoint, error) {
	var pointModels []*model.HeatmapPointModel

	query := repo.db.WithContext(ctx)
	if filter.Disease != "" {
		query = query.Where("disease = ?", filter.Disease)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", string(filter.Severity))
	}

	if err := query.
		Order("timestamp DESC").
		Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list heatmap points")
	}

	points := make([]*entity.HeatmapPoint, 0, len(pointModels))
	for _, pointM := range pointModels {
		points = append(points, toHeatmapDomain(pointM))
	}

	return points, nil
}

// --- Mapper Functions ---

// toHeatmapDomain converts a GORM HeatmapPointModel to a domain HeatmapPoint entity.
func toHeatmapDomain(data *model.HeatmapPointModel) *entity.HeatmapPoint {
	if data == nil {
		return nil
	}

	return &entity.HeatmapPoint{
		ID:        data.ID,
		Disease:   data.Disease,
		Severity:  entity.Severity(data.Severity),
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Count:     data.Count,
		Timestamp: data.Timestamp,
	}
}

// fromHeatmapDomain converts a domain HeatmapPoint entity to a GORM HeatmapPointModel.
func fromHeatmapDomain(data *entity.HeatmapPoint) *model.HeatmapPointModel {
	if data == nil {
		return nil
	}

	return &model.HeatmapPointModel{
		ID:        data.ID,
		Disease:   data.Disease,
		Severity:  string(data.Severity),
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Count:     data.Count,
		Timestamp: data.Timestamp,
	}
}
