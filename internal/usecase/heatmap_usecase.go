package usecase

import (
	"context"

	"agroalert/internal/domain/entity"
	"agroalert/internal/domain/repository"
)

// HeatmapUsecase defines the interface for heatmap aggregation and queries
type HeatmapUsecase interface {
	// RecordPoint folds one report into the heatmap: an existing point of the
	// same disease and severity within the merge radius has its count
	// incremented, otherwise a new point is created with count 1.
	RecordPoint(ctx context.Context, disease string, severity entity.Severity, lat, lon float64) (*entity.HeatmapPoint, error)

	// ListPoints returns heatmap points matching the filter, newest first.
	ListPoints(ctx context.Context, filter repository.HeatmapFilter) ([]*entity.HeatmapPoint, error)
}
