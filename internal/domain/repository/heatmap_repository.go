// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"agroalert/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHeatmapPointNotFound is returned when no heatmap point exists in range.
var ErrHeatmapPointNotFound = errors.New("heatmap point not found")

// HeatmapFilter narrows a heatmap listing. Empty fields match everything.
type HeatmapFilter struct {
	Disease  string
	Severity entity.Severity
}

// HeatmapRepository defines the interface for heatmap aggregation storage.
//
// The find-or-create sequence used by the aggregator must run inside a
// transaction (see TransactionManager) with AcquireClusterLock taken first;
// the lock serializes concurrent reports for the same (disease, severity)
// pair so exactly one point is created per cluster.
type HeatmapRepository interface {
	// AcquireClusterLock takes a transaction-scoped advisory lock for the
	// given (disease, severity) pair. Valid only inside a transaction; the
	// lock is released on commit or rollback.
	AcquireClusterLock(ctx context.Context, disease string, severity entity.Severity) error

	// FindNearbyForUpdate returns one point of the same disease and severity
	// within radiusMeters of the given coordinates, row-locked for update.
	// Returns ErrHeatmapPointNotFound when the cluster has no point yet.
	FindNearbyForUpdate(ctx context.Context, disease string, severity entity.Severity, lat, lon, radiusMeters float64) (*entity.HeatmapPoint, error)

	// IncrementCount adds one report to the point and refreshes its timestamp,
	// returning the updated point.
	IncrementCount(ctx context.Context, id uuid.UUID) (*entity.HeatmapPoint, error)

	// Create persists a new heatmap point.
	Create(ctx context.Context, point *entity.HeatmapPoint) error

	// List returns all points matching the filter. An empty result is not an error.
	List(ctx context.Context, filter HeatmapFilter) ([]*entity.HeatmapPoint, error)
}
