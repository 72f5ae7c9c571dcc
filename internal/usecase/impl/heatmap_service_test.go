package impl

import (
	"context"
	"log/slog"
	"testing"

	"agroalert/config"
	"agroalert/internal/domain/entity"
	"agroalert/internal/domain/repository"
	mockRepo "agroalert/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newHeatmapFixture wires a heatmap service whose transaction manager runs
// the callback against a mocked transactional repository.
func newHeatmapFixture(t *testing.T) (*mockRepo.MockHeatmapRepository, *mockRepo.MockHeatmapRepository, *heatmapService) {
	t.Helper()

	txRepo := mockRepo.NewMockHeatmapRepository(t)
	listRepo := mockRepo.NewMockHeatmapRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewHeatmapRepository().Return(txRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	cfg := &config.Config{
		Alerting: &config.AlertingConfig{
			DefaultRadiusMeters:      2000.0,
			HeatmapMergeRadiusMeters: 100.0,
		},
	}

	svc := NewHeatmapService(txManager, listRepo, cfg, slog.Default()).(*heatmapService)

	return txRepo, listRepo, svc
}

func TestHeatmapService_RecordPoint_CreatesNewCluster(t *testing.T) {
	txRepo, _, svc := newHeatmapFixture(t)
	ctx := context.Background()

	txRepo.EXPECT().
		AcquireClusterLock(ctx, "late blight", entity.SeverityHigh).
		Return(nil)

	txRepo.EXPECT().
		FindNearbyForUpdate(ctx, "late blight", entity.SeverityHigh, 23.5, 120.5, 100.0).
		Return(nil, repository.ErrHeatmapPointNotFound)

	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.HeatmapPoint")).
		Return(nil)

	point, err := svc.RecordPoint(ctx, "late blight", entity.SeverityHigh, 23.5, 120.5)
	require.NoError(t, err)
	require.NotNil(t, point)
	assert.Equal(t, 1, point.Count)
	assert.Equal(t, "late blight", point.Disease)
	assert.Equal(t, entity.SeverityHigh, point.Severity)
	assert.NotZero(t, point.ID)
}

func TestHeatmapService_RecordPoint_MergesIntoNearbyCluster(t *testing.T) {
	txRepo, _, svc := newHeatmapFixture(t)
	ctx := context.Background()

	existing := &entity.HeatmapPoint{
		ID:       uuid.New(),
		Disease:  "late blight",
		Severity: entity.SeverityHigh,
		Count:    4,
	}

	txRepo.EXPECT().
		AcquireClusterLock(ctx, "late blight", entity.SeverityHigh).
		Return(nil)

	txRepo.EXPECT().
		FindNearbyForUpdate(ctx, "late blight", entity.SeverityHigh, 23.5, 120.5, 100.0).
		Return(existing, nil)

	updated := &entity.HeatmapPoint{
		ID:       existing.ID,
		Disease:  existing.Disease,
		Severity: existing.Severity,
		Count:    5,
	}
	txRepo.EXPECT().
		IncrementCount(ctx, existing.ID).
		Return(updated, nil)

	point, err := svc.RecordPoint(ctx, "late blight", entity.SeverityHigh, 23.5, 120.5)
	require.NoError(t, err)
	assert.Equal(t, 5, point.Count)
	assert.Equal(t, existing.ID, point.ID)
}

func TestHeatmapService_RecordPoint_LockFailureRollsBack(t *testing.T) {
	txRepo, _, svc := newHeatmapFixture(t)
	ctx := context.Background()
	lockErr := errors.New("lock timeout")

	txRepo.EXPECT().
		AcquireClusterLock(ctx, "rust", entity.SeverityMedium).
		Return(lockErr)

	point, err := svc.RecordPoint(ctx, "rust", entity.SeverityMedium, 10.0, 20.0)
	assert.Nil(t, point)
	assert.ErrorIs(t, err, lockErr)
}

func TestHeatmapService_ListPoints_PassesFilter(t *testing.T) {
	_, listRepo, svc := newHeatmapFixture(t)
	ctx := context.Background()

	filter := repository.HeatmapFilter{Disease: "rust", Severity: entity.SeverityMedium}
	expected := []*entity.HeatmapPoint{{Disease: "rust", Count: 2}}

	listRepo.EXPECT().
		List(ctx, filter).
		Return(expected, nil)

	points, err := svc.ListPoints(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, points)
}

func TestHeatmapService_ListPoints_InvalidSeverityFilter(t *testing.T) {
	_, _, svc := newHeatmapFixture(t)

	points, err := svc.ListPoints(context.Background(), repository.HeatmapFilter{Severity: entity.Severity("bogus")})
	assert.Nil(t, points)
	assert.Error(t, err)
}
