package impl

import (
	"context"
	"log/slog"
	"testing"

	"agroalert/internal/domain/entity"
	"agroalert/internal/domain/service"
	mockRepo "agroalert/internal/mocks/repository"
	mockSvc "agroalert/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAlert() *entity.Alert {
	return &entity.Alert{
		ID:           uuid.New(),
		Disease:      "late blight",
		Severity:     entity.SeverityHigh,
		Latitude:     23.5,
		Longitude:    120.5,
		RadiusMeters: 2000.0,
		AffectedCrop: "potato",
	}
}

func TestDispatchService_NotifyNearby_NotifiesUsersInRadius(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := NewDispatchService(mockUserRepo, mockAlertRepo, mockPublisher, slog.Default())

	ctx := context.Background()
	alert := newTestAlert()
	userA := &entity.User{ID: uuid.New(), Latitude: 23.501, Longitude: 120.501}
	userB := &entity.User{ID: uuid.New(), Latitude: 23.51, Longitude: 120.51}

	mockUserRepo.EXPECT().
		FindWithinRadius(ctx, alert.Latitude, alert.Longitude, alert.RadiusMeters).
		Return([]*entity.User{userA, userB}, nil)

	mockAlertRepo.EXPECT().
		AppendNotifiedUsers(ctx, alert.ID, []uuid.UUID{userA.ID, userB.ID}).
		Return(nil)

	mockPublisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(nil)

	count, err := dispatcher.NotifyNearby(ctx, alert)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.ElementsMatch(t, []uuid.UUID{userA.ID, userB.ID}, alert.NotifiedUsers)
}

func TestDispatchService_NotifyNearby_SkipsAlreadyNotifiedUsers(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := NewDispatchService(mockUserRepo, mockAlertRepo, mockPublisher, slog.Default())

	ctx := context.Background()
	alert := newTestAlert()
	alreadyNotified := &entity.User{ID: uuid.New(), Latitude: 23.501, Longitude: 120.501}
	fresh := &entity.User{ID: uuid.New(), Latitude: 23.51, Longitude: 120.51}
	alert.NotifiedUsers = []uuid.UUID{alreadyNotified.ID}

	mockUserRepo.EXPECT().
		FindWithinRadius(ctx, alert.Latitude, alert.Longitude, alert.RadiusMeters).
		Return([]*entity.User{alreadyNotified, fresh}, nil)

	// Only the fresh user gets appended
	mockAlertRepo.EXPECT().
		AppendNotifiedUsers(ctx, alert.ID, []uuid.UUID{fresh.ID}).
		Return(nil)

	mockPublisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(nil)

	count, err := dispatcher.NotifyNearby(ctx, alert)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, alert.NotifiedUsers, 2)
}

func TestDispatchService_NotifyNearby_NoUsersInRadius(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := NewDispatchService(mockUserRepo, mockAlertRepo, mockPublisher, slog.Default())

	ctx := context.Background()
	alert := newTestAlert()

	mockUserRepo.EXPECT().
		FindWithinRadius(ctx, alert.Latitude, alert.Longitude, alert.RadiusMeters).
		Return([]*entity.User{}, nil)

	count, err := dispatcher.NotifyNearby(ctx, alert)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, alert.NotifiedUsers)
}

func TestDispatchService_NotifyNearby_PublishFailureIsSwallowed(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := NewDispatchService(mockUserRepo, mockAlertRepo, mockPublisher, slog.Default())

	ctx := context.Background()
	alert := newTestAlert()
	user := &entity.User{ID: uuid.New(), Latitude: 23.501, Longitude: 120.501}

	mockUserRepo.EXPECT().
		FindWithinRadius(ctx, alert.Latitude, alert.Longitude, alert.RadiusMeters).
		Return([]*entity.User{user}, nil)

	mockAlertRepo.EXPECT().
		AppendNotifiedUsers(ctx, alert.ID, []uuid.UUID{user.ID}).
		Return(nil)

	mockPublisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Return(errors.New("broker unavailable"))

	count, err := dispatcher.NotifyNearby(ctx, alert)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDispatchService_NotifyNearby_EventCarriesAlertPayload(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := NewDispatchService(mockUserRepo, mockAlertRepo, mockPublisher, slog.Default())

	ctx := context.Background()
	alert := newTestAlert()
	user := &entity.User{ID: uuid.New(), Latitude: 23.501, Longitude: 120.501}

	mockUserRepo.EXPECT().
		FindWithinRadius(ctx, alert.Latitude, alert.Longitude, alert.RadiusMeters).
		Return([]*entity.User{user}, nil)

	mockAlertRepo.EXPECT().
		AppendNotifiedUsers(ctx, alert.ID, []uuid.UUID{user.ID}).
		Return(nil)

	var captured *service.AlertEvent
	mockPublisher.EXPECT().
		PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
		Run(func(_ context.Context, event *service.AlertEvent) {
			captured = event
		}).
		Return(nil)

	_, err := dispatcher.NotifyNearby(ctx, alert)
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, alert.ID.String(), captured.AlertID)
	assert.Equal(t, alert.Disease, captured.Disease)
	assert.Equal(t, string(alert.Severity), captured.Severity)
	assert.Equal(t, []string{user.ID.String()}, captured.NotifiedUserIDs)
}

func TestDispatchService_NotifyNearby_GeoQueryFailurePropagates(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := NewDispatchService(mockUserRepo, mockAlertRepo, mockPublisher, slog.Default())

	ctx := context.Background()
	alert := newTestAlert()
	queryErr := errors.New("connection refused")

	mockUserRepo.EXPECT().
		FindWithinRadius(ctx, alert.Latitude, alert.Longitude, alert.RadiusMeters).
		Return(nil, queryErr)

	count, err := dispatcher.NotifyNearby(ctx, alert)
	assert.Zero(t, count)
	assert.ErrorIs(t, err, queryErr)
}
