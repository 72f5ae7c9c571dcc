package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "agroalert/internal/delivery/context"
	"agroalert/internal/domain/entity"
	"agroalert/internal/domain/repository"
	"agroalert/internal/domain/service"
	"agroalert/internal/usecase"
	"agroalert/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type dispatchService struct {
	userRepo  repository.UserRepository
	alertRepo repository.AlertRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	userRepo repository.UserRepository,
	alertRepo repository.AlertRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		userRepo:  userRepo,
		alertRepo: alertRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// NotifyNearby finds every user within the alert's radius, records the new
// ones as notified, and publishes the alert for asynchronous channel
// delivery. Users already on the notified list are skipped, so retried
// dispatches stay idempotent. The publish step is fire-and-forget: a broker
// outage must not undo the notified bookkeeping.
func (s *dispatchService) NotifyNearby(ctx context.Context, alert *entity.Alert) (int, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	users, err := s.userRepo.FindWithinRadius(ctx, alert.Latitude, alert.Longitude, alert.RadiusMeters)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find users within alert radius")
	}

	if len(users) == 0 {
		logger.Info("No users within alert radius",
			slog.String("alert_id", alert.ID.String()),
			slog.String("radius", util.FormatDistance(alert.RadiusMeters)),
		)

		return 0, nil
	}

	newlyNotified := make([]uuid.UUID, 0, len(users))
	for _, user := range users {
		if !alert.MarkNotified(user.ID) {
			continue
		}
		newlyNotified = append(newlyNotified, user.ID)

		distance := util.DistanceMeters(alert.Latitude, alert.Longitude, user.Latitude, user.Longitude)
		logger.Info("User matched for alert notification",
			slog.String("alert_id", alert.ID.String()),
			slog.String("user_id", user.ID.String()),
			slog.String("distance", util.FormatDistance(distance)),
		)
	}

	if len(newlyNotified) > 0 {
		if err := s.alertRepo.AppendNotifiedUsers(ctx, alert.ID, newlyNotified); err != nil {
			return 0, errors.Wrap(err, "failed to record notified users")
		}
	}

	s.publishDeliveryEvent(ctx, alert, logger)

	return len(newlyNotified), nil
}

// publishDeliveryEvent hands the alert off to the worker. Failures are
// logged and swallowed.
func (s *dispatchService) publishDeliveryEvent(ctx context.Context, alert *entity.Alert, logger *slog.Logger) {
	userIDs := make([]string, 0, len(alert.NotifiedUsers))
	for _, id := range alert.NotifiedUsers {
		userIDs = append(userIDs, id.String())
	}

	event := &service.AlertEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		AlertID:         alert.ID.String(),
		Disease:         alert.Disease,
		Severity:        string(alert.Severity),
		Latitude:        alert.Latitude,
		Longitude:       alert.Longitude,
		AffectedCrop:    alert.AffectedCrop,
		RadiusMeters:    alert.RadiusMeters,
		NotifiedUserIDs: userIDs,
	}

	if err := s.publisher.PublishAlertEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish alert delivery event",
			slog.String("alert_id", alert.ID.String()),
			slog.String("error", fmt.Sprintf("%v", err)),
		)
	}
}
