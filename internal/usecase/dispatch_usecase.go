package usecase

import (
	"context"

	"agroalert/internal/domain/entity"
)

// DispatchUsecase defines the interface for notifying users affected by an alert
type DispatchUsecase interface {
	// NotifyNearby finds every user within the alert's radius, records them as
	// notified on the alert, and hands the alert off for channel delivery.
	// It returns the number of users notified.
	NotifyNearby(ctx context.Context, alert *entity.Alert) (int, error)
}
