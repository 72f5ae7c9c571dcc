// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"agroalert/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAlertNotFound is returned when an alert is not found.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository defines the interface for alert-related database operations.
type AlertRepository interface {
	// Create persists a new alert.
	Create(ctx context.Context, alert *entity.Alert) error

	// FindByID retrieves an alert by its unique ID, including its notified-user list.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)

	// FindWithinRadius performs a geographic query returning every alert whose
	// location lies within radiusMeters of the given point, ordered nearest
	// first. The boundary is inclusive.
	FindWithinRadius(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.Alert, error)

	// AppendNotifiedUsers records the given users as notified for the alert.
	// The operation is idempotent: IDs already recorded are skipped, so a
	// retried dispatch never produces duplicate entries.
	AppendNotifiedUsers(ctx context.Context, alertID uuid.UUID, userIDs []uuid.UUID) error
}
