// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Alert represents a persisted medium/high-severity disease report with a
// notification radius. Its notified-user list is append-only: the dispatcher
// adds each user at most once, and retried dispatches must not duplicate
// entries.
type Alert struct {
	ID            uuid.UUID   `json:"id"`             // The Global Unique Identifier (GUID) for the alert.
	Disease       string      `json:"disease"`        // The reported disease name.
	Severity      Severity    `json:"severity"`       // One of low/medium/high (low never persists).
	Latitude      float64     `json:"latitude"`       // The geographic latitude of the report.
	Longitude     float64     `json:"longitude"`      // The geographic longitude of the report.
	RadiusMeters  float64     `json:"radius_meters"`  // Notification radius in meters.
	AffectedCrop  string      `json:"affected_crop"`  // Affected crop, "unknown" when unspecified.
	Timestamp     time.Time   `json:"timestamp"`      // Creation time of the alert.
	NotifiedUsers []uuid.UUID `json:"notified_users"` // IDs of users already notified, in notification order.
}

// MarkNotified appends userID to the notified list if it is not already
// present and reports whether the list changed.
func (a *Alert) MarkNotified(userID uuid.UUID) bool {
	for _, id := range a.NotifiedUsers {
		if id == userID {
			return false
		}
	}
	a.NotifiedUsers = append(a.NotifiedUsers, userID)

	return true
}
