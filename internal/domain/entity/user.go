// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferences holds the per-channel opt-in flags for a grower.
type NotificationPreferences struct {
	Email bool `json:"email"` // Receive alerts by email.
	SMS   bool `json:"sms"`   // Receive alerts by SMS.
	Push  bool `json:"push"`  // Receive alerts as push notifications.
}

// User represents a registered grower with a geo-indexed home location.
// From the alerting core's perspective users are read-only: they are created
// at registration and looked up by proximity when an alert fires.
type User struct {
	ID          uuid.UUID               `json:"id"`           // The Global Unique Identifier (GUID) for the user.
	Name        string                  `json:"name"`         // Display name.
	Email       string                  `json:"email"`        // Contact email, unique across users.
	Phone       string                  `json:"phone"`        // Contact phone number for SMS delivery.
	Latitude    float64                 `json:"latitude"`     // The geographic latitude of the user's field.
	Longitude   float64                 `json:"longitude"`    // The geographic longitude of the user's field.
	Crops       []string                `json:"crops"`        // Crop types the user cultivates.
	Preferences NotificationPreferences `json:"preferences"`  // Per-channel notification opt-ins.
	DeviceToken string                  `json:"device_token"` // FCM token for push delivery.
	CreatedAt   time.Time               `json:"created_at"`   // Timestamp of registration.
	UpdatedAt   time.Time               `json:"updated_at"`   // Timestamp of the last modification.
}
