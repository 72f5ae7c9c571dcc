package service

import (
	"context"
)

// AlertEvent represents a disease alert handed off for asynchronous channel
// delivery by the alert worker. NotifiedUserIDs carries the users the
// dispatcher already matched, so the worker never re-runs the geo query.
type AlertEvent struct {
	RequestID       string   `json:"request_id,omitempty"` // For distributed tracing
	AlertID         string   `json:"alert_id"`
	Disease         string   `json:"disease"`
	Severity        string   `json:"severity"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	AffectedCrop    string   `json:"affected_crop,omitempty"`
	RadiusMeters    float64  `json:"radius_meters"`
	NotifiedUserIDs []string `json:"notified_user_ids"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert event for async delivery processing
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
