// Package constants holds shared domain-level constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)

const (
	// DefaultAlertRadiusMeters is the notification radius applied to an alert
	// when the report does not carry one.
	DefaultAlertRadiusMeters = 2000.0

	// HeatmapMergeRadiusMeters is the clustering threshold for heatmap points.
	// Two reports of the same disease and severity closer than this are
	// merged into a single point. Deliberately much tighter than the alert
	// radius so distinct outbreak foci stay distinguishable.
	HeatmapMergeRadiusMeters = 100.0

	// UnknownCrop is recorded when a report does not name the affected crop.
	UnknownCrop = "unknown"
)
