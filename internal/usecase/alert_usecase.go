package usecase

import (
	"context"

	"agroalert/internal/domain/entity"
)

// DiseaseReport carries a single field observation of a crop disease.
type DiseaseReport struct {
	Disease   string          `json:"disease"`
	Severity  entity.Severity `json:"severity"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	CropType  string          `json:"crop_type"`
}

// ReportOutcome summarizes what happened to a disease report. Low-severity
// reports are accepted but produce no alert, so Alert may be nil.
type ReportOutcome struct {
	Alert         *entity.Alert
	NotifiedCount int
	AlertCreated  bool
}

// AlertUsecase defines the interface for disease report intake and alert queries
type AlertUsecase interface {
	// ReportDisease processes a disease report: validates it, creates an alert
	// for medium or high severity, dispatches notifications, and feeds the
	// heatmap. Dispatch and heatmap failures do not fail the report.
	ReportDisease(ctx context.Context, report DiseaseReport) (*ReportOutcome, error)

	// ListAlertsNear returns alerts within radiusMeters of the given point,
	// nearest first. A non-positive radius falls back to the configured default.
	ListAlertsNear(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.Alert, error)
}
