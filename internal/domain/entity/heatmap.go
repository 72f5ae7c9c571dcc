// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HeatmapPoint represents a spatial cluster of disease reports for one
// (disease, severity) pair. Reports within the merge radius of an existing
// point increment its count instead of creating a new point.
type HeatmapPoint struct {
	ID        uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the point.
	Disease   string    `json:"disease"`   // The reported disease name.
	Severity  Severity  `json:"severity"`  // Severity shared by all reports in the cluster.
	Latitude  float64   `json:"latitude"`  // Latitude of the first report in the cluster.
	Longitude float64   `json:"longitude"` // Longitude of the first report in the cluster.
	Count     int       `json:"count"`     // Number of merged reports, >= 1.
	Timestamp time.Time `json:"timestamp"` // Time of the most recent merged report.
}
