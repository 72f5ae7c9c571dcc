package model

import (
	"time"

	"github.com/google/uuid"
)

// HeatmapPointModel is the GORM-specific struct for the 'heatmap_points' table.
// One row per (disease, severity) cluster; nearby reports increment Count.
// Note: location GEOGRAPHY(POINT, 4326) column exists in database but is not mapped here.
// It is automatically calculated from Latitude/Longitude via database trigger.
type HeatmapPointModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Disease   string    `gorm:"type:text;not null;index:idx_heatmap_points_on_pair"`
	Severity  string    `gorm:"type:varchar(10);not null;index:idx_heatmap_points_on_pair"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	Count     int       `gorm:"not null;default:1"`
	Timestamp time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (HeatmapPointModel) TableName() string {
	return "heatmap_points"
}
