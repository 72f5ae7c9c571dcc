package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertModel is the GORM-specific struct for the 'alerts' table.
// It represents a persisted medium/high-severity disease report.
// Note: location GEOGRAPHY(POINT, 4326) column exists in database but is not mapped here.
// It is automatically calculated from Latitude/Longitude via database trigger.
// Use raw SQL queries with PostGIS functions (ST_Distance, ST_DWithin) for geospatial operations.
type AlertModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Disease      string    `gorm:"type:text;not null;index"`
	Severity     string    `gorm:"type:varchar(10);not null;index"`
	Latitude     float64   `gorm:"type:decimal(10,8);not null"`
	Longitude    float64   `gorm:"type:decimal(11,8);not null"`
	RadiusMeters float64   `gorm:"type:decimal(10,2);not null;default:2000.0"`
	AffectedCrop string    `gorm:"type:varchar(100);not null;default:'unknown'"`
	Timestamp    time.Time `gorm:"not null;index"`

	NotifiedUsers []AlertNotifiedUserModel `gorm:"foreignKey:AlertID"`
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}

// AlertNotifiedUserModel is the GORM-specific struct for the 'alert_notified_users' table.
// The composite primary key makes the dispatcher's append idempotent: inserting
// an already-notified user is a no-op via ON CONFLICT DO NOTHING.
type AlertNotifiedUserModel struct {
	AlertID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	NotifiedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AlertNotifiedUserModel) TableName() string {
	return "alert_notified_users"
}
