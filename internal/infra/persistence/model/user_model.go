package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel is the GORM-specific struct for the 'users' table.
// Note: a location GEOGRAPHY(POINT, 4326) column exists in the database but
// is not mapped here. It is automatically calculated from Latitude/Longitude
// via database trigger. Use raw SQL queries with PostGIS functions
// (ST_Distance, ST_DWithin) for geospatial operations.
type UserModel struct {
	ID          uuid.UUID                      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string                         `gorm:"type:varchar(100);not null"`
	Email       string                         `gorm:"type:varchar(255);unique;not null"`
	Phone       string                         `gorm:"type:varchar(32)"`
	Latitude    float64                        `gorm:"type:decimal(10,8);not null"`
	Longitude   float64                        `gorm:"type:decimal(11,8);not null"`
	Crops       datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	NotifyEmail bool                           `gorm:"not null;default:true"`
	NotifySMS   bool                           `gorm:"not null;default:false"`
	NotifyPush  bool                           `gorm:"not null;default:false"`
	DeviceToken string                         `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
