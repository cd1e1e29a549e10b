package model

import (
	"time"
)

// UserLocationModel mirrors the 'user_locations' table, one row per user.
// Geohash uses the "C" collation so that range bounds compare byte-wise.
type UserLocationModel struct {
	UserID         string    `gorm:"type:varchar(128);primaryKey"`
	Latitude       float64   `gorm:"type:double precision;not null"`
	Longitude      float64   `gorm:"type:double precision;not null"`
	Accuracy       float64   `gorm:"type:double precision;not null"`
	Geohash        string    `gorm:"type:varchar(12) COLLATE \"C\";not null;index:idx_user_locations_geohash"`
	SharingEnabled bool      `gorm:"not null"`
	LastUpdated    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}
