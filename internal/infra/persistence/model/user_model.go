package model

import (
	"time"
)

// UserModel mirrors the 'users' table. UID is issued by the auth provider.
type UserModel struct {
	UID                      string `gorm:"type:varchar(128);primaryKey"`
	DisplayName              string `gorm:"type:varchar(100);not null;default:''"`
	Email                    string `gorm:"type:varchar(255);index"`
	ProfilePictureURL        string `gorm:"type:text"`
	IsLocationSharingEnabled bool   `gorm:"not null;default:true"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
