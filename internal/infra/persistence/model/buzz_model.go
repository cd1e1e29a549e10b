package model

import (
	"time"

	"github.com/google/uuid"
)

// BuzzModel mirrors the 'buzzes' table. The partial unique index allows one pending buzz per
// ordered (sender, receiver) pair while keeping any number of answered ones.
type BuzzModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SenderID           string     `gorm:"type:varchar(128);not null;uniqueIndex:idx_buzzes_pending_pair,where:status = 'pending';index"`
	ReceiverID         string     `gorm:"type:varchar(128);not null;uniqueIndex:idx_buzzes_pending_pair,where:status = 'pending';index:idx_buzzes_receiver_status"`
	Status             string     `gorm:"type:varchar(20);not null;index:idx_buzzes_receiver_status"`
	SenderName         string     `gorm:"type:varchar(100)"`
	SenderProfilePic   string     `gorm:"type:text"`
	ReceiverName       string     `gorm:"type:varchar(100)"`
	ReceiverProfilePic string     `gorm:"type:text"`
	CreatedAt          time.Time  `gorm:"not null;index"`
	RespondedAt        *time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuzzModel) TableName() string {
	return "buzzes"
}
