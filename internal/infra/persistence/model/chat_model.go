package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatModel mirrors the 'chats' table. ID is derived from the sorted participant pair.
type ChatModel struct {
	ID              string     `gorm:"type:varchar(260);primaryKey"`
	LastMessageText string     `gorm:"type:text"`
	LastMessageAt   *time.Time `gorm:"index"`
	CreatedAt       time.Time

	Participants []ChatParticipantModel `gorm:"foreignKey:ChatID"`
}

// TableName explicitly sets the table name for GORM.
func (ChatModel) TableName() string {
	return "chats"
}

// ChatParticipantModel mirrors the 'chat_participants' table: per-user display snapshot and unread count.
type ChatParticipantModel struct {
	ChatID            string `gorm:"type:varchar(260);primaryKey"`
	UserID            string `gorm:"type:varchar(128);primaryKey;index"`
	DisplayName       string `gorm:"type:varchar(100)"`
	ProfilePictureURL string `gorm:"type:text"`
	UnreadCount       int    `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ChatParticipantModel) TableName() string {
	return "chat_participants"
}

// ChatMessageModel mirrors the 'chat_messages' table.
type ChatMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatID    string    `gorm:"type:varchar(260);not null;index:idx_chat_messages_chat_ts"`
	SenderID  string    `gorm:"type:varchar(128);not null"`
	Text      string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"not null;index:idx_chat_messages_chat_ts"`
	IsRead    bool      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
