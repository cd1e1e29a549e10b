package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChatID derives the thread id for a pair of users. It does not depend on argument order.
func ChatID(a, b string) string {
	ids := []string{a, b}
	slices.Sort(ids)

	return strings.Join(ids, "_")
}

// ChatThread is a two-party conversation unlocked by an accepted buzz.
type ChatThread struct {
	ID                   string                     `json:"id"`
	Participants         []string                   `json:"participants"`
	ParticipantInfo      map[string]ParticipantInfo `json:"participant_info"`
	LastMessageText      string                     `json:"last_message_text"`
	LastMessageTimestamp time.Time                  `json:"last_message_timestamp"`
	UnreadCount          map[string]int             `json:"unread_count"` // Per participant.
	CreatedAt            time.Time                  `json:"created_at"`
}

// HasParticipant reports whether userID belongs to the thread.
func (c *ChatThread) HasParticipant(userID string) bool {
	return slices.Contains(c.Participants, userID)
}

// ChatMessage is one message inside a thread.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	ChatID    string    `json:"chat_id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
}
