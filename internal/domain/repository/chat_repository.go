package repository

import (
	"context"
	"time"

	"github.com/46h1/buzzer/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for chat persistence.
var (
	// ErrChatNotFound is returned when a chat thread does not exist.
	ErrChatNotFound = errors.New("chat not found")
)

// ChatRepository defines the interface for chat threads and their messages.
type ChatRepository interface {
	// CreateChatIfAbsent inserts the thread unless a thread with the same ID exists.
	// It returns the stored thread and whether this call created it.
	CreateChatIfAbsent(ctx context.Context, chat *entity.ChatThread) (*entity.ChatThread, bool, error)

	// FindChatByID retrieves a thread by ID.
	FindChatByID(ctx context.Context, chatID string) (*entity.ChatThread, error)

	// FindChatsByParticipant returns the user's threads, most recent message first.
	FindChatsByParticipant(ctx context.Context, userID string) ([]*entity.ChatThread, error)

	// AppendMessage stores the message, updates the thread's last message and
	// increments the unread count of every participant except the sender.
	AppendMessage(ctx context.Context, message *entity.ChatMessage) error

	// FindMessages returns the thread's messages, oldest first.
	FindMessages(ctx context.Context, chatID string, limit int, before time.Time) ([]*entity.ChatMessage, error)

	// MarkRead marks messages not sent by userID as read and resets userID's unread count.
	MarkRead(ctx context.Context, chatID, userID string) error
}
