package usecase

import (
	"context"
	"time"

	"github.com/46h1/buzzer/internal/domain/entity"
	"github.com/46h1/buzzer/internal/stream"
)

// MessagePage selects a window of a thread. A zero Limit returns the whole thread;
// a zero Before means "up to now".
type MessagePage struct {
	Limit  int       `json:"limit"`
	Before time.Time `json:"before"`
}

// ChatListSubscription streams a user's chat list.
type ChatListSubscription = stream.Subscription[[]*entity.ChatThread]

// ChatUsecase manages the chats unlocked by accepted buzzes.
type ChatUsecase interface {
	// EnsureThread returns the pair's thread, creating it on first use.
	EnsureThread(ctx context.Context, userA, userB string) (*entity.ChatThread, error)

	// ListUserChats returns the user's threads, latest message first.
	ListUserChats(ctx context.Context, userID string) ([]*entity.ChatThread, error)

	// ListMessages returns a thread's messages, oldest first. Only participants may read.
	ListMessages(ctx context.Context, userID, chatID string, page *MessagePage) ([]*entity.ChatMessage, error)

	// SendMessage appends a message to the thread.
	SendMessage(ctx context.Context, senderID, chatID, text string) (*entity.ChatMessage, error)

	// MarkRead clears the user's unread count in the thread.
	MarkRead(ctx context.Context, userID, chatID string) error

	// SubscribeUserChats streams the user's chat list. The current list is sent first.
	SubscribeUserChats(ctx context.Context, userID string) (*ChatListSubscription, error)
}
