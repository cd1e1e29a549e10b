package usecase

import (
	"context"

	"github.com/46h1/buzzer/internal/domain/entity"
	"github.com/46h1/buzzer/internal/stream"

	"github.com/google/uuid"
)

// BuzzResponse is the result of answering a buzz. Chat is set when the buzz was accepted.
type BuzzResponse struct {
	Invite *entity.BuzzInvite `json:"invite"`
	Chat   *entity.ChatThread `json:"chat,omitempty"`
}

// PendingSubscription streams a user's pending buzzes.
type PendingSubscription = stream.Subscription[[]*entity.BuzzInvite]

// BuzzUsecase sends and answers buzzes.
type BuzzUsecase interface {
	// SendInvite creates a pending buzz from sender to receiver.
	SendInvite(ctx context.Context, senderID, receiverID string) (*entity.BuzzInvite, error)

	// RespondToInvite accepts or declines a pending buzz. Accepting opens the pair's chat.
	RespondToInvite(ctx context.Context, responderID string, inviteID uuid.UUID, accept bool) (*BuzzResponse, error)

	// ListPendingForReceiver returns the pending buzzes addressed to the user, newest first.
	ListPendingForReceiver(ctx context.Context, userID string) ([]*entity.BuzzInvite, error)

	// ListUserBuzzes returns every buzz the user sent or received, newest first.
	ListUserBuzzes(ctx context.Context, userID string) ([]*entity.BuzzInvite, error)

	// SubscribePending streams the user's pending buzzes. The current list is sent first.
	SubscribePending(ctx context.Context, userID string) (*PendingSubscription, error)
}
