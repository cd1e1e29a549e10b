package service

import (
	"context"
)

// BuzzEvent is published whenever something happens that the other party should be pushed about.
// The worker turns it into an FCM notification for TargetUserID.
type BuzzEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	EventID      string `json:"event_id"`
	Type         string `json:"type"` // constants.EventBuzzSent, ...
	BuzzID       string `json:"buzz_id,omitempty"`
	ChatID       string `json:"chat_id,omitempty"`
	ActorID      string `json:"actor_id"`       // Who caused the event
	ActorName    string `json:"actor_name"`     // Display name snapshot of the actor
	TargetUserID string `json:"target_user_id"` // Who gets notified
	Text         string `json:"text,omitempty"` // Message preview for chat events
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBuzzEvent publishes an event for async push delivery
	PublishBuzzEvent(ctx context.Context, event *BuzzEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
