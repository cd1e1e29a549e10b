package usecase

import (
	"context"

	"github.com/46h1/buzzer/internal/domain/service"
)

// DeliveryReport summarises one push fan-out.
type DeliveryReport struct {
	Devices       int `json:"devices"`
	Sent          int `json:"sent"`
	Failed        int `json:"failed"`
	InvalidTokens int `json:"invalid_tokens"`
}

// NotificationUsecase turns buzz events into push notifications on the target user's devices.
type NotificationUsecase interface {
	// DeliverBuzzEvent pushes the event to every active device of event.TargetUserID.
	// Errors of kind TRANSIENT_IO are worth retrying.
	DeliverBuzzEvent(ctx context.Context, event *service.BuzzEvent) (*DeliveryReport, error)
}
