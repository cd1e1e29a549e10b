package pubsub

import (
	"github.com/46h1/buzzer/internal/domain/service"
)

// messageAttributes are the Pub/Sub attributes attached to every buzz event.
// Subscriptions can filter on event_type without decoding the payload.
func messageAttributes(event *service.BuzzEvent) map[string]string {
	attributes := map[string]string{
		"event_id":       event.EventID,
		"event_type":     event.Type,
		"target_user_id": event.TargetUserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
