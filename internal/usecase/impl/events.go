package impl

import (
	"context"
	"log/slog"

	reqctx "github.com/46h1/buzzer/internal/delivery/context"
	"github.com/46h1/buzzer/internal/domain/service"

	"github.com/google/uuid"
)

// publishEvent stamps and publishes a buzz event. The state change it describes is already
// committed, so a publish failure only costs the push notification and is logged.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.BuzzEvent) {
	event.EventID = uuid.NewString()
	event.RequestID = reqctx.GetRequestIDFromContext(ctx)

	if err := publisher.PublishBuzzEvent(ctx, event); err != nil {
		reqctx.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish buzz event",
			slog.String("event_type", event.Type),
			slog.String("target_user_id", event.TargetUserID),
			slog.Any("error", err),
		)
	}
}

// newID returns a time-ordered id, falling back to a random one.
func newID() uuid.UUID {
	if id, err := uuid.NewV7(); err == nil {
		return id
	}

	return uuid.New()
}
