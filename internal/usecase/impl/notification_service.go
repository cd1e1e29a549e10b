package impl

import (
	"context"
	"log/slog"

	reqctx "github.com/46h1/buzzer/internal/delivery/context"
	"github.com/46h1/buzzer/internal/domain/constants"
	"github.com/46h1/buzzer/internal/domain/entity"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/domain/service"
	"github.com/46h1/buzzer/internal/usecase"
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewNotificationService creates the push fan-out used by the worker
func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// DeliverBuzzEvent pushes the event to the target user's active devices in FCM-sized batches
func (s *notificationService) DeliverBuzzEvent(ctx context.Context, event *service.BuzzEvent) (*usecase.DeliveryReport, error) {
	logger := reqctx.GetLoggerOrDefault(ctx, s.logger)

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, event.TargetUserID)
	if err != nil {
		return nil, storageError(err, "find devices of "+event.TargetUserID)
	}

	report := &usecase.DeliveryReport{Devices: len(devices)}
	if len(devices) == 0 {
		logger.Info("[Worker] No devices to notify", slog.String("target_user_id", event.TargetUserID))

		return report, nil
	}

	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.UserDevice, len(devices)) // token -> device mapping
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	title, body := notificationContent(event)
	data := notificationData(event)

	var invalidTokens []string
	for idx := 0; idx < len(tokens); idx += service.MaxBatchTokens {
		end := min(idx+service.MaxBatchTokens, len(tokens))
		batch := tokens[idx:end]

		sent, failed, batchInvalid, sendErr := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if sendErr != nil {
			// keep going, other batches may still reach their devices
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			report.Failed += len(batch)

			continue
		}

		report.Sent += sent
		report.Failed += failed
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	for _, token := range invalidTokens {
		device, ok := deviceMap[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			logger.Warn("[Worker] Failed to delete invalid device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		report.InvalidTokens++
	}

	logger.Info("[Worker] Buzz event delivered",
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("invalid_tokens", report.InvalidTokens),
	)

	return report, nil
}

func notificationContent(event *service.BuzzEvent) (title, body string) {
	actor := event.ActorName
	if actor == "" {
		actor = "Someone"
	}

	switch event.Type {
	case constants.EventBuzzSent:
		return "New buzz", actor + " buzzed you"
	case constants.EventBuzzAccepted:
		return "Buzz accepted", actor + " accepted your buzz, say hi"
	case constants.EventBuzzDeclined:
		return "Buzz declined", actor + " declined your buzz"
	case constants.EventChatMessage:
		return actor, event.Text
	default:
		return "Buzzer", actor + " did something"
	}
}

func notificationData(event *service.BuzzEvent) map[string]string {
	data := map[string]string{
		"event_id":   event.EventID,
		"event_type": event.Type,
		"actor_id":   event.ActorID,
	}
	if event.BuzzID != "" {
		data["buzz_id"] = event.BuzzID
	}
	if event.ChatID != "" {
		data["chat_id"] = event.ChatID
	}

	return data
}
