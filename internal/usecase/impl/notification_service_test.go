package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/46h1/buzzer/internal/domain/constants"
	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/service"
	mockRepo "github.com/46h1/buzzer/internal/mocks/repository"
	mockSvc "github.com/46h1/buzzer/internal/mocks/service"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service         usecase.NotificationUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return notificationServiceFixtures{
		service:         NewNotificationService(deviceRepo, notificationSvc, logger),
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func devicesFor(userID string, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   userID,
			FCMToken: fmt.Sprintf("token-%d", i),
			IsActive: true,
		})
	}

	return devices
}

func TestNotificationService_DeliverBuzzEvent_NoDevices(t *testing.T) {
	env := createTestNotificationService(t)
	ctx := context.Background()

	env.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "bob").Return(nil, nil)

	report, err := env.service.DeliverBuzzEvent(ctx, &service.BuzzEvent{Type: constants.EventBuzzSent, TargetUserID: "bob"})
	require.NoError(t, err)
	assert.Equal(t, &usecase.DeliveryReport{}, report)
}

func TestNotificationService_DeliverBuzzEvent_BuzzSentPayload(t *testing.T) {
	env := createTestNotificationService(t)
	ctx := context.Background()

	event := &service.BuzzEvent{
		EventID:      "evt-1",
		Type:         constants.EventBuzzSent,
		BuzzID:       "buzz-1",
		ActorID:      "alice",
		ActorName:    "Alice",
		TargetUserID: "bob",
	}

	env.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "bob").Return(devicesFor("bob", 2), nil)
	env.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1"}, "New buzz", "Alice buzzed you", map[string]string{
			"event_id":   "evt-1",
			"event_type": constants.EventBuzzSent,
			"actor_id":   "alice",
			"buzz_id":    "buzz-1",
		}).
		Return(2, 0, nil, nil)

	report, err := env.service.DeliverBuzzEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Devices)
	assert.Equal(t, 2, report.Sent)
	assert.Zero(t, report.Failed)
}

func TestNotificationService_DeliverBuzzEvent_BatchesAndPrunesInvalidTokens(t *testing.T) {
	env := createTestNotificationService(t)
	ctx := context.Background()

	devices := devicesFor("bob", service.MaxBatchTokens+3)
	env.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "bob").Return(devices, nil)

	env.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == service.MaxBatchTokens }),
			mock.Anything, mock.Anything, mock.Anything).
		Return(service.MaxBatchTokens-1, 1, []string{"token-7"}, nil).
		Once()
	env.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 3 }),
			mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable")).
		Once()

	env.deviceRepo.EXPECT().DeleteDevice(ctx, devices[7].ID).Return(nil)

	report, err := env.service.DeliverBuzzEvent(ctx, &service.BuzzEvent{Type: constants.EventChatMessage, TargetUserID: "bob", Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, service.MaxBatchTokens+3, report.Devices)
	assert.Equal(t, service.MaxBatchTokens-1, report.Sent)
	assert.Equal(t, 4, report.Failed)
	assert.Equal(t, 1, report.InvalidTokens)
}

func TestNotificationService_DeliverBuzzEvent_StorageErrorIsTransient(t *testing.T) {
	env := createTestNotificationService(t)
	ctx := context.Background()

	env.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "bob").Return(nil, errors.New("connection refused"))

	_, err := env.service.DeliverBuzzEvent(ctx, &service.BuzzEvent{Type: constants.EventBuzzSent, TargetUserID: "bob"})
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindTransientIO))
}

func TestNotificationContent(t *testing.T) {
	tests := []struct {
		event     *service.BuzzEvent
		wantTitle string
		wantBody  string
	}{
		{event: &service.BuzzEvent{Type: constants.EventBuzzAccepted, ActorName: "Bob"}, wantTitle: "Buzz accepted", wantBody: "Bob accepted your buzz, say hi"},
		{event: &service.BuzzEvent{Type: constants.EventBuzzDeclined}, wantTitle: "Buzz declined", wantBody: "Someone declined your buzz"},
		{event: &service.BuzzEvent{Type: constants.EventChatMessage, ActorName: "Ann", Text: "hey"}, wantTitle: "Ann", wantBody: "hey"},
	}

	for _, tt := range tests {
		t.Run(tt.event.Type, func(t *testing.T) {
			title, body := notificationContent(tt.event)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
