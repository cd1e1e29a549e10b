package service

import (
	"context"
)

// MaxBatchTokens is the FCM multicast limit per request.
const MaxBatchTokens = 500

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends one push to up to MaxBatchTokens device tokens.
	// Returns success count, failure count, tokens FCM reported as invalid, and error
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
