package notification

import (
	"context"
	"testing"

	"github.com/46h1/buzzer/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFCM struct {
	multicast *messaging.MulticastMessage
	response  *messaging.BatchResponse
	err       error
}

func (s *stubFCM) Send(context.Context, *messaging.Message) (string, error) {
	return "projects/p/messages/1", s.err
}

func (s *stubFCM) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	s.multicast = message

	return s.response, s.err
}

func TestSendBatchNotification_EmptyTokens(t *testing.T) {
	svc := &firebaseService{client: &stubFCM{}}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, failure)
	assert.Nil(t, invalid)
}

func TestSendBatchNotification_TooManyTokens(t *testing.T) {
	svc := &firebaseService{client: &stubFCM{}}
	tokens := make([]string, service.MaxBatchTokens+1)

	_, _, _, err := svc.SendBatchNotification(context.Background(), tokens, "t", "b", nil)
	assert.Error(t, err)
}

func TestSendBatchNotification_PassesPayload(t *testing.T) {
	stub := &stubFCM{response: &messaging.BatchResponse{
		SuccessCount: 2,
		Responses: []*messaging.SendResponse{
			{Success: true, MessageID: "m1"},
			{Success: true, MessageID: "m2"},
		},
	}}
	svc := &firebaseService{client: stub}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(),
		[]string{"tok-1", "tok-2"}, "New buzz", "Ada buzzed you", map[string]string{"type": "buzz.sent"})
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)

	require.NotNil(t, stub.multicast)
	assert.Equal(t, []string{"tok-1", "tok-2"}, stub.multicast.Tokens)
	assert.Equal(t, "New buzz", stub.multicast.Notification.Title)
	assert.Equal(t, "buzz.sent", stub.multicast.Data["type"])
}

func TestSendBatchNotification_TransportError(t *testing.T) {
	svc := &firebaseService{client: &stubFCM{err: errors.New("unavailable")}}

	_, _, _, err := svc.SendBatchNotification(context.Background(), []string{"tok"}, "t", "b", nil)
	assert.Error(t, err)
}
