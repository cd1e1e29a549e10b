package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/46h1/buzzer/internal/domain/constants"
	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/domain/service"
	mockRepo "github.com/46h1/buzzer/internal/mocks/repository"
	mockSvc "github.com/46h1/buzzer/internal/mocks/service"
	"github.com/46h1/buzzer/internal/stream"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatServiceFixtures struct {
	service   *chatService
	chatRepo  *mockRepo.MockChatRepository
	userRepo  *mockRepo.MockUserRepository
	publisher *mockSvc.MockEventPublisher
	hub       *stream.Hub[[]*entity.ChatThread]
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	cfg := testConfig()
	cfg.Chat.MaxMessageLength = 10

	env := chatServiceFixtures{
		chatRepo:  mockRepo.NewMockChatRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		hub:       stream.NewHub[[]*entity.ChatThread](4),
	}
	t.Cleanup(env.hub.Close)

	svc := NewChatService(ChatServiceParams{
		Config:    cfg,
		Logger:    discardLogger(),
		ChatRepo:  env.chatRepo,
		UserRepo:  env.userRepo,
		Publisher: env.publisher,
		Hub:       env.hub,
	}).(*chatService)
	svc.now = func() time.Time { return testNow }
	env.service = svc

	return env
}

func aliceBobChat() *entity.ChatThread {
	return newChatThread(profiles("bob")["bob"], profiles("alice")["alice"], testNow)
}

func TestChatService_EnsureThread(t *testing.T) {
	env := createTestChatService(t)
	ctx := context.Background()

	env.userRepo.EXPECT().FindByIDs(ctx, []string{"bob", "alice"}).Return(profiles("alice", "bob"), nil)
	env.chatRepo.EXPECT().
		CreateChatIfAbsent(ctx, mock.AnythingOfType("*entity.ChatThread")).
		RunAndReturn(func(_ context.Context, chat *entity.ChatThread) (*entity.ChatThread, bool, error) {
			return chat, true, nil
		})

	chat, err := env.service.EnsureThread(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice_bob", chat.ID)
	assert.Equal(t, []string{"alice", "bob"}, chat.Participants)
	assert.Equal(t, "pic-alice", chat.ParticipantInfo["alice"].ProfilePictureURL)
}

func TestChatService_EnsureThread_Validation(t *testing.T) {
	env := createTestChatService(t)

	_, err := env.service.EnsureThread(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	env.userRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(profiles("alice"), nil)
	_, err = env.service.EnsureThread(context.Background(), "alice", "carol")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestChatService_SendMessage(t *testing.T) {
	env := createTestChatService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chat := aliceBobChat()
	bobList := env.hub.Subscribe(ctx, "bob")

	env.chatRepo.EXPECT().FindChatByID(ctx, chat.ID).Return(chat, nil)
	env.chatRepo.EXPECT().
		AppendMessage(ctx, mock.MatchedBy(func(m *entity.ChatMessage) bool {
			return m.ChatID == chat.ID && m.SenderID == "alice" && m.Text == "hi bob" && !m.IsRead
		})).
		Return(nil)
	env.publisher.EXPECT().
		PublishBuzzEvent(ctx, mock.MatchedBy(func(e *service.BuzzEvent) bool {
			return e.Type == constants.EventChatMessage && e.TargetUserID == "bob" && e.ActorName == "name-alice" && e.Text == "hi bob"
		})).
		Return(nil).
		Once()

	updated := aliceBobChat()
	updated.LastMessageText = "hi bob"
	updated.UnreadCount["bob"] = 1
	env.chatRepo.EXPECT().FindChatsByParticipant(mock.Anything, "bob").Return([]*entity.ChatThread{updated}, nil)

	message, err := env.service.SendMessage(ctx, "alice", chat.ID, "hi bob")
	require.NoError(t, err)
	assert.Equal(t, testNow, message.Timestamp)

	select {
	case snap := <-bobList.C():
		require.Len(t, snap.Data, 1)
		assert.Equal(t, 1, snap.Data[0].UnreadCount["bob"])
	case <-time.After(time.Second):
		t.Fatal("chat list not pushed")
	}
}

func TestChatService_SendMessage_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		sender  string
		text    string
		found   *entity.ChatThread
		findErr error
		wantErr error
	}{
		{name: "blank", sender: "alice", text: "  \n", wantErr: domainerrors.ErrValidationFailed},
		{name: "too long", sender: "alice", text: strings.Repeat("é", 11), wantErr: domainerrors.ErrValidationFailed},
		{name: "unknown chat", sender: "alice", text: "hi", findErr: repository.ErrChatNotFound, wantErr: domainerrors.ErrChatNotFound},
		{name: "outsider", sender: "carol", text: "hi", found: aliceBobChat(), wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := createTestChatService(t)
			if tt.found != nil || tt.findErr != nil {
				env.chatRepo.EXPECT().FindChatByID(mock.Anything, "alice_bob").Return(tt.found, tt.findErr)
			}

			_, err := env.service.SendMessage(context.Background(), tt.sender, "alice_bob", tt.text)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChatService_SendMessage_LengthCountsRunes(t *testing.T) {
	env := createTestChatService(t)
	ctx := context.Background()

	env.chatRepo.EXPECT().FindChatByID(ctx, "alice_bob").Return(aliceBobChat(), nil)
	env.chatRepo.EXPECT().AppendMessage(ctx, mock.Anything).Return(nil)
	env.publisher.EXPECT().PublishBuzzEvent(ctx, mock.Anything).Return(nil)

	_, err := env.service.SendMessage(ctx, "alice", "alice_bob", strings.Repeat("é", 10))
	require.NoError(t, err)
}

func TestChatService_ListMessages(t *testing.T) {
	env := createTestChatService(t)
	ctx := context.Background()
	before := testNow.Add(-time.Hour)

	messages := []*entity.ChatMessage{{ChatID: "alice_bob", SenderID: "bob", Text: "yo"}}
	env.chatRepo.EXPECT().FindChatByID(ctx, "alice_bob").Return(aliceBobChat(), nil)
	env.chatRepo.EXPECT().FindMessages(ctx, "alice_bob", 20, before).Return(messages, nil)

	got, err := env.service.ListMessages(ctx, "alice", "alice_bob", &usecase.MessagePage{Limit: 20, Before: before})
	require.NoError(t, err)
	assert.Equal(t, messages, got)
}

func TestChatService_MarkRead(t *testing.T) {
	env := createTestChatService(t)
	ctx := context.Background()

	env.chatRepo.EXPECT().FindChatByID(ctx, "alice_bob").Return(aliceBobChat(), nil)
	env.chatRepo.EXPECT().MarkRead(ctx, "alice_bob", "bob").Return(nil)

	require.NoError(t, env.service.MarkRead(ctx, "bob", "alice_bob"))
}

func TestChatService_SubscribeUserChats(t *testing.T) {
	env := createTestChatService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chats := []*entity.ChatThread{aliceBobChat()}
	env.chatRepo.EXPECT().FindChatsByParticipant(mock.Anything, "alice").Return(chats, nil)

	sub, err := env.service.SubscribeUserChats(ctx, "alice")
	require.NoError(t, err)
	defer sub.Close()

	select {
	case snap := <-sub.C():
		assert.Equal(t, chats, snap.Data)
	case <-time.After(time.Second):
		t.Fatal("no initial chat list")
	}
}
