package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/46h1/buzzer/config"
	reqctx "github.com/46h1/buzzer/internal/delivery/context"
	"github.com/46h1/buzzer/internal/domain/constants"
	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/domain/service"
	"github.com/46h1/buzzer/internal/errors"
	"github.com/46h1/buzzer/internal/stream"
	"github.com/46h1/buzzer/internal/usecase"

	"go.uber.org/fx"
)

type chatService struct {
	chatRepo   repository.ChatRepository
	userRepo   repository.UserRepository
	publisher  service.EventPublisher
	hub        *stream.Hub[[]*entity.ChatThread]
	logger     *slog.Logger
	maxMessage int
	now        func() time.Time
}

// ChatServiceParams holds dependencies for the chat service, injected by Fx
type ChatServiceParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	ChatRepo  repository.ChatRepository
	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	Hub       *stream.Hub[[]*entity.ChatThread]
}

// NewChatService creates the chat service
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo:   params.ChatRepo,
		userRepo:   params.UserRepo,
		publisher:  params.Publisher,
		hub:        params.Hub,
		logger:     params.Logger,
		maxMessage: params.Config.Chat.MaxMessageLength,
		now:        time.Now,
	}
}

// EnsureThread returns the pair's thread, creating it on first use
func (s *chatService) EnsureThread(ctx context.Context, userA, userB string) (*entity.ChatThread, error) {
	if userA == "" || userB == "" || userA == userB {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a chat needs two distinct users")
	}

	profiles, err := s.userRepo.FindByIDs(ctx, []string{userA, userB})
	if err != nil {
		return nil, storageError(err, "find chat participants")
	}
	for _, uid := range []string{userA, userB} {
		if profiles[uid] == nil {
			return nil, domainerrors.ErrUserNotFound.WithDetails(uid)
		}
	}

	chat, created, err := s.chatRepo.CreateChatIfAbsent(ctx, newChatThread(profiles[userA], profiles[userB], s.now()))
	if err != nil {
		return nil, storageError(err, "create chat")
	}
	if created {
		refreshChatLists(ctx, s.hub, s.chatRepo, s.logger, userA, userB)
	}

	return chat, nil
}

// ListUserChats returns the user's threads, latest message first
func (s *chatService) ListUserChats(ctx context.Context, userID string) ([]*entity.ChatThread, error) {
	chats, err := s.chatRepo.FindChatsByParticipant(ctx, userID)
	if err != nil {
		return nil, storageError(err, "list chats")
	}

	return chats, nil
}

// ListMessages returns a window of the thread, oldest first
func (s *chatService) ListMessages(ctx context.Context, userID, chatID string, page *usecase.MessagePage) ([]*entity.ChatMessage, error) {
	if _, err := s.participantChat(ctx, userID, chatID); err != nil {
		return nil, err
	}

	if page == nil {
		page = &usecase.MessagePage{}
	}
	if page.Limit < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit must not be negative")
	}

	messages, err := s.chatRepo.FindMessages(ctx, chatID, page.Limit, page.Before)
	if err != nil {
		return nil, storageError(err, "list messages")
	}

	return messages, nil
}

// SendMessage appends a message and notifies the other participant
func (s *chatService) SendMessage(ctx context.Context, senderID, chatID, text string) (*entity.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message text is required")
	}
	if utf8.RuneCountInString(text) > s.maxMessage {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message text is too long")
	}

	chat, err := s.participantChat(ctx, senderID, chatID)
	if err != nil {
		return nil, err
	}

	message := &entity.ChatMessage{
		ID:        newID(),
		ChatID:    chatID,
		SenderID:  senderID,
		Text:      text,
		Timestamp: s.now(),
	}
	if err := s.chatRepo.AppendMessage(ctx, message); err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, domainerrors.ErrChatNotFound.WithDetails(chatID)
		}

		return nil, storageError(err, "append message")
	}

	senderName := chat.ParticipantInfo[senderID].DisplayName
	for _, participant := range chat.Participants {
		if participant == senderID {
			continue
		}
		publishEvent(ctx, s.publisher, s.logger, &service.BuzzEvent{
			Type:         constants.EventChatMessage,
			ChatID:       chatID,
			ActorID:      senderID,
			ActorName:    senderName,
			TargetUserID: participant,
			Text:         text,
		})
	}

	refreshChatLists(ctx, s.hub, s.chatRepo, s.logger, chat.Participants...)

	return message, nil
}

// MarkRead clears the user's unread count in the thread
func (s *chatService) MarkRead(ctx context.Context, userID, chatID string) error {
	if _, err := s.participantChat(ctx, userID, chatID); err != nil {
		return err
	}

	if err := s.chatRepo.MarkRead(ctx, chatID, userID); err != nil {
		return storageError(err, "mark read")
	}

	refreshChatLists(ctx, s.hub, s.chatRepo, s.logger, userID)

	return nil
}

// SubscribeUserChats streams the user's chat list, starting with the current one
func (s *chatService) SubscribeUserChats(ctx context.Context, userID string) (*usecase.ChatListSubscription, error) {
	sub := s.hub.Subscribe(ctx, userID)

	err := s.hub.Refresh(ctx, userID, func(ctx context.Context) ([]*entity.ChatThread, error) {
		return s.ListUserChats(ctx, userID)
	})
	if err != nil {
		sub.Close()

		return nil, err
	}

	return sub, nil
}

func (s *chatService) participantChat(ctx context.Context, userID, chatID string) (*entity.ChatThread, error) {
	chat, err := s.chatRepo.FindChatByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, domainerrors.ErrChatNotFound.WithDetails(chatID)
		}

		return nil, storageError(err, "find chat")
	}

	if !chat.HasParticipant(userID) {
		return nil, domainerrors.ErrForbidden.WithDetails("not a participant of this chat")
	}

	return chat, nil
}

// newChatThread builds the pair's thread with a display snapshot of both users.
func newChatThread(a, b *entity.UserProfile, now time.Time) *entity.ChatThread {
	if b.UID < a.UID {
		a, b = b, a
	}

	return &entity.ChatThread{
		ID:           entity.ChatID(a.UID, b.UID),
		Participants: []string{a.UID, b.UID},
		ParticipantInfo: map[string]entity.ParticipantInfo{
			a.UID: a.Snapshot(),
			b.UID: b.Snapshot(),
		},
		UnreadCount: map[string]int{a.UID: 0, b.UID: 0},
		CreatedAt:   now,
	}
}

// refreshChatLists republishes the chat list of every given user that has live subscribers.
func refreshChatLists(ctx context.Context, hub *stream.Hub[[]*entity.ChatThread], repo repository.ChatRepository, logger *slog.Logger, userIDs ...string) {
	for _, userID := range userIDs {
		err := hub.Refresh(ctx, userID, func(ctx context.Context) ([]*entity.ChatThread, error) {
			return repo.FindChatsByParticipant(ctx, userID)
		})
		if err != nil {
			reqctx.GetLoggerOrDefault(ctx, logger).Warn("Failed to refresh chat list",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}
	}
}
