package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	reqctx "github.com/46h1/buzzer/internal/delivery/context"
	"github.com/46h1/buzzer/internal/domain/constants"
	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/domain/service"
	"github.com/46h1/buzzer/internal/errors"
	"github.com/46h1/buzzer/internal/stream"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type buzzService struct {
	txManager  repository.TransactionManager
	buzzRepo   repository.BuzzRepository
	userRepo   repository.UserRepository
	chatRepo   repository.ChatRepository
	publisher  service.EventPublisher
	pendingHub *stream.Hub[[]*entity.BuzzInvite]
	chatHub    *stream.Hub[[]*entity.ChatThread]
	logger     *slog.Logger
	now        func() time.Time
}

// BuzzServiceParams holds dependencies for the buzz service, injected by Fx
type BuzzServiceParams struct {
	fx.In

	Logger     *slog.Logger
	TxManager  repository.TransactionManager
	BuzzRepo   repository.BuzzRepository
	UserRepo   repository.UserRepository
	ChatRepo   repository.ChatRepository
	Publisher  service.EventPublisher
	PendingHub *stream.Hub[[]*entity.BuzzInvite]
	ChatHub    *stream.Hub[[]*entity.ChatThread]
}

// NewBuzzService creates the buzz service
func NewBuzzService(params BuzzServiceParams) usecase.BuzzUsecase {
	return &buzzService{
		txManager:  params.TxManager,
		buzzRepo:   params.BuzzRepo,
		userRepo:   params.UserRepo,
		chatRepo:   params.ChatRepo,
		publisher:  params.Publisher,
		pendingHub: params.PendingHub,
		chatHub:    params.ChatHub,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// SendInvite creates a pending buzz from sender to receiver
func (s *buzzService) SendInvite(ctx context.Context, senderID, receiverID string) (*entity.BuzzInvite, error) {
	senderID = strings.TrimSpace(senderID)
	receiverID = strings.TrimSpace(receiverID)
	if senderID == "" || receiverID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sender and receiver are required")
	}
	if senderID == receiverID {
		return nil, domainerrors.ErrSelfBuzz
	}

	profiles, err := s.userRepo.FindByIDs(ctx, []string{senderID, receiverID})
	if err != nil {
		return nil, storageError(err, "find buzz participants")
	}
	sender, receiver := profiles[senderID], profiles[receiverID]
	if sender == nil {
		return nil, domainerrors.ErrUserNotFound.WithDetails("sender " + senderID)
	}
	if receiver == nil {
		return nil, domainerrors.ErrUserNotFound.WithDetails("receiver " + receiverID)
	}

	_, err = s.buzzRepo.FindPendingBuzz(ctx, senderID, receiverID)
	switch {
	case err == nil:
		return nil, domainerrors.ErrBuzzAlreadyPending
	case !errors.Is(err, repository.ErrBuzzNotFound):
		return nil, storageError(err, "find pending buzz")
	}

	invite := &entity.BuzzInvite{
		ID:                 newID(),
		SenderID:           senderID,
		ReceiverID:         receiverID,
		Status:             entity.BuzzStatusPending,
		SenderName:         sender.DisplayName,
		SenderProfilePic:   sender.ProfilePictureURL,
		ReceiverName:       receiver.DisplayName,
		ReceiverProfilePic: receiver.ProfilePictureURL,
		CreatedAt:          s.now(),
	}
	if err := s.buzzRepo.CreateBuzz(ctx, invite); err != nil {
		if errors.Is(err, repository.ErrDuplicatePendingBuzz) {
			return nil, domainerrors.ErrBuzzAlreadyPending
		}

		return nil, storageError(err, "create buzz")
	}

	reqctx.GetLoggerOrDefault(ctx, s.logger).Info("Buzz sent",
		slog.String("buzz_id", invite.ID.String()),
		slog.String("sender_id", senderID),
		slog.String("receiver_id", receiverID),
	)

	publishEvent(ctx, s.publisher, s.logger, &service.BuzzEvent{
		Type:         constants.EventBuzzSent,
		BuzzID:       invite.ID.String(),
		ActorID:      senderID,
		ActorName:    sender.DisplayName,
		TargetUserID: receiverID,
	})
	s.refreshPending(ctx, receiverID)

	return invite, nil
}

// RespondToInvite accepts or declines a pending buzz addressed to the responder
func (s *buzzService) RespondToInvite(ctx context.Context, responderID string, inviteID uuid.UUID, accept bool) (*usecase.BuzzResponse, error) {
	invite, err := s.buzzRepo.FindBuzzByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, repository.ErrBuzzNotFound) {
			return nil, domainerrors.ErrBuzzNotFound.WithDetails(inviteID.String())
		}

		return nil, storageError(err, "find buzz")
	}

	if invite.ReceiverID != responderID {
		return nil, domainerrors.ErrForbidden.WithDetails("only the receiver can answer a buzz")
	}
	if invite.Status != entity.BuzzStatusPending {
		return nil, domainerrors.ErrBuzzNotPending.WithDetails("status " + string(invite.Status))
	}

	var response *usecase.BuzzResponse
	if accept {
		// the conditional transition admits one winner; later responders get ErrBuzzNotPending
		response, err = s.accept(ctx, invite)
		if err != nil {
			return nil, err
		}
	} else {
		response, err = s.decline(ctx, invite)
		if err != nil {
			return nil, err
		}
	}

	eventType := constants.EventBuzzDeclined
	if accept {
		eventType = constants.EventBuzzAccepted
	}
	event := &service.BuzzEvent{
		Type:         eventType,
		BuzzID:       invite.ID.String(),
		ActorID:      invite.ReceiverID,
		ActorName:    invite.ReceiverName,
		TargetUserID: invite.SenderID,
	}
	if response.Chat != nil {
		event.ChatID = response.Chat.ID
	}
	publishEvent(ctx, s.publisher, s.logger, event)

	s.refreshPending(ctx, invite.ReceiverID, invite.SenderID)
	if response.Chat != nil {
		refreshChatLists(ctx, s.chatHub, s.chatRepo, s.logger, invite.SenderID, invite.ReceiverID)
	}

	reqctx.GetLoggerOrDefault(ctx, s.logger).Info("Buzz answered",
		slog.String("buzz_id", invite.ID.String()),
		slog.String("status", string(response.Invite.Status)),
	)

	return response, nil
}

// accept moves the buzz to accepted and opens the pair's chat in one transaction.
func (s *buzzService) accept(ctx context.Context, invite *entity.BuzzInvite) (*usecase.BuzzResponse, error) {
	at := s.now()

	var chat *entity.ChatThread
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewBuzzRepository().TransitionStatus(ctx, invite.ID, entity.BuzzStatusAccepted, at); err != nil {
			return transitionError(err, invite.ID)
		}

		profiles, err := factory.NewUserRepository().FindByIDs(ctx, []string{invite.SenderID, invite.ReceiverID})
		if err != nil {
			return storageError(err, "find chat participants")
		}

		sender := profileOrSnapshot(profiles, invite.SenderID, invite.SenderName, invite.SenderProfilePic)
		receiver := profileOrSnapshot(profiles, invite.ReceiverID, invite.ReceiverName, invite.ReceiverProfilePic)

		chat, _, err = factory.NewChatRepository().CreateChatIfAbsent(ctx, newChatThread(sender, receiver, at))
		if err != nil {
			return storageError(err, "create chat")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.BuzzResponse{Invite: resolved(invite, entity.BuzzStatusAccepted, at), Chat: chat}, nil
}

func (s *buzzService) decline(ctx context.Context, invite *entity.BuzzInvite) (*usecase.BuzzResponse, error) {
	at := s.now()
	if err := s.buzzRepo.TransitionStatus(ctx, invite.ID, entity.BuzzStatusDeclined, at); err != nil {
		return nil, transitionError(err, invite.ID)
	}

	return &usecase.BuzzResponse{Invite: resolved(invite, entity.BuzzStatusDeclined, at)}, nil
}

// ListPendingForReceiver returns the pending buzzes addressed to the user, newest first
func (s *buzzService) ListPendingForReceiver(ctx context.Context, userID string) ([]*entity.BuzzInvite, error) {
	invites, err := s.buzzRepo.FindPendingByReceiver(ctx, userID)
	if err != nil {
		return nil, storageError(err, "list pending buzzes")
	}

	return invites, nil
}

// ListUserBuzzes returns every buzz the user sent or received, newest first
func (s *buzzService) ListUserBuzzes(ctx context.Context, userID string) ([]*entity.BuzzInvite, error) {
	invites, err := s.buzzRepo.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, storageError(err, "list buzzes")
	}

	return invites, nil
}

// SubscribePending streams the user's pending buzzes, starting with the current list
func (s *buzzService) SubscribePending(ctx context.Context, userID string) (*usecase.PendingSubscription, error) {
	sub := s.pendingHub.Subscribe(ctx, userID)

	err := s.pendingHub.Refresh(ctx, userID, func(ctx context.Context) ([]*entity.BuzzInvite, error) {
		return s.ListPendingForReceiver(ctx, userID)
	})
	if err != nil {
		sub.Close()

		return nil, err
	}

	return sub, nil
}

func (s *buzzService) refreshPending(ctx context.Context, userIDs ...string) {
	for _, userID := range userIDs {
		err := s.pendingHub.Refresh(ctx, userID, func(ctx context.Context) ([]*entity.BuzzInvite, error) {
			return s.buzzRepo.FindPendingByReceiver(ctx, userID)
		})
		if err != nil {
			reqctx.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to refresh pending buzzes",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}
	}
}

func transitionError(err error, id uuid.UUID) error {
	switch {
	case errors.Is(err, repository.ErrBuzzNotPending):
		return domainerrors.ErrBuzzNotPending.WithDetails(id.String())
	case errors.Is(err, repository.ErrBuzzNotFound):
		return domainerrors.ErrBuzzNotFound.WithDetails(id.String())
	default:
		return storageError(err, "transition buzz")
	}
}

// profileOrSnapshot prefers the live profile and falls back to the snapshot stored on the buzz.
func profileOrSnapshot(profiles map[string]*entity.UserProfile, uid, name, picture string) *entity.UserProfile {
	if profile, ok := profiles[uid]; ok && profile != nil {
		return profile
	}

	return &entity.UserProfile{UID: uid, DisplayName: name, ProfilePictureURL: picture}
}

func resolved(invite *entity.BuzzInvite, status entity.BuzzStatus, at time.Time) *entity.BuzzInvite {
	cp := *invite
	cp.Status = status
	cp.RespondedAt = &at

	return &cp
}
