package impl

import (
	"context"
	"sync"
	"sync/atomic"
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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// buzzServiceFixtures holds all test dependencies for buzz service tests.
type buzzServiceFixtures struct {
	service    *buzzService
	txManager  *mockRepo.MockTransactionManager
	txFactory  *mockRepo.MockRepositoryFactory
	buzzRepo   *mockRepo.MockBuzzRepository
	userRepo   *mockRepo.MockUserRepository
	chatRepo   *mockRepo.MockChatRepository
	publisher  *mockSvc.MockEventPublisher
	pendingHub *stream.Hub[[]*entity.BuzzInvite]
	chatHub    *stream.Hub[[]*entity.ChatThread]
}

func createTestBuzzService(t *testing.T) buzzServiceFixtures {
	env := buzzServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		txFactory:  mockRepo.NewMockRepositoryFactory(t),
		buzzRepo:   mockRepo.NewMockBuzzRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		chatRepo:   mockRepo.NewMockChatRepository(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
		pendingHub: stream.NewHub[[]*entity.BuzzInvite](4),
		chatHub:    stream.NewHub[[]*entity.ChatThread](4),
	}
	t.Cleanup(env.pendingHub.Close)
	t.Cleanup(env.chatHub.Close)

	svc := NewBuzzService(BuzzServiceParams{
		Logger:     discardLogger(),
		TxManager:  env.txManager,
		BuzzRepo:   env.buzzRepo,
		UserRepo:   env.userRepo,
		ChatRepo:   env.chatRepo,
		Publisher:  env.publisher,
		PendingHub: env.pendingHub,
		ChatHub:    env.chatHub,
	}).(*buzzService)
	svc.now = func() time.Time { return testNow }
	env.service = svc

	return env
}

// expectTx runs the transaction body against the tx-scoped repositories.
func (env buzzServiceFixtures) expectTx() {
	env.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(env.txFactory)
		})
	env.txFactory.EXPECT().NewBuzzRepository().Return(env.buzzRepo).Maybe()
	env.txFactory.EXPECT().NewUserRepository().Return(env.userRepo).Maybe()
	env.txFactory.EXPECT().NewChatRepository().Return(env.chatRepo).Maybe()
}

func profiles(uids ...string) map[string]*entity.UserProfile {
	out := make(map[string]*entity.UserProfile, len(uids))
	for _, uid := range uids {
		out[uid] = &entity.UserProfile{UID: uid, DisplayName: "name-" + uid, ProfilePictureURL: "pic-" + uid}
	}

	return out
}

func pendingInvite(sender, receiver string) *entity.BuzzInvite {
	return &entity.BuzzInvite{
		ID:           uuid.New(),
		SenderID:     sender,
		ReceiverID:   receiver,
		Status:       entity.BuzzStatusPending,
		SenderName:   "name-" + sender,
		ReceiverName: "name-" + receiver,
		CreatedAt:    testNow.Add(-time.Minute),
	}
}

func TestBuzzService_SendInvite(t *testing.T) {
	env := createTestBuzzService(t)
	ctx := context.Background()

	env.userRepo.EXPECT().FindByIDs(ctx, []string{"alice", "bob"}).Return(profiles("alice", "bob"), nil)
	env.buzzRepo.EXPECT().FindPendingBuzz(ctx, "alice", "bob").Return(nil, repository.ErrBuzzNotFound)
	env.buzzRepo.EXPECT().CreateBuzz(ctx, mock.AnythingOfType("*entity.BuzzInvite")).Return(nil)
	env.publisher.EXPECT().
		PublishBuzzEvent(ctx, mock.MatchedBy(func(e *service.BuzzEvent) bool {
			return e.Type == constants.EventBuzzSent && e.TargetUserID == "bob" && e.ActorName == "name-alice" && e.EventID != ""
		})).
		Return(nil)

	invite, err := env.service.SendInvite(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, entity.BuzzStatusPending, invite.Status)
	assert.Equal(t, "name-alice", invite.SenderName)
	assert.Equal(t, "pic-bob", invite.ReceiverProfilePic)
	assert.Nil(t, invite.RespondedAt)
	assert.Equal(t, testNow, invite.CreatedAt)
}

func TestBuzzService_SendInvite_PushesToPendingSubscribers(t *testing.T) {
	env := createTestBuzzService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := env.pendingHub.Subscribe(ctx, "bob")

	env.userRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(profiles("alice", "bob"), nil)
	env.buzzRepo.EXPECT().FindPendingBuzz(ctx, "alice", "bob").Return(nil, repository.ErrBuzzNotFound)
	env.buzzRepo.EXPECT().CreateBuzz(ctx, mock.Anything).Return(nil)
	env.publisher.EXPECT().PublishBuzzEvent(ctx, mock.Anything).Return(errors.New("topic gone"))

	pending := []*entity.BuzzInvite{pendingInvite("alice", "bob")}
	env.buzzRepo.EXPECT().FindPendingByReceiver(mock.Anything, "bob").Return(pending, nil)

	// a failed publish does not fail the buzz
	_, err := env.service.SendInvite(ctx, "alice", "bob")
	require.NoError(t, err)

	select {
	case snap := <-sub.C():
		assert.Equal(t, pending, snap.Data)
	case <-time.After(time.Second):
		t.Fatal("pending list not pushed")
	}
}

func TestBuzzService_SendInvite_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		sender   string
		receiver string
		setup    func(env buzzServiceFixtures)
		wantErr  error
	}{
		{name: "self", sender: "alice", receiver: "alice", wantErr: domainerrors.ErrSelfBuzz},
		{name: "blank", sender: " ", receiver: "bob", wantErr: domainerrors.ErrValidationFailed},
		{
			name: "unknown receiver", sender: "alice", receiver: "bob",
			setup: func(env buzzServiceFixtures) {
				env.userRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(profiles("alice"), nil)
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
		{
			name: "already pending", sender: "alice", receiver: "bob",
			setup: func(env buzzServiceFixtures) {
				env.userRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(profiles("alice", "bob"), nil)
				env.buzzRepo.EXPECT().FindPendingBuzz(mock.Anything, "alice", "bob").Return(pendingInvite("alice", "bob"), nil)
			},
			wantErr: domainerrors.ErrBuzzAlreadyPending,
		},
		{
			name: "lost insert race", sender: "alice", receiver: "bob",
			setup: func(env buzzServiceFixtures) {
				env.userRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(profiles("alice", "bob"), nil)
				env.buzzRepo.EXPECT().FindPendingBuzz(mock.Anything, "alice", "bob").Return(nil, repository.ErrBuzzNotFound)
				env.buzzRepo.EXPECT().CreateBuzz(mock.Anything, mock.Anything).Return(repository.ErrDuplicatePendingBuzz)
			},
			wantErr: domainerrors.ErrBuzzAlreadyPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := createTestBuzzService(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			_, err := env.service.SendInvite(context.Background(), tt.sender, tt.receiver)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuzzService_RespondToInvite_Accept(t *testing.T) {
	env := createTestBuzzService(t)
	ctx := context.Background()
	invite := pendingInvite("alice", "bob")

	env.buzzRepo.EXPECT().FindBuzzByID(ctx, invite.ID).Return(invite, nil)
	env.expectTx()
	env.buzzRepo.EXPECT().TransitionStatus(ctx, invite.ID, entity.BuzzStatusAccepted, testNow).Return(nil)
	env.userRepo.EXPECT().FindByIDs(ctx, []string{"alice", "bob"}).Return(profiles("alice", "bob"), nil)
	env.chatRepo.EXPECT().
		CreateChatIfAbsent(ctx, mock.AnythingOfType("*entity.ChatThread")).
		RunAndReturn(func(_ context.Context, chat *entity.ChatThread) (*entity.ChatThread, bool, error) {
			return chat, true, nil
		})
	env.publisher.EXPECT().
		PublishBuzzEvent(ctx, mock.MatchedBy(func(e *service.BuzzEvent) bool {
			return e.Type == constants.EventBuzzAccepted && e.TargetUserID == "alice" && e.ChatID == "alice_bob"
		})).
		Return(nil)

	resp, err := env.service.RespondToInvite(ctx, "bob", invite.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.BuzzStatusAccepted, resp.Invite.Status)
	require.NotNil(t, resp.Invite.RespondedAt)
	assert.Equal(t, testNow, *resp.Invite.RespondedAt)
	assert.Equal(t, entity.BuzzStatusPending, invite.Status, "stored invite is not mutated")

	require.NotNil(t, resp.Chat)
	assert.Equal(t, "alice_bob", resp.Chat.ID)
	assert.Equal(t, []string{"alice", "bob"}, resp.Chat.Participants)
	assert.Equal(t, "name-bob", resp.Chat.ParticipantInfo["bob"].DisplayName)
	assert.Equal(t, map[string]int{"alice": 0, "bob": 0}, resp.Chat.UnreadCount)
}

func TestBuzzService_RespondToInvite_ConcurrentAcceptsHaveOneWinner(t *testing.T) {
	env := createTestBuzzService(t)
	ctx := context.Background()
	invite := pendingInvite("alice", "bob")

	env.buzzRepo.EXPECT().FindBuzzByID(ctx, invite.ID).Return(invite, nil)
	env.expectTx()

	// the conditional update matches the pending row only once
	var transitions atomic.Int32
	env.buzzRepo.EXPECT().
		TransitionStatus(ctx, invite.ID, entity.BuzzStatusAccepted, testNow).
		RunAndReturn(func(context.Context, uuid.UUID, entity.BuzzStatus, time.Time) error {
			if transitions.Add(1) > 1 {
				return repository.ErrBuzzNotPending
			}

			return nil
		})
	env.userRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(profiles("alice", "bob"), nil).Once()
	env.chatRepo.EXPECT().
		CreateChatIfAbsent(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, chat *entity.ChatThread) (*entity.ChatThread, bool, error) {
			return chat, true, nil
		}).
		Once()
	env.publisher.EXPECT().
		PublishBuzzEvent(ctx, mock.MatchedBy(func(e *service.BuzzEvent) bool {
			return e.Type == constants.EventBuzzAccepted
		})).
		Return(nil).
		Once()

	const callers = 3
	var (
		wg   sync.WaitGroup
		errs = make([]error, callers)
	)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = env.service.RespondToInvite(ctx, "bob", invite.ID, true)
		}()
	}
	wg.Wait()

	succeeded, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case domainerrors.IsKind(err, domainerrors.KindStateConflict):
			assert.ErrorIs(t, err, domainerrors.ErrBuzzNotPending)
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, conflicts)
	assert.EqualValues(t, callers, transitions.Load())
}

func TestBuzzService_RespondToInvite_Decline(t *testing.T) {
	env := createTestBuzzService(t)
	ctx := context.Background()
	invite := pendingInvite("alice", "bob")

	env.buzzRepo.EXPECT().FindBuzzByID(ctx, invite.ID).Return(invite, nil)
	env.buzzRepo.EXPECT().TransitionStatus(ctx, invite.ID, entity.BuzzStatusDeclined, testNow).Return(nil)
	env.publisher.EXPECT().
		PublishBuzzEvent(ctx, mock.MatchedBy(func(e *service.BuzzEvent) bool {
			return e.Type == constants.EventBuzzDeclined && e.TargetUserID == "alice" && e.ChatID == ""
		})).
		Return(nil)

	resp, err := env.service.RespondToInvite(ctx, "bob", invite.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.BuzzStatusDeclined, resp.Invite.Status)
	assert.Nil(t, resp.Chat)
}

func TestBuzzService_RespondToInvite_Rejections(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		responder string
		found     *entity.BuzzInvite
		findErr   error
		setup     func(env buzzServiceFixtures)
		wantErr   error
	}{
		{name: "unknown", responder: "bob", findErr: repository.ErrBuzzNotFound, wantErr: domainerrors.ErrBuzzNotFound},
		{name: "sender answers", responder: "alice", found: &entity.BuzzInvite{ID: id, SenderID: "alice", ReceiverID: "bob", Status: entity.BuzzStatusPending}, wantErr: domainerrors.ErrForbidden},
		{name: "already answered", responder: "bob", found: &entity.BuzzInvite{ID: id, SenderID: "alice", ReceiverID: "bob", Status: entity.BuzzStatusDeclined}, wantErr: domainerrors.ErrBuzzNotPending},
		{
			name: "lost transition race", responder: "bob",
			found: &entity.BuzzInvite{ID: id, SenderID: "alice", ReceiverID: "bob", Status: entity.BuzzStatusPending},
			setup: func(env buzzServiceFixtures) {
				env.expectTx()
				env.buzzRepo.EXPECT().TransitionStatus(mock.Anything, id, entity.BuzzStatusAccepted, testNow).Return(repository.ErrBuzzNotPending)
			},
			wantErr: domainerrors.ErrBuzzNotPending,
		},
		{name: "storage down", responder: "bob", findErr: errors.New("connection reset"), wantErr: domainerrors.ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := createTestBuzzService(t)
			env.buzzRepo.EXPECT().FindBuzzByID(mock.Anything, id).Return(tt.found, tt.findErr)
			if tt.setup != nil {
				tt.setup(env)
			}

			_, err := env.service.RespondToInvite(context.Background(), tt.responder, id, true)
			if tt.wantErr == domainerrors.ErrStorageUnavailable {
				assert.True(t, domainerrors.IsKind(err, domainerrors.KindTransientIO))

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuzzService_SubscribePending_StartsWithCurrentList(t *testing.T) {
	env := createTestBuzzService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pending := []*entity.BuzzInvite{pendingInvite("alice", "bob")}
	env.buzzRepo.EXPECT().FindPendingByReceiver(mock.Anything, "bob").Return(pending, nil)

	sub, err := env.service.SubscribePending(ctx, "bob")
	require.NoError(t, err)
	defer sub.Close()

	select {
	case snap := <-sub.C():
		assert.Equal(t, uint64(1), snap.Seq)
		assert.Equal(t, pending, snap.Data)
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot")
	}
}
