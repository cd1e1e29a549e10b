package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	mockUC "github.com/46h1/buzzer/internal/mocks/usecase"
	"github.com/46h1/buzzer/internal/stream"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestBuzzHandler(t *testing.T) (*BuzzHandler, *mockUC.MockBuzzUsecase) {
	t.Helper()

	buzzUC := mockUC.NewMockBuzzUsecase(t)

	return NewBuzzHandler(BuzzHandlerParams{BuzzUC: buzzUC}), buzzUC
}

func TestBuzzHandler_SendBuzz(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "sent", body: `{"receiver_id":"bob"}`, wantStatus: http.StatusCreated},
		{name: "receiver required", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
		{name: "already pending", body: `{"receiver_id":"bob"}`, ucErr: domainerrors.ErrBuzzAlreadyPending, wantStatus: http.StatusConflict, wantCode: "BUZZ_ALREADY_PENDING"},
		{name: "self buzz", body: `{"receiver_id":"alice"}`, ucErr: domainerrors.ErrSelfBuzz, wantStatus: http.StatusBadRequest, wantCode: "SELF_BUZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buzzUC := newTestBuzzHandler(t)
			if tt.wantStatus == http.StatusCreated || tt.ucErr != nil {
				var invite *entity.BuzzInvite
				if tt.ucErr == nil {
					invite = &entity.BuzzInvite{ID: uuid.New(), SenderID: "alice", ReceiverID: "bob", Status: entity.BuzzStatusPending}
				}
				buzzUC.EXPECT().SendInvite(mock.Anything, "alice", mock.Anything).Return(invite, tt.ucErr)
			}

			rec := serve(t, route{http.MethodPost, "/buzzes", h.SendBuzz}, "alice", http.MethodPost, "/buzzes", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestBuzzHandler_Respond(t *testing.T) {
	inviteID := uuid.New()
	target := "/buzzes/" + inviteID.String() + "/respond"

	t.Run("accepted opens the chat", func(t *testing.T) {
		h, buzzUC := newTestBuzzHandler(t)
		buzzUC.EXPECT().RespondToInvite(mock.Anything, "bob", inviteID, true).Return(&usecase.BuzzResponse{
			Invite: &entity.BuzzInvite{ID: inviteID, Status: entity.BuzzStatusAccepted},
			Chat:   &entity.ChatThread{ID: "alice_bob"},
		}, nil)

		rec := serve(t, route{http.MethodPost, "/buzzes/:id/respond", h.Respond}, "bob", http.MethodPost, target, `{"accept":true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got usecase.BuzzResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "alice_bob", got.Chat.ID)
	})

	t.Run("decline needs an explicit false", func(t *testing.T) {
		h, _ := newTestBuzzHandler(t)

		rec := serve(t, route{http.MethodPost, "/buzzes/:id/respond", h.Respond}, "bob", http.MethodPost, target, `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("already answered", func(t *testing.T) {
		h, buzzUC := newTestBuzzHandler(t)
		buzzUC.EXPECT().RespondToInvite(mock.Anything, "bob", inviteID, false).Return(nil, domainerrors.ErrBuzzNotPending)

		rec := serve(t, route{http.MethodPost, "/buzzes/:id/respond", h.Respond}, "bob", http.MethodPost, target, `{"accept":false}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "STATE_CONFLICT", decodeError(t, rec).Kind)
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := newTestBuzzHandler(t)

		rec := serve(t, route{http.MethodPost, "/buzzes/:id/respond", h.Respond}, "bob", http.MethodPost, "/buzzes/42/respond", `{"accept":true}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBuzzHandler_Lists(t *testing.T) {
	h, buzzUC := newTestBuzzHandler(t)
	invites := []*entity.BuzzInvite{{ID: uuid.New(), SenderID: "carol", ReceiverID: "alice"}}
	buzzUC.EXPECT().ListPendingForReceiver(mock.Anything, "alice").Return(invites, nil)
	buzzUC.EXPECT().ListUserBuzzes(mock.Anything, "alice").Return(invites, nil)

	rec := serve(t, route{http.MethodGet, "/buzzes/pending", h.ListPending}, "alice", http.MethodGet, "/buzzes/pending", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, route{http.MethodGet, "/buzzes", h.ListBuzzes}, "alice", http.MethodGet, "/buzzes", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []*entity.BuzzInvite
	decodeData(t, rec, &got)
	assert.Len(t, got, 1)
}

func TestBuzzHandler_StreamPending(t *testing.T) {
	h, buzzUC := newTestBuzzHandler(t)

	hub := stream.NewHub[[]*entity.BuzzInvite](2)
	sub := hub.Subscribe(context.Background(), "alice")
	hub.Publish("alice", []*entity.BuzzInvite{{SenderID: "carol", SenderName: "Carol"}})
	hub.Close()

	buzzUC.EXPECT().SubscribePending(mock.Anything, "alice").Return(sub, nil)

	rec := serve(t, route{http.MethodGet, "/buzzes/pending/stream", h.StreamPending}, "alice", http.MethodGet, "/buzzes/pending/stream", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "event: pending\n")
	assert.Contains(t, rec.Body.String(), `"sender_name":"Carol"`)
}
