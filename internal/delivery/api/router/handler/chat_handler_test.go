package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	mockUC "github.com/46h1/buzzer/internal/mocks/usecase"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestChatHandler(t *testing.T) (*ChatHandler, *mockUC.MockChatUsecase) {
	t.Helper()

	chatUC := mockUC.NewMockChatUsecase(t)

	return NewChatHandler(ChatHandlerParams{ChatUC: chatUC}), chatUC
}

func TestChatHandler_ListMessages(t *testing.T) {
	h, chatUC := newTestChatHandler(t)

	before := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	chatUC.EXPECT().
		ListMessages(mock.Anything, "alice", "alice_bob", &usecase.MessagePage{Limit: 20, Before: before}).
		Return([]*entity.ChatMessage{{ID: uuid.New(), ChatID: "alice_bob", SenderID: "bob", Text: "hi"}}, nil)

	rec := serve(t, route{http.MethodGet, "/chats/:id/messages", h.ListMessages}, "alice", http.MethodGet,
		"/chats/alice_bob/messages?limit=20&before=2026-10-17T12:00:00Z", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []*entity.ChatMessage
	decodeData(t, rec, &got)
	assert.Equal(t, "hi", got[0].Text)
}

func TestChatHandler_ListMessages_Rejected(t *testing.T) {
	t.Run("bad before", func(t *testing.T) {
		h, _ := newTestChatHandler(t)

		rec := serve(t, route{http.MethodGet, "/chats/:id/messages", h.ListMessages}, "alice", http.MethodGet,
			"/chats/alice_bob/messages?before=yesterday", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_QUERY", decodeError(t, rec).Code)
	})

	t.Run("outsider", func(t *testing.T) {
		h, chatUC := newTestChatHandler(t)
		chatUC.EXPECT().ListMessages(mock.Anything, "carol", "alice_bob", mock.Anything).
			Return(nil, domainerrors.ErrForbidden.WithDetails("not a participant of this chat"))

		rec := serve(t, route{http.MethodGet, "/chats/:id/messages", h.ListMessages}, "carol", http.MethodGet, "/chats/alice_bob/messages", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestChatHandler_SendMessage(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		h, chatUC := newTestChatHandler(t)
		chatUC.EXPECT().SendMessage(mock.Anything, "alice", "alice_bob", "hello").
			Return(&entity.ChatMessage{ID: uuid.New(), Text: "hello"}, nil)

		rec := serve(t, route{http.MethodPost, "/chats/:id/messages", h.SendMessage}, "alice", http.MethodPost,
			"/chats/alice_bob/messages", `{"text":"hello"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("empty text", func(t *testing.T) {
		h, _ := newTestChatHandler(t)

		rec := serve(t, route{http.MethodPost, "/chats/:id/messages", h.SendMessage}, "alice", http.MethodPost,
			"/chats/alice_bob/messages", `{"text":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown chat", func(t *testing.T) {
		h, chatUC := newTestChatHandler(t)
		chatUC.EXPECT().SendMessage(mock.Anything, "alice", "alice_zed", "hello").
			Return(nil, domainerrors.ErrChatNotFound.WithDetails("alice_zed"))

		rec := serve(t, route{http.MethodPost, "/chats/:id/messages", h.SendMessage}, "alice", http.MethodPost,
			"/chats/alice_zed/messages", `{"text":"hello"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestChatHandler_MarkReadAndList(t *testing.T) {
	h, chatUC := newTestChatHandler(t)
	chatUC.EXPECT().MarkRead(mock.Anything, "alice", "alice_bob").Return(nil)
	chatUC.EXPECT().ListUserChats(mock.Anything, "alice").Return([]*entity.ChatThread{{ID: "alice_bob"}}, nil)

	rec := serve(t, route{http.MethodPost, "/chats/:id/read", h.MarkRead}, "alice", http.MethodPost, "/chats/alice_bob/read", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(t, route{http.MethodGet, "/chats", h.ListChats}, "alice", http.MethodGet, "/chats", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
