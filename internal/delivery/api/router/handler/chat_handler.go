package handler

import (
	"net/http"
	"time"

	"github.com/46h1/buzzer/internal/delivery/api/middleware"
	"github.com/46h1/buzzer/internal/delivery/api/response"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
}

// ChatHandler serves the chats opened by accepted buzzes
type ChatHandler struct {
	chatUC usecase.ChatUsecase
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{chatUC: params.ChatUC}
}

// SendMessageRequest is one chat message. Length limits are enforced by the chat service.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// ListChats returns the caller's chats, latest message first
func (h *ChatHandler) ListChats(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	chats, err := h.chatUC.ListUserChats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chats)
}

// StreamChats streams the caller's chat list as server-sent events
func (h *ChatHandler) StreamChats(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	sub, err := h.chatUC.SubscribeUserChats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Stream(c, "chats", sub)
}

// ListMessages handles GET /chats/:id/messages?limit=&before=
func (h *ChatHandler) ListMessages(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var page usecase.MessagePage
	err := echo.QueryParamsBinder(c).
		Int("limit", &page.Limit).
		Time("before", &page.Before, time.RFC3339Nano).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit must be a number and before an RFC 3339 time")
	}

	messages, err := h.chatUC.ListMessages(c.Request().Context(), userID, c.Param("id"), &page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// SendMessage appends the caller's message to the chat
func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	message, err := h.chatUC.SendMessage(c.Request().Context(), userID, c.Param("id"), req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message)
}

// MarkRead clears the caller's unread count
func (h *ChatHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.chatUC.MarkRead(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
