package handler

import (
	"net/http"

	"github.com/46h1/buzzer/internal/delivery/api/middleware"
	"github.com/46h1/buzzer/internal/delivery/api/response"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BuzzHandlerParams holds dependencies for BuzzHandler, injected by Fx.
type BuzzHandlerParams struct {
	fx.In

	BuzzUC usecase.BuzzUsecase
}

// BuzzHandler sends and answers buzzes
type BuzzHandler struct {
	buzzUC usecase.BuzzUsecase
}

// NewBuzzHandler is the constructor for BuzzHandler
func NewBuzzHandler(params BuzzHandlerParams) *BuzzHandler {
	return &BuzzHandler{buzzUC: params.BuzzUC}
}

// SendBuzzRequest names the user to buzz
type SendBuzzRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
}

// RespondRequest accepts or declines a buzz
type RespondRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}

// SendBuzz creates a pending buzz from the caller
func (h *BuzzHandler) SendBuzz(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req SendBuzzRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid buzz input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	invite, err := h.buzzUC.SendInvite(c.Request().Context(), userID, req.ReceiverID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, invite)
}

// ListBuzzes returns every buzz the caller sent or received
func (h *BuzzHandler) ListBuzzes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	invites, err := h.buzzUC.ListUserBuzzes(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invites)
}

// ListPending returns the buzzes waiting for the caller's answer
func (h *BuzzHandler) ListPending(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	invites, err := h.buzzUC.ListPendingForReceiver(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invites)
}

// StreamPending streams the caller's pending buzzes as server-sent events
func (h *BuzzHandler) StreamPending(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	sub, err := h.buzzUC.SubscribePending(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Stream(c, "pending", sub)
}

// Respond accepts or declines the buzz named in the path
func (h *BuzzHandler) Respond(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	inviteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid buzz ID")
	}

	var req RespondRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.buzzUC.RespondToInvite(c.Request().Context(), userID, inviteID, *req.Accept)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
