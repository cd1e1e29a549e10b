package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/46h1/buzzer/internal/delivery/api/middleware"
	"github.com/46h1/buzzer/internal/delivery/api/response"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	SessionUC  usecase.LocationSessionUsecase
}

// LocationHandler accepts location reports and drives reporting sessions
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	sessionUC  usecase.LocationSessionUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		sessionUC:  params.SessionUC,
	}
}

// PositionRequest is a device fix. Coordinates are pointers so that 0 is distinguishable from absent;
// range checks happen in the location pipeline.
type PositionRequest struct {
	Latitude  *float64  `json:"latitude" validate:"required"`
	Longitude *float64  `json:"longitude" validate:"required"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

// ReportLocation applies one immediate report and answers with its outcome
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req PositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.locationUC.ReportLocation(c.Request().Context(), &usecase.LocationReport{
		UserID:          userID,
		Latitude:        *req.Latitude,
		Longitude:       *req.Longitude,
		Accuracy:        req.Accuracy,
		ClientTimestamp: req.Timestamp,
		Source:          usecase.ReportSourceImmediate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// StartSession begins or resumes the caller's reporting session
func (h *LocationHandler) StartSession(c echo.Context) error {
	return h.sessionCall(c, h.sessionUC.Start)
}

// StopSession ends the caller's session
func (h *LocationHandler) StopSession(c echo.Context) error {
	return h.sessionCall(c, h.sessionUC.Stop)
}

// SessionStatus reports the caller's session
func (h *LocationHandler) SessionStatus(c echo.Context) error {
	return h.sessionCall(c, h.sessionUC.Status)
}

// DenyPermission records that the device revoked location permission
func (h *LocationHandler) DenyPermission(c echo.Context) error {
	return h.sessionCall(c, h.sessionUC.Deny)
}

// PushPosition hands the session the device's latest fix
func (h *LocationHandler) PushPosition(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req PositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	status, err := h.sessionUC.Push(c.Request().Context(), userID, &usecase.Position{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Accuracy:  req.Accuracy,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

type sessionFunc func(ctx context.Context, userID string) (*usecase.SessionStatus, error)

func (h *LocationHandler) sessionCall(c echo.Context, call sessionFunc) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	status, err := call(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}
