package handler

import (
	"io"
	"net/http"

	"github.com/46h1/buzzer/config"
	"github.com/46h1/buzzer/internal/delivery/api/middleware"
	"github.com/46h1/buzzer/internal/delivery/api/response"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
}

// ProfileHandler serves the caller's own profile
type ProfileHandler struct {
	profileUC      usecase.ProfileUsecase
	maxUploadBytes int64
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC:      params.ProfileUC,
		maxUploadBytes: params.Config.Media.MaxUploadBytes,
	}
}

// PutProfileRequest is the body of PUT /profile. Every field is optional.
type PutProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=50"`
}

// SharingRequest toggles ghost mode
type SharingRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// PutProfile creates the caller's profile on first sign-in and applies the requested changes.
// It answers 201 when the profile was created.
func (h *ProfileHandler) PutProfile(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return unauthorized(c)
	}

	var req PutProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	ctx := c.Request().Context()
	profile, created, err := h.profileUC.EnsureProfile(ctx, identity.UserID, &usecase.EnsureProfileInput{
		DisplayName: identity.DisplayName,
		Email:       identity.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if req.DisplayName != nil {
		profile, err = h.profileUC.UpdateProfile(ctx, identity.UserID, &usecase.UpdateProfileInput{
			DisplayName: req.DisplayName,
		})
		if err != nil {
			return response.HandleAppError(c, err)
		}
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, profile)
}

// GetProfile returns the caller's profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// SetLocationSharing turns ghost mode on or off
func (h *ProfileHandler) SetLocationSharing(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req SharingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sharing input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	profile, err := h.profileUC.SetLocationSharing(c.Request().Context(), userID, *req.Enabled)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UploadProfilePicture stores the raw request body as the caller's picture.
// The Content-Type header names the image format.
func (h *ProfileHandler) UploadProfilePicture(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	// One byte past the limit is enough for the usecase to reject the upload
	data, err := io.ReadAll(io.LimitReader(c.Request().Body, h.maxUploadBytes+1))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Could not read picture")
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)

	profile, err := h.profileUC.UploadProfilePicture(c.Request().Context(), userID, contentType, data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
