package handler

import (
	"net/http"
	"strings"

	"github.com/46h1/buzzer/internal/delivery/api/response"
	"github.com/46h1/buzzer/internal/domain/service"
	"github.com/46h1/buzzer/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Storage service.MediaStorage
}

// MediaHandler serves stored media when the bucket has no public endpoint of its own,
// e.g. file:// buckets in development.
type MediaHandler struct {
	storage service.MediaStorage
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{storage: params.Storage}
}

// GetMedia streams the object named by the wildcard path
func (h *MediaHandler) GetMedia(c echo.Context) error {
	path := strings.TrimPrefix(c.Param("*"), "/")
	if path == "" || strings.Contains(path, "..") {
		return response.Error(c, http.StatusNotFound, "MEDIA_NOT_FOUND", "Media not found", nil)
	}

	data, contentType, err := h.storage.Read(c.Request().Context(), path)
	switch {
	case errors.Is(err, service.ErrMediaNotFound):
		return response.Error(c, http.StatusNotFound, "MEDIA_NOT_FOUND", "Media not found", nil)
	case errors.Is(err, service.ErrMediaPermissionDenied):
		return response.Error(c, http.StatusForbidden, "MEDIA_FORBIDDEN", "Media is not accessible", nil)
	case err != nil:
		return errors.Wrap(err, "read media")
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=300")

	return c.Blob(http.StatusOK, contentType, data)
}
