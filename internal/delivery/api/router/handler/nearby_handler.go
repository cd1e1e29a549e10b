package handler

import (
	"net/http"

	"github.com/46h1/buzzer/internal/delivery/api/middleware"
	"github.com/46h1/buzzer/internal/delivery/api/response"
	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NearbyHandlerParams holds dependencies for NearbyHandler, injected by Fx.
type NearbyHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
}

// NearbyHandler answers "who is near me"
type NearbyHandler struct {
	proximityUC usecase.ProximityUsecase
}

// NewNearbyHandler is the constructor for NearbyHandler
func NewNearbyHandler(params NearbyHandlerParams) *NearbyHandler {
	return &NearbyHandler{proximityUC: params.ProximityUC}
}

// FindNearby handles GET /nearby?lat=&lon=&radius=
func (h *NearbyHandler) FindNearby(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	query, err := parseNearbyQuery(c, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results, err := h.proximityUC.FindNearby(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results)
}

// WatchNearby streams refreshed nearby results as server-sent events
func (h *NearbyHandler) WatchNearby(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	query, err := parseNearbyQuery(c, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sub, err := h.proximityUC.WatchNearby(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Stream(c, "nearby", sub)
}

// parseNearbyQuery reads lat, lon and radius. A missing radius means medium.
func parseNearbyQuery(c echo.Context, userID string) (*usecase.NearbyQuery, error) {
	var (
		lat, lon float64
		radius   string
	)
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lon", &lon).
		String("radius", &radius).
		BindError()
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails("lat and lon are required numbers")
	}

	if radius == "" {
		radius = string(entity.RadiusMedium)
	}

	return &usecase.NearbyQuery{
		RequesterID: userID,
		Latitude:    lat,
		Longitude:   lon,
		Radius:      entity.RadiusClass(radius),
	}, nil
}
