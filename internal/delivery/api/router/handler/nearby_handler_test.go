package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	mockUC "github.com/46h1/buzzer/internal/mocks/usecase"
	"github.com/46h1/buzzer/internal/stream"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestNearbyHandler(t *testing.T) (*NearbyHandler, *mockUC.MockProximityUsecase) {
	t.Helper()

	proximityUC := mockUC.NewMockProximityUsecase(t)

	return NewNearbyHandler(NearbyHandlerParams{ProximityUC: proximityUC}), proximityUC
}

func TestNearbyHandler_FindNearby(t *testing.T) {
	h, proximityUC := newTestNearbyHandler(t)

	proximityUC.EXPECT().
		FindNearby(mock.Anything, &usecase.NearbyQuery{
			RequesterID: "alice",
			Latitude:    37.7749,
			Longitude:   -122.4194,
			Radius:      entity.RadiusSmall,
		}).
		Return([]*entity.ProximityResult{{UserID: "bob", DistanceMeters: 42}}, nil)

	rec := serve(t, route{http.MethodGet, "/nearby", h.FindNearby}, "alice", http.MethodGet,
		"/nearby?lat=37.7749&lon=-122.4194&radius=small", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []*entity.ProximityResult
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "bob", got[0].UserID)
}

func TestNearbyHandler_FindNearby_DefaultsToMedium(t *testing.T) {
	h, proximityUC := newTestNearbyHandler(t)

	proximityUC.EXPECT().
		FindNearby(mock.Anything, mock.MatchedBy(func(q *usecase.NearbyQuery) bool { return q.Radius == entity.RadiusMedium })).
		Return([]*entity.ProximityResult{}, nil)

	rec := serve(t, route{http.MethodGet, "/nearby", h.FindNearby}, "alice", http.MethodGet, "/nearby?lat=1&lon=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNearbyHandler_FindNearby_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "missing lat", target: "/nearby?lon=2", wantStatus: http.StatusBadRequest, wantCode: "INVALID_COORDINATES"},
		{name: "lat not a number", target: "/nearby?lat=north&lon=2", wantStatus: http.StatusBadRequest, wantCode: "INVALID_COORDINATES"},
		{name: "unknown radius", target: "/nearby?lat=1&lon=2&radius=huge", ucErr: domainerrors.ErrInvalidRadius, wantStatus: http.StatusBadRequest, wantCode: "INVALID_RADIUS"},
		{name: "index down", target: "/nearby?lat=1&lon=2", ucErr: domainerrors.ErrStorageUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: "STORAGE_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, proximityUC := newTestNearbyHandler(t)
			if tt.ucErr != nil {
				proximityUC.EXPECT().FindNearby(mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := serve(t, route{http.MethodGet, "/nearby", h.FindNearby}, "alice", http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestNearbyHandler_WatchNearby_StreamsSnapshots(t *testing.T) {
	h, proximityUC := newTestNearbyHandler(t)

	hub := stream.NewHub[[]*entity.ProximityResult](4)
	sub := hub.Subscribe(context.Background(), "watch-1")
	hub.Publish("watch-1", []*entity.ProximityResult{{UserID: "bob", DistanceMeters: 10}})
	hub.Publish("watch-1", []*entity.ProximityResult{})
	hub.Close()

	proximityUC.EXPECT().WatchNearby(mock.Anything, mock.Anything).Return(sub, nil)

	rec := serve(t, route{http.MethodGet, "/nearby/stream", h.WatchNearby}, "alice", http.MethodGet, "/nearby/stream?lat=1&lon=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "id: 1\nevent: nearby\ndata: ")
	assert.Contains(t, body, `"user_id":"bob"`)
	assert.Contains(t, body, "id: 2\nevent: nearby\n")
	assert.Less(t, strings.Index(body, "id: 1"), strings.Index(body, "id: 2"))
}
