package impl

import (
	"context"
	"testing"
	"time"

	"github.com/46h1/buzzer/config"
	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/geo"
	mockRepo "github.com/46h1/buzzer/internal/mocks/repository"
	"github.com/46h1/buzzer/internal/stream"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	sfLat = 37.7749
	sfLon = -122.4194
	// one meter of latitude in degrees near San Francisco
	degPerMeter = 0.00000899322
)

type proximityServiceFixtures struct {
	service usecase.ProximityUsecase
	index   *mockRepo.MockSpatialIndex
	hub     *stream.Hub[[]*entity.ProximityResult]
}

func createTestProximityService(t *testing.T, mutate func(cfg *config.Config)) proximityServiceFixtures {
	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}

	index := mockRepo.NewMockSpatialIndex(t)
	hub := stream.NewHub[[]*entity.ProximityResult](cfg.Stream.BufferSize)
	t.Cleanup(hub.Close)

	service := NewProximityService(ProximityServiceParams{
		Config: cfg,
		Logger: discardLogger(),
		Index:  index,
		Hub:    hub,
	})

	return proximityServiceFixtures{
		service: service,
		index:   index,
		hub:     hub,
	}
}

// northOf returns a sharing record metersNorth of the San Francisco test point.
func northOf(userID string, metersNorth float64) *entity.UserLocationRecord {
	return entity.NewUserLocationRecord(userID, sfLat+metersNorth*degPerMeter, sfLon, 5, true, testNow, geo.StoragePrecision)
}

func resultIDs(results []*entity.ProximityResult) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.UserID)
	}

	return ids
}

func TestProximityService_FindNearby_FiltersAndSorts(t *testing.T) {
	env := createTestProximityService(t, nil)
	ctx := context.Background()

	ghost := northOf("ghost", 10)
	ghost.SharingEnabled = false

	env.index.EXPECT().
		RangeQuery(mock.Anything, "9q8y", "9q8y~").
		Return([]*entity.UserLocationRecord{
			northOf("far", 150),
			northOf("bob", 80),
			northOf("self", 0),
			ghost,
			northOf("amy", 80),
			northOf("edge", 99),
		}, nil)

	results, err := env.service.FindNearby(ctx, &usecase.NearbyQuery{
		RequesterID: "self",
		Latitude:    sfLat,
		Longitude:   sfLon,
		Radius:      entity.RadiusSmall,
	})
	require.NoError(t, err)

	// equal distances are ordered by user id
	assert.Equal(t, []string{"amy", "bob", "edge"}, resultIDs(results))
	assert.InDelta(t, 80, results[0].DistanceMeters, 0.5)
	assert.Equal(t, "amy", results[0].Location.UserID)
}

func TestProximityService_FindNearby_MediumRadiusBoundary(t *testing.T) {
	env := createTestProximityService(t, nil)
	ctx := context.Background()

	env.index.EXPECT().
		RangeQuery(mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.UserLocationRecord{
			northOf("u5000", 5000),
			northOf("u1001", 1001),
			northOf("self", 0),
			northOf("u999", 999),
			northOf("u50", 50),
		}, nil)

	results, err := env.service.FindNearby(ctx, &usecase.NearbyQuery{
		RequesterID: "self",
		Latitude:    sfLat,
		Longitude:   sfLon,
		Radius:      entity.RadiusMedium,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"u50", "u999"}, resultIDs(results))
	assert.InDelta(t, 50, results[0].DistanceMeters, 0.5)
	assert.InDelta(t, 999, results[1].DistanceMeters, 0.5)
}

func TestProximityService_FindNearby_MaxResults(t *testing.T) {
	env := createTestProximityService(t, func(cfg *config.Config) { cfg.Proximity.MaxResults = 2 })
	ctx := context.Background()

	env.index.EXPECT().
		RangeQuery(mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.UserLocationRecord{northOf("c", 300), northOf("a", 100), northOf("b", 200)}, nil)

	results, err := env.service.FindNearby(ctx, &usecase.NearbyQuery{
		RequesterID: "self",
		Latitude:    sfLat,
		Longitude:   sfLon,
		Radius:      entity.RadiusMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, resultIDs(results))
}

func TestProximityService_FindNearby_NeighborSearch(t *testing.T) {
	env := createTestProximityService(t, func(cfg *config.Config) { cfg.Geo.NeighborSearch = true })
	ctx := context.Background()

	neighbors, err := geo.Neighbors("9q8y")
	require.NoError(t, err)

	dup := northOf("dup", 50)
	env.index.EXPECT().RangeQuery(mock.Anything, "9q8y", "9q8y~").Return([]*entity.UserLocationRecord{dup}, nil)
	for _, cell := range neighbors {
		lower, upper := geo.PrefixRange(cell)
		env.index.EXPECT().RangeQuery(mock.Anything, lower, upper).Return([]*entity.UserLocationRecord{dup}, nil)
	}

	results, err := env.service.FindNearby(ctx, &usecase.NearbyQuery{
		RequesterID: "self",
		Latitude:    sfLat,
		Longitude:   sfLon,
		Radius:      entity.RadiusLarge,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"dup"}, resultIDs(results))
}

func TestProximityService_FindNearby_Validation(t *testing.T) {
	env := createTestProximityService(t, nil)

	_, err := env.service.FindNearby(context.Background(), &usecase.NearbyQuery{Latitude: 95, Radius: entity.RadiusSmall})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)

	_, err = env.service.FindNearby(context.Background(), &usecase.NearbyQuery{Radius: "huge"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
}

func TestProximityService_FindNearby_IndexFailure(t *testing.T) {
	env := createTestProximityService(t, nil)

	env.index.EXPECT().
		RangeQuery(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("i/o timeout"))

	_, err := env.service.FindNearby(context.Background(), &usecase.NearbyQuery{Latitude: 1, Longitude: 1, Radius: entity.RadiusSmall})
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindTransientIO))
}

func TestProximityService_WatchNearby_StreamsUntilClosed(t *testing.T) {
	env := createTestProximityService(t, func(cfg *config.Config) { cfg.Proximity.WatchInterval = 10 * time.Millisecond })
	ctx := context.Background()

	env.index.EXPECT().
		RangeQuery(mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.UserLocationRecord{northOf("bob", 20)}, nil)

	sub, err := env.service.WatchNearby(ctx, &usecase.NearbyQuery{
		RequesterID: "self",
		Latitude:    sfLat,
		Longitude:   sfLon,
		Radius:      entity.RadiusSmall,
	})
	require.NoError(t, err)

	var last uint64
	for range 2 {
		select {
		case snap := <-sub.C():
			assert.Greater(t, snap.Seq, last)
			last = snap.Seq
			assert.Equal(t, []string{"bob"}, resultIDs(snap.Data))
		case <-time.After(time.Second):
			t.Fatal("no snapshot")
		}
	}

	sub.Close()
	require.Eventually(t, func() bool { return !env.hub.HasSubscribers(sub.Key()) }, time.Second, 5*time.Millisecond)
}

func TestProximityService_WatchNearby_RejectsInvalidQuery(t *testing.T) {
	env := createTestProximityService(t, nil)

	_, err := env.service.WatchNearby(context.Background(), &usecase.NearbyQuery{Radius: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
}
