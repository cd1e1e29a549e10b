package index

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/46h1/buzzer/internal/domain/entity"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func record(userID string, lat, lon float64, sharing bool, at time.Time) *entity.UserLocationRecord {
	return entity.NewUserLocationRecord(userID, lat, lon, 5, sharing, at, geo.StoragePrecision)
}

func userIDs(records []*entity.UserLocationRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.UserID)
	}
	sort.Strings(ids)

	return ids
}

// runSpatialIndexSuite checks the behaviour every SpatialIndex backend shares.
func runSpatialIndexSuite(t *testing.T, newIndex func(t *testing.T) repository.SpatialIndex) {
	t.Run("upsert then get", func(t *testing.T) {
		idx := newIndex(t)
		ctx := context.Background()

		applied, err := idx.Upsert(ctx, record("u1", 37.7749, -122.4194, true, baseTime))
		require.NoError(t, err)
		assert.True(t, applied)

		got, err := idx.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "9q8yyk8", got.Geohash)
		assert.InDelta(t, 37.7749, got.Latitude, 1e-9)
		assert.True(t, got.SharingEnabled)
		assert.True(t, baseTime.Equal(got.LastUpdated))
	})

	t.Run("get missing", func(t *testing.T) {
		idx := newIndex(t)

		_, err := idx.Get(context.Background(), "ghost")
		assert.ErrorIs(t, err, repository.ErrLocationNotFound)
	})

	t.Run("move replaces record and geohash", func(t *testing.T) {
		idx := newIndex(t)
		ctx := context.Background()

		_, err := idx.Upsert(ctx, record("u1", 37.7749, -122.4194, true, baseTime))
		require.NoError(t, err)
		applied, err := idx.Upsert(ctx, record("u1", 40.7128, -74.0060, true, baseTime.Add(time.Minute)))
		require.NoError(t, err)
		assert.True(t, applied)

		got, err := idx.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "dr5regw", got.Geohash)

		sf, err := idx.RangeQuery(ctx, "9q8y", "9q8y~")
		require.NoError(t, err)
		assert.Empty(t, sf)

		ny, err := idx.RangeQuery(ctx, "dr5r", "dr5r~")
		require.NoError(t, err)
		assert.Equal(t, []string{"u1"}, userIDs(ny))
	})

	t.Run("older report is not applied", func(t *testing.T) {
		idx := newIndex(t)
		ctx := context.Background()

		_, err := idx.Upsert(ctx, record("u1", 37.7749, -122.4194, true, baseTime))
		require.NoError(t, err)

		applied, err := idx.Upsert(ctx, record("u1", 40.7128, -74.0060, true, baseTime.Add(-time.Second)))
		require.NoError(t, err)
		assert.False(t, applied)

		got, err := idx.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "9q8yyk8", got.Geohash)
	})

	t.Run("range query honours bounds and sharing", func(t *testing.T) {
		idx := newIndex(t)
		ctx := context.Background()

		for _, r := range []*entity.UserLocationRecord{
			record("near", 37.7751, -122.4190, true, baseTime),
			record("edge", 37.78388, -122.4194, true, baseTime),
			record("ghost", 37.7750, -122.4195, false, baseTime),
			record("nyc", 40.7128, -74.0060, true, baseTime),
			record("next-cell", 37.8200, -122.4194, true, baseTime),
		} {
			_, err := idx.Upsert(ctx, r)
			require.NoError(t, err)
		}

		lower, upper := geo.PrefixRangeFor(37.7749, -122.4194, geo.SearchPrecision)
		got, err := idx.RangeQuery(ctx, lower, upper)
		require.NoError(t, err)
		assert.Equal(t, []string{"edge", "near"}, userIDs(got))

		for _, r := range got {
			assert.True(t, r.SharingEnabled)
			assert.True(t, r.Geohash >= lower && r.Geohash < upper)
		}
	})

	t.Run("set sharing hides and restores", func(t *testing.T) {
		idx := newIndex(t)
		ctx := context.Background()

		_, err := idx.Upsert(ctx, record("u1", 37.7749, -122.4194, true, baseTime))
		require.NoError(t, err)

		require.NoError(t, idx.SetSharing(ctx, "u1", false))
		got, err := idx.RangeQuery(ctx, "9q8y", "9q8y~")
		require.NoError(t, err)
		assert.Empty(t, got)

		rec, err := idx.Get(ctx, "u1")
		require.NoError(t, err)
		assert.False(t, rec.SharingEnabled)

		require.NoError(t, idx.SetSharing(ctx, "u1", true))
		got, err = idx.RangeQuery(ctx, "9q8y", "9q8y~")
		require.NoError(t, err)
		assert.Equal(t, []string{"u1"}, userIDs(got))

		assert.NoError(t, idx.SetSharing(ctx, "missing", false))
	})

	t.Run("concurrent writers keep the newest record", func(t *testing.T) {
		idx := newIndex(t)
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				lat := 37.70 + float64(i)*0.001
				_, err := idx.Upsert(ctx, record("u1", lat, -122.4194, true, baseTime.Add(time.Duration(i)*time.Second)))
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := idx.Get(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, baseTime.Add(15*time.Second).Equal(got.LastUpdated))
		assert.Equal(t, geo.Encode(37.70+15*0.001, -122.4194, geo.StoragePrecision), got.Geohash)

		all, err := idx.RangeQuery(ctx, "9", "9~")
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
