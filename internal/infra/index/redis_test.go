package index

import (
	"context"
	"testing"

	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/geo"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisIndex(t *testing.T) (*RedisIndex, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisIndex(client, "test", geo.StoragePrecision), mr
}

func TestRedisIndex(t *testing.T) {
	runSpatialIndexSuite(t, func(t *testing.T) repository.SpatialIndex {
		idx, _ := newTestRedisIndex(t)

		return idx
	})
}

func TestRedisIndex_MoveLeavesSingleMember(t *testing.T) {
	idx, mr := newTestRedisIndex(t)
	ctx := context.Background()

	_, err := idx.Upsert(ctx, record("u1", 37.7749, -122.4194, true, baseTime))
	require.NoError(t, err)
	_, err = idx.Upsert(ctx, record("u1", 40.7128, -74.0060, true, baseTime.Add(1)))
	require.NoError(t, err)

	members, err := mr.ZMembers("test:geo")
	require.NoError(t, err)
	assert.Equal(t, []string{"dr5regw|u1"}, members)
}

func TestRedisIndex_EqualTimestampApplies(t *testing.T) {
	idx, _ := newTestRedisIndex(t)
	ctx := context.Background()

	_, err := idx.Upsert(ctx, record("u1", 37.7749, -122.4194, true, baseTime))
	require.NoError(t, err)

	applied, err := idx.Upsert(ctx, record("u1", 37.7751, -122.4190, true, baseTime))
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestRedisIndex_ServerDownIsError(t *testing.T) {
	idx, mr := newTestRedisIndex(t)
	mr.Close()

	_, err := idx.RangeQuery(context.Background(), "9q8y", "9q8y~")
	assert.Error(t, err)
}

func TestEncodeTimestamp_SortsNumerically(t *testing.T) {
	earlier := encodeTimestamp(baseTime)
	later := encodeTimestamp(baseTime.Add(1))

	assert.Len(t, earlier, 20)
	assert.Less(t, earlier, later)
}
