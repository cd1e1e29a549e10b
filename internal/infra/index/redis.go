package index

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/46h1/buzzer/config"
	"github.com/46h1/buzzer/internal/domain/entity"
	"github.com/46h1/buzzer/internal/domain/lifecycle"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const memberSeparator = "|"

// upsertScript applies a record only when it is not older than the stored one.
// Timestamps are fixed-width decimal strings, so string comparison is numeric comparison.
//
// KEYS[1] record hash, KEYS[2] geohash sorted set
// ARGV: ts, member, lat, lon, acc, geohash, sharing
var upsertScript = redis.NewScript(`
local prev = redis.call('HMGET', KEYS[1], 'ts', 'member')
if prev[1] and prev[1] > ARGV[1] then
	return 0
end
if prev[2] and prev[2] ~= ARGV[2] then
	redis.call('ZREM', KEYS[2], prev[2])
end
redis.call('HSET', KEYS[1], 'ts', ARGV[1], 'member', ARGV[2], 'lat', ARGV[3], 'lon', ARGV[4],
	'acc', ARGV[5], 'geohash', ARGV[6], 'sharing', ARGV[7])
redis.call('ZADD', KEYS[2], 0, ARGV[2])
return 1
`)

var setSharingScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	redis.call('HSET', KEYS[1], 'sharing', ARGV[1])
end
return 1
`)

// RedisIndex stores one hash per user and a sorted set of "geohash|userID" members with equal
// scores, so ZRANGEBYLEX walks the members in geohash order.
type RedisIndex struct {
	client    redis.UniversalClient
	prefix    string
	precision int
}

// NewRedisIndex creates a Redis-backed index. Keys are namespaced by keyPrefix.
func NewRedisIndex(client redis.UniversalClient, keyPrefix string, precision int) *RedisIndex {
	return &RedisIndex{
		client:    client,
		prefix:    keyPrefix,
		precision: precision,
	}
}

func (r *RedisIndex) recordKey(userID string) string {
	return r.prefix + ":loc:" + userID
}

func (r *RedisIndex) geoKey() string {
	return r.prefix + ":geo"
}

func (r *RedisIndex) Upsert(ctx context.Context, record *entity.UserLocationRecord) (bool, error) {
	next := record.Clone()
	next.Rehash(r.precision)

	res, err := upsertScript.Run(ctx, r.client,
		[]string{r.recordKey(next.UserID), r.geoKey()},
		encodeTimestamp(next.LastUpdated),
		next.Geohash+memberSeparator+next.UserID,
		strconv.FormatFloat(next.Latitude, 'f', -1, 64),
		strconv.FormatFloat(next.Longitude, 'f', -1, 64),
		strconv.FormatFloat(next.Accuracy, 'f', -1, 64),
		next.Geohash,
		encodeBool(next.SharingEnabled),
	).Int()
	if err != nil {
		return false, errors.Wrap(err, "redis upsert location")
	}

	return res == 1, nil
}

func (r *RedisIndex) SetSharing(ctx context.Context, userID string, enabled bool) error {
	if err := setSharingScript.Run(ctx, r.client, []string{r.recordKey(userID)}, encodeBool(enabled)).Err(); err != nil {
		return errors.Wrap(err, "redis set sharing")
	}

	return nil
}

func (r *RedisIndex) RangeQuery(ctx context.Context, lower, upper string) ([]*entity.UserLocationRecord, error) {
	members, err := r.client.ZRangeByLex(ctx, r.geoKey(), &redis.ZRangeBy{
		Min: "[" + lower,
		Max: "(" + upper,
	}).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis range query")
	}
	if len(members) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(members))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, member := range members {
			_, userID, _ := strings.Cut(member, memberSeparator)
			cmds[i] = pipe.HGetAll(ctx, r.recordKey(userID))
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "redis load range records")
	}

	out := make([]*entity.UserLocationRecord, 0, len(members))
	for i, member := range members {
		fields := cmds[i].Val()
		// the user may have moved between the two reads
		if len(fields) == 0 || fields["member"] != member {
			continue
		}
		_, userID, _ := strings.Cut(member, memberSeparator)
		rec, err := decodeRecord(userID, fields)
		if err != nil {
			return nil, err
		}
		if rec.SharingEnabled {
			out = append(out, rec)
		}
	}

	return out, nil
}

func (r *RedisIndex) Get(ctx context.Context, userID string) (*entity.UserLocationRecord, error) {
	fields, err := r.client.HGetAll(ctx, r.recordKey(userID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis get location")
	}
	if len(fields) == 0 {
		return nil, repository.ErrLocationNotFound
	}

	return decodeRecord(userID, fields)
}

func encodeTimestamp(t time.Time) string {
	nanos := t.UnixNano()
	if nanos < 0 {
		nanos = 0
	}

	return fmt.Sprintf("%020d", nanos)
}

func encodeBool(b bool) string {
	if b {
		return "1"
	}

	return "0"
}

func decodeRecord(userID string, fields map[string]string) (*entity.UserLocationRecord, error) {
	lat, err := strconv.ParseFloat(fields["lat"], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "decode lat of %s", userID)
	}
	lon, err := strconv.ParseFloat(fields["lon"], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "decode lon of %s", userID)
	}
	acc, err := strconv.ParseFloat(fields["acc"], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "decode accuracy of %s", userID)
	}
	nanos, err := strconv.ParseInt(fields["ts"], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "decode timestamp of %s", userID)
	}

	return &entity.UserLocationRecord{
		UserID:         userID,
		Latitude:       lat,
		Longitude:      lon,
		Accuracy:       acc,
		Geohash:        fields["geohash"],
		SharingEnabled: fields["sharing"] == "1",
		LastUpdated:    time.Unix(0, nanos).UTC(),
	}, nil
}

// RedisClientParams holds dependencies for the Redis client, injected by Fx
type RedisClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to the configured Redis and closes it on shutdown.
func NewRedisClient(params RedisClientParams) (redis.UniversalClient, error) {
	cfg := params.Config.Index.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("index.redis.addr is required for the redis backend")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Connected to Redis", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

var _ repository.SpatialIndex = (*RedisIndex)(nil)
