package index

import (
	"context"
	"log/slog"

	"github.com/46h1/buzzer/config"
	"github.com/46h1/buzzer/internal/domain/constants"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/errors"
	"github.com/46h1/buzzer/internal/infra/firebaseapp"
	"github.com/46h1/buzzer/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params holds dependencies for the spatial index, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewSpatialIndex builds the backend named by index.backend.
func NewSpatialIndex(params Params) (repository.SpatialIndex, error) {
	cfg := params.Config.Index
	precision := params.Config.Geo.StoragePrecision
	logger := params.Logger

	switch cfg.Backend {
	case constants.IndexBackendMemory, "":
		logger.Info("Using in-memory spatial index")

		return NewMemoryIndex(precision), nil

	case constants.IndexBackendPostgres:
		logger.Info("Using Postgres spatial index")

		return postgres.NewLocationIndex(params.DB, precision), nil

	case constants.IndexBackendRedis:
		client, err := NewRedisClient(RedisClientParams{
			Lc:     params.Lc,
			Config: params.Config,
			Logger: logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using Redis spatial index", slog.String("key_prefix", cfg.Redis.KeyPrefix))

		return NewRedisIndex(client, cfg.Redis.KeyPrefix, precision), nil

	case constants.IndexBackendFirestore:
		app, err := firebaseapp.NewApp(params.Ctx, params.Config.Firebase)
		if err != nil {
			return nil, err
		}
		client, err := app.Firestore(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get Firestore client")
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		logger.Info("Using Firestore spatial index", slog.String("collection", cfg.FirestoreCollection))

		return NewFirestoreIndex(client, cfg.FirestoreCollection, precision), nil

	default:
		return nil, errors.Errorf("unknown index backend: %s", cfg.Backend)
	}
}

// Module provides the spatial index FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSpatialIndex),
)
