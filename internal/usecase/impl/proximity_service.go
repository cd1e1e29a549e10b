package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/46h1/buzzer/config"
	reqctx "github.com/46h1/buzzer/internal/delivery/context"
	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/errors"
	"github.com/46h1/buzzer/internal/geo"
	"github.com/46h1/buzzer/internal/stream"
	"github.com/46h1/buzzer/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type proximityService struct {
	index          repository.SpatialIndex
	hub            *stream.Hub[[]*entity.ProximityResult]
	logger         *slog.Logger
	searchPrefix   int
	neighborSearch bool
	maxResults     int
	watchInterval  time.Duration
	watchSeq       atomic.Uint64
}

// ProximityServiceParams holds dependencies for the proximity service, injected by Fx
type ProximityServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Index  repository.SpatialIndex
	Hub    *stream.Hub[[]*entity.ProximityResult]
}

// NewProximityService creates the proximity query engine
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	return &proximityService{
		index:          params.Index,
		hub:            params.Hub,
		logger:         params.Logger,
		searchPrefix:   params.Config.Geo.SearchPrecision,
		neighborSearch: params.Config.Geo.NeighborSearch,
		maxResults:     params.Config.Proximity.MaxResults,
		watchInterval:  params.Config.Proximity.WatchInterval,
	}
}

// FindNearby returns sharing users within the query radius, nearest first
func (s *proximityService) FindNearby(ctx context.Context, query *usecase.NearbyQuery) ([]*entity.ProximityResult, error) {
	radius, err := validateNearbyQuery(query)
	if err != nil {
		return nil, err
	}

	candidates, err := s.candidates(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]*entity.ProximityResult, 0, len(candidates))
	for _, record := range candidates {
		// the index filters ghosts too, but a racing SetSharing may have flipped the flag since
		if record.UserID == query.RequesterID || !record.SharingEnabled {
			continue
		}

		distance := geo.Distance(query.Latitude, query.Longitude, record.Latitude, record.Longitude)
		if distance > radius {
			continue
		}

		results = append(results, &entity.ProximityResult{
			UserID:         record.UserID,
			DistanceMeters: distance,
			Location:       record,
		})
	}

	slices.SortFunc(results, func(a, b *entity.ProximityResult) int {
		if c := cmp.Compare(a.DistanceMeters, b.DistanceMeters); c != 0 {
			return c
		}

		return strings.Compare(a.UserID, b.UserID)
	})

	if s.maxResults > 0 && len(results) > s.maxResults {
		results = results[:s.maxResults]
	}

	return results, nil
}

// candidates reads the search cell, plus its neighbours when enabled, deduplicated by user.
func (s *proximityService) candidates(ctx context.Context, query *usecase.NearbyQuery) ([]*entity.UserLocationRecord, error) {
	center := geo.Encode(query.Latitude, query.Longitude, s.searchPrefix)
	prefixes := []string{center}
	if s.neighborSearch {
		neighbors, err := geo.Neighbors(center)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		prefixes = append(prefixes, neighbors...)
	}

	var (
		mu   sync.Mutex
		seen = make(map[string]*entity.UserLocationRecord)
	)

	group, groupCtx := errgroup.WithContext(ctx)
	for _, prefix := range prefixes {
		group.Go(func() error {
			lower, upper := geo.PrefixRange(prefix)
			records, err := s.index.RangeQuery(groupCtx, lower, upper)
			if err != nil {
				return storageError(err, "range query "+prefix)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, record := range records {
				seen[record.UserID] = record
			}

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	records := make([]*entity.UserLocationRecord, 0, len(seen))
	for _, record := range seen {
		records = append(records, record)
	}

	return records, nil
}

// WatchNearby streams the query result every watch interval until the subscription ends
func (s *proximityService) WatchNearby(ctx context.Context, query *usecase.NearbyQuery) (*usecase.NearbySubscription, error) {
	if _, err := validateNearbyQuery(query); err != nil {
		return nil, err
	}

	key := query.RequesterID + "#" + strconv.FormatUint(s.watchSeq.Add(1), 10)
	sub := s.hub.Subscribe(ctx, key)

	go s.watch(ctx, key, query)

	return sub, nil
}

func (s *proximityService) watch(ctx context.Context, key string, query *usecase.NearbyQuery) {
	logger := reqctx.GetLoggerOrDefault(ctx, s.logger)
	ticker := time.NewTicker(s.watchInterval)
	defer ticker.Stop()

	load := func(ctx context.Context) ([]*entity.ProximityResult, error) {
		return s.FindNearby(ctx, query)
	}

	for {
		if !s.hub.HasSubscribers(key) {
			return
		}

		if err := s.hub.Refresh(ctx, key, load); err != nil && ctx.Err() == nil {
			logger.Warn("Nearby refresh failed, retrying on next tick",
				slog.String("watch", key),
				slog.Any("error", err),
			)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func validateNearbyQuery(query *usecase.NearbyQuery) (float64, error) {
	if !geo.ValidateCoordinates(query.Latitude, query.Longitude) {
		return 0, domainerrors.ErrInvalidCoordinates
	}

	radius, ok := query.Radius.Meters()
	if !ok {
		return 0, domainerrors.ErrInvalidRadius.WithDetails(string(query.Radius))
	}

	return radius, nil
}
