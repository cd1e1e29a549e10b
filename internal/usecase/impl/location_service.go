package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/46h1/buzzer/config"
	reqctx "github.com/46h1/buzzer/internal/delivery/context"
	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/errors"
	"github.com/46h1/buzzer/internal/geo"
	"github.com/46h1/buzzer/internal/usecase"
	"github.com/46h1/buzzer/internal/util"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an unused per-user limiter is kept.
const limiterIdleTTL = 10 * time.Minute

type turn int

const (
	turnRun turn = iota
	turnSuperseded
)

// reportGate serialises the reports of one user. While a report is in flight at most one
// report waits; a newer arrival supersedes it.
type reportGate struct {
	parked *parkedReport
}

type parkedReport struct {
	signal chan turn
}

type locationService struct {
	index     repository.SpatialIndex
	userRepo  repository.UserRepository
	logger    *slog.Logger
	precision int
	maxSkew   time.Duration
	limiters  *limiterStore
	writers   *util.KeyedMutex
	now       func() time.Time

	mu    sync.Mutex
	gates map[string]*reportGate
}

// LocationServiceParams holds dependencies for the location service, injected by Fx
type LocationServiceParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Index    repository.SpatialIndex
	UserRepo repository.UserRepository
}

// NewLocationService creates the location update pipeline
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return newLocationService(params, time.Now)
}

func newLocationService(params LocationServiceParams, now func() time.Time) *locationService {
	cfg := params.Config.Location

	return &locationService{
		index:     params.Index,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
		precision: params.Config.Geo.StoragePrecision,
		maxSkew:   cfg.MaxClockSkew,
		limiters:  newLimiterStore(rate.Limit(cfg.RateLimit), cfg.RateBurst, now),
		writers:   util.NewKeyedMutex(),
		now:       now,
		gates:     make(map[string]*reportGate),
	}
}

// ReportLocation validates a report and applies it once the user's previous report is done
func (s *locationService) ReportLocation(ctx context.Context, report *usecase.LocationReport) (*usecase.ReportResult, error) {
	if err := s.normalize(report); err != nil {
		return nil, err
	}

	if report.Source != usecase.ReportSourceSession && !s.limiters.allow(report.UserID) {
		return nil, domainerrors.ErrTooManyReports
	}

	waited, err := s.acquire(ctx, report.UserID)
	if err != nil {
		return nil, err
	}
	if waited == turnSuperseded {
		return &usecase.ReportResult{Outcome: usecase.ReportSuperseded}, nil
	}
	defer s.release(report.UserID)

	return s.apply(ctx, report)
}

func (s *locationService) normalize(report *usecase.LocationReport) error {
	if report.UserID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}
	if !geo.ValidateCoordinates(report.Latitude, report.Longitude) {
		return domainerrors.ErrInvalidCoordinates
	}
	if report.Accuracy < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("accuracy must not be negative")
	}

	now := s.now()
	if report.ClientTimestamp.IsZero() {
		report.ClientTimestamp = now
	}
	if report.ClientTimestamp.After(now.Add(s.maxSkew)) {
		return domainerrors.ErrInvalidTimestamp.WithDetails(report.ClientTimestamp.UTC().Format(time.RFC3339))
	}

	return nil
}

// acquire takes the user's baton, parking behind the report in flight if there is one.
func (s *locationService) acquire(ctx context.Context, userID string) (turn, error) {
	s.mu.Lock()
	gate, busy := s.gates[userID]
	if !busy {
		s.gates[userID] = &reportGate{}
		s.mu.Unlock()

		return turnRun, nil
	}

	if gate.parked != nil {
		gate.parked.signal <- turnSuperseded
	}
	parked := &parkedReport{signal: make(chan turn, 1)}
	gate.parked = parked
	s.mu.Unlock()

	select {
	case t := <-parked.signal:
		return t, nil
	case <-ctx.Done():
	}

	s.mu.Lock()
	if gate.parked == parked {
		gate.parked = nil
		s.mu.Unlock()

		return 0, errors.WithStack(ctx.Err())
	}
	s.mu.Unlock()

	// a verdict was handed over while we were giving up
	if t := <-parked.signal; t == turnRun {
		s.release(userID)
	}

	return 0, errors.WithStack(ctx.Err())
}

// release passes the baton to the parked report, or frees the user when nobody waits.
func (s *locationService) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gate := s.gates[userID]
	if gate == nil {
		return
	}
	if gate.parked == nil {
		delete(s.gates, userID)

		return
	}

	next := gate.parked
	gate.parked = nil
	next.signal <- turnRun
}

func (s *locationService) apply(ctx context.Context, report *usecase.LocationReport) (*usecase.ReportResult, error) {
	unlock := s.writers.Lock(report.UserID)
	defer unlock()

	profile, err := s.userRepo.FindByID(ctx, report.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails(report.UserID)
		}

		return nil, storageError(err, "find profile")
	}

	record := entity.NewUserLocationRecord(
		report.UserID,
		report.Latitude,
		report.Longitude,
		report.Accuracy,
		profile.IsLocationSharingEnabled,
		report.ClientTimestamp,
		s.precision,
	)

	applied, err := s.index.Upsert(ctx, record)
	if err != nil {
		return nil, storageError(err, "upsert location")
	}

	if !applied {
		reqctx.GetLoggerOrDefault(ctx, s.logger).Debug("Stale location report ignored",
			slog.String("user_id", report.UserID),
			slog.Time("client_timestamp", report.ClientTimestamp),
		)

		return &usecase.ReportResult{Outcome: usecase.ReportStale}, nil
	}

	return &usecase.ReportResult{Outcome: usecase.ReportApplied, Record: record}, nil
}

// SetLocationSharing toggles ghost mode. It holds the user's writer lock so that a report in
// flight cannot write the old flag back.
func (s *locationService) SetLocationSharing(ctx context.Context, userID string, enabled bool) (*entity.UserProfile, error) {
	unlock := s.writers.Lock(userID)
	defer unlock()

	if err := s.userRepo.UpdateLocationSharing(ctx, userID, enabled); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails(userID)
		}

		return nil, storageError(err, "update location sharing")
	}

	if err := s.index.SetSharing(ctx, userID, enabled); err != nil {
		return nil, storageError(err, "set index sharing")
	}

	profile, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, storageError(err, "find profile")
	}

	reqctx.GetLoggerOrDefault(ctx, s.logger).Info("Location sharing changed",
		slog.String("user_id", userID),
		slog.Bool("enabled", enabled),
	)

	return profile, nil
}

// limiterStore keeps one token bucket per user and forgets idle ones.
type limiterStore struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	now       func() time.Time
	entries   map[string]*limiterEntry
	lastSweep time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterStore(limit rate.Limit, burst int, now func() time.Time) *limiterStore {
	return &limiterStore{
		limit:     limit,
		burst:     burst,
		now:       now,
		entries:   make(map[string]*limiterEntry),
		lastSweep: now(),
	}
}

func (l *limiterStore) allow(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for id, entry := range l.entries {
			if now.Sub(entry.lastSeen) > limiterIdleTTL {
				delete(l.entries, id)
			}
		}
		l.lastSweep = now
	}

	entry, ok := l.entries[userID]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[userID] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}
