package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/46h1/buzzer/config"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/lifecycle"
	"github.com/46h1/buzzer/internal/errors"
	"github.com/46h1/buzzer/internal/geo"
	"github.com/46h1/buzzer/internal/usecase"
	"github.com/46h1/buzzer/internal/util"

	"go.uber.org/fx"
)

type locationSession struct {
	state        usecase.SessionState
	position     *usecase.Position
	reported     bool
	lastOutcome  usecase.ReportOutcome
	lastReportAt *time.Time
	lastErr      string
	cancel       context.CancelFunc
	kick         chan struct{}
}

func (s *locationSession) status() *usecase.SessionStatus {
	return &usecase.SessionStatus{
		State:        s.state,
		LastOutcome:  s.lastOutcome,
		LastReportAt: s.lastReportAt,
		LastError:    s.lastErr,
	}
}

type locationSessionManager struct {
	location usecase.LocationUsecase
	logger   *slog.Logger
	interval time.Duration
	baseCtx  context.Context
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*locationSession
	wg       sync.WaitGroup
}

// LocationSessionParams holds dependencies for the session manager, injected by Fx
type LocationSessionParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Location usecase.LocationUsecase
}

// NewLocationSessionManager creates the session manager. Every session is stopped on shutdown.
func NewLocationSessionManager(params LocationSessionParams) usecase.LocationSessionUsecase {
	manager := newLocationSessionManager(params.Ctx, params.Location, params.Logger, params.Config.Location.UpdateInterval)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return manager.stopAll(stopCtx)
		},
	})

	return manager
}

func newLocationSessionManager(ctx context.Context, location usecase.LocationUsecase, logger *slog.Logger, interval time.Duration) *locationSessionManager {
	return &locationSessionManager{
		location: location,
		logger:   logger,
		interval: interval,
		baseCtx:  ctx,
		now:      time.Now,
		sessions: make(map[string]*locationSession),
	}
}

// Start begins the user's session. A session already running is left as is.
func (m *locationSessionManager) Start(_ context.Context, userID string) (*usecase.SessionStatus, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if ok && sess.state == usecase.SessionActive {
		return sess.status(), nil
	}
	if !ok {
		sess = &locationSession{}
		m.sessions[userID] = sess
	}

	ctx, cancel := context.WithCancel(m.baseCtx)
	sess.state = usecase.SessionActive
	sess.reported = false
	sess.lastErr = ""
	sess.cancel = cancel
	sess.kick = make(chan struct{}, 1)
	if sess.position != nil {
		sess.kick <- struct{}{}
	}

	m.wg.Add(1)
	go m.run(ctx, userID, sess)

	m.logger.Info("Location session started",
		slog.String("user_id", userID),
		slog.String("interval", util.FormatDuration(m.interval)),
	)

	return sess.status(), nil
}

// Push stores the latest position. The first position of a session is reported right away.
// Users without a session are refused, so no state is kept for them.
func (m *locationSessionManager) Push(_ context.Context, userID string, position *usecase.Position) (*usecase.SessionStatus, error) {
	if !geo.ValidateCoordinates(position.Latitude, position.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}
	if position.Accuracy < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("accuracy must not be negative")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if !ok {
		return nil, domainerrors.ErrLocationSessionNotStarted
	}
	if sess.state == usecase.SessionPermissionDenied {
		return nil, domainerrors.ErrLocationPermissionDenied
	}

	pos := *position
	sess.position = &pos

	if sess.state == usecase.SessionActive && !sess.reported {
		select {
		case sess.kick <- struct{}{}:
		default:
		}
	}

	return sess.status(), nil
}

// Deny stops the session for good. Only Start resumes reporting.
func (m *locationSessionManager) Deny(_ context.Context, userID string) (*usecase.SessionStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if !ok {
		sess = &locationSession{}
		m.sessions[userID] = sess
	}
	if sess.cancel != nil {
		sess.cancel()
		sess.cancel = nil
	}
	sess.state = usecase.SessionPermissionDenied
	sess.position = nil
	sess.lastErr = domainerrors.ErrLocationPermissionDenied.Message()

	m.logger.Info("Location permission denied, session stopped", slog.String("user_id", userID))

	return sess.status(), nil
}

// Stop ends the session and forgets the user's position.
func (m *locationSessionManager) Stop(_ context.Context, userID string) (*usecase.SessionStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[userID]; ok {
		if sess.cancel != nil {
			sess.cancel()
		}
		delete(m.sessions, userID)

		m.logger.Info("Location session stopped", slog.String("user_id", userID))
	}

	return &usecase.SessionStatus{State: usecase.SessionIdle}, nil
}

// Status reports the user's session state.
func (m *locationSessionManager) Status(_ context.Context, userID string) (*usecase.SessionStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[userID]; ok {
		return sess.status(), nil
	}

	return &usecase.SessionStatus{State: usecase.SessionIdle}, nil
}

func (m *locationSessionManager) run(ctx context.Context, userID string, sess *locationSession) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sess.kick:
		case <-ticker.C:
		}

		m.tick(ctx, userID, sess)
	}
}

// tick reports the latest position once. Failures are recorded and retried on the next tick.
func (m *locationSessionManager) tick(ctx context.Context, userID string, sess *locationSession) {
	m.mu.Lock()
	if sess.state != usecase.SessionActive || sess.position == nil || ctx.Err() != nil {
		m.mu.Unlock()

		return
	}
	pos := *sess.position
	m.mu.Unlock()

	result, err := m.location.ReportLocation(ctx, &usecase.LocationReport{
		UserID:          userID,
		Latitude:        pos.Latitude,
		Longitude:       pos.Longitude,
		Accuracy:        pos.Accuracy,
		ClientTimestamp: m.now(),
		Source:          usecase.ReportSourceSession,
	})

	m.mu.Lock()
	defer m.mu.Unlock()

	// denied or stopped while the report was in flight
	if ctx.Err() != nil || sess.state != usecase.SessionActive {
		return
	}

	if err != nil {
		sess.lastErr = err.Error()
		m.logger.Warn("Session location update failed, retrying on next tick",
			slog.String("user_id", userID),
			slog.String("kind", string(domainerrors.KindOf(err))),
			slog.Any("error", err),
		)

		return
	}

	at := m.now()
	sess.reported = true
	sess.lastErr = ""
	sess.lastOutcome = result.Outcome
	sess.lastReportAt = &at
}

// stopAll cancels every session and waits for their loops to exit.
func (m *locationSessionManager) stopAll(ctx context.Context) error {
	m.mu.Lock()
	for userID, sess := range m.sessions {
		if sess.cancel != nil {
			sess.cancel()
		}
		delete(m.sessions, userID)
	}
	m.mu.Unlock()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All location sessions stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for location sessions")
	}
}
