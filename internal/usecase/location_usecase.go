package usecase

import (
	"context"
	"time"

	"github.com/46h1/buzzer/internal/domain/entity"
)

// ReportSource tells the pipeline where a report came from. Only immediate reports are rate limited.
type ReportSource string

const (
	ReportSourceImmediate ReportSource = "immediate"
	ReportSourceSession   ReportSource = "session"
)

// LocationReport is one position report of a user.
type LocationReport struct {
	UserID          string       `json:"user_id"`
	Latitude        float64      `json:"latitude"`
	Longitude       float64      `json:"longitude"`
	Accuracy        float64      `json:"accuracy"`
	ClientTimestamp time.Time    `json:"client_timestamp"` // Zero means server time.
	Source          ReportSource `json:"-"`
}

// ReportOutcome says what happened to a report.
type ReportOutcome string

const (
	// ReportApplied means the record now reflects the report.
	ReportApplied ReportOutcome = "applied"
	// ReportSuperseded means a newer report for the same user arrived while this one was waiting.
	ReportSuperseded ReportOutcome = "superseded"
	// ReportStale means the stored record is newer than the report.
	ReportStale ReportOutcome = "stale"
)

// ReportResult is the outcome of ReportLocation. Record is set when the report was applied.
type ReportResult struct {
	Outcome ReportOutcome              `json:"outcome"`
	Record  *entity.UserLocationRecord `json:"record,omitempty"`
}

// LocationUsecase writes user locations into the spatial index.
type LocationUsecase interface {
	// ReportLocation validates and applies one report. At most one report per user is applied
	// at a time; while one is in flight only the latest waiting report is kept.
	ReportLocation(ctx context.Context, report *LocationReport) (*ReportResult, error)

	// SetLocationSharing toggles ghost mode on the profile and the index record.
	SetLocationSharing(ctx context.Context, userID string, enabled bool) (*entity.UserProfile, error)
}

// Position is the latest fix a client pushed into its session.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionState is the state of a user's reporting session.
type SessionState string

const (
	SessionIdle             SessionState = "idle"
	SessionActive           SessionState = "active"
	SessionPermissionDenied SessionState = "permission_denied"
)

// SessionStatus describes a reporting session.
type SessionStatus struct {
	State        SessionState  `json:"state"`
	LastOutcome  ReportOutcome `json:"last_outcome,omitempty"`
	LastReportAt *time.Time    `json:"last_report_at,omitempty"`
	LastError    string        `json:"last_error,omitempty"`
}

// LocationSessionUsecase runs recurring location reporting for signed-in users.
type LocationSessionUsecase interface {
	// Start begins (or resumes) the user's session and grants location permission again.
	Start(ctx context.Context, userID string) (*SessionStatus, error)

	// Push records the latest position of the user's device. It needs a session from Start.
	Push(ctx context.Context, userID string, position *Position) (*SessionStatus, error)

	// Deny records that the device revoked location permission. The session stops until Start.
	Deny(ctx context.Context, userID string) (*SessionStatus, error)

	// Stop ends the session, e.g. on logout.
	Stop(ctx context.Context, userID string) (*SessionStatus, error)

	// Status reports the session state.
	Status(ctx context.Context, userID string) (*SessionStatus, error)
}
