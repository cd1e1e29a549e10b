package repository

import (
	"context"
	"time"

	"github.com/46h1/buzzer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for buzz persistence.
var (
	// ErrBuzzNotFound is returned when a buzz does not exist.
	ErrBuzzNotFound = errors.New("buzz not found")
	// ErrBuzzNotPending is returned when a status change targets a buzz that was already answered.
	ErrBuzzNotPending = errors.New("buzz is not pending")
	// ErrDuplicatePendingBuzz is returned when the ordered pair already has a pending buzz.
	ErrDuplicatePendingBuzz = errors.New("pending buzz already exists for pair")
)

// BuzzRepository defines the interface for buzz invite persistence.
type BuzzRepository interface {
	// CreateBuzz persists a new pending buzz.
	CreateBuzz(ctx context.Context, buzz *entity.BuzzInvite) error

	// FindBuzzByID retrieves a buzz by its ID.
	FindBuzzByID(ctx context.Context, id uuid.UUID) (*entity.BuzzInvite, error)

	// FindPendingBuzz returns the pending buzz from sender to receiver, or ErrBuzzNotFound.
	FindPendingBuzz(ctx context.Context, senderID, receiverID string) (*entity.BuzzInvite, error)

	// FindPendingByReceiver returns the receiver's pending buzzes, newest first.
	FindPendingByReceiver(ctx context.Context, receiverID string) ([]*entity.BuzzInvite, error)

	// FindByParticipant returns every buzz the user sent or received, newest first.
	FindByParticipant(ctx context.Context, userID string) ([]*entity.BuzzInvite, error)

	// TransitionStatus moves a pending buzz to next. It returns ErrBuzzNotPending when the buzz
	// is no longer pending and ErrBuzzNotFound when it does not exist.
	TransitionStatus(ctx context.Context, id uuid.UUID, next entity.BuzzStatus, at time.Time) error
}
