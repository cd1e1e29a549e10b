package repository

import (
	"context"

	"github.com/46h1/buzzer/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrUserNotFound is returned when a profile does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user profile persistence.
type UserRepository interface {
	// CreateIfAbsent stores the profile unless one already exists for the uid.
	// It returns the stored profile and whether it was created by this call.
	CreateIfAbsent(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, bool, error)

	// FindByID retrieves a profile by uid.
	FindByID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// FindByIDs retrieves the profiles that exist among uids, keyed by uid.
	FindByIDs(ctx context.Context, uids []string) (map[string]*entity.UserProfile, error)

	// UpdateDisplayName changes the display name.
	UpdateDisplayName(ctx context.Context, uid, displayName string) error

	// UpdateProfilePicture stores the download URL of the latest picture.
	UpdateProfilePicture(ctx context.Context, uid, url string) error

	// UpdateLocationSharing toggles ghost mode on the profile.
	UpdateLocationSharing(ctx context.Context, uid string, enabled bool) error
}
