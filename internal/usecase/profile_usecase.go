// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/46h1/buzzer/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// EnsureProfile creates the profile on first sign-in. It reports whether it was created.
	EnsureProfile(ctx context.Context, uid string, input *EnsureProfileInput) (*entity.UserProfile, bool, error)
	GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, uid string, input *UpdateProfileInput) (*entity.UserProfile, error)
	SetLocationSharing(ctx context.Context, uid string, enabled bool) (*entity.UserProfile, error)
	UploadProfilePicture(ctx context.Context, uid, contentType string, data []byte) (*entity.UserProfile, error)
}

// --- Input DTOs ---

// EnsureProfileInput carries the identity fields used for a new profile.
type EnsureProfileInput struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// UpdateProfileInput defines the data required to update a profile.
type UpdateProfileInput struct {
	DisplayName *string `json:"display_name,omitempty"`
}
