// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"mime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/46h1/buzzer/config"
	reqctx "github.com/46h1/buzzer/internal/delivery/context"
	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/domain/service"
	"github.com/46h1/buzzer/internal/errors"
	"github.com/46h1/buzzer/internal/usecase"
	"github.com/46h1/buzzer/internal/util"

	"go.uber.org/fx"
)

const (
	maxDisplayNameLength = 64
	defaultDisplayName   = "Buzzer user"
	profilePicturePrefix = "profile_pictures/"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo  repository.UserRepository
	location  usecase.LocationUsecase
	media     service.MediaStorage
	maxUpload int64
	logger    *slog.Logger
	now       func() time.Time
}

// ProfileServiceParams holds dependencies for the profile service, injected by Fx
type ProfileServiceParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	UserRepo repository.UserRepository
	Location usecase.LocationUsecase
	Media    service.MediaStorage
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:  params.UserRepo,
		location:  params.Location,
		media:     params.Media,
		maxUpload: params.Config.Media.MaxUploadBytes,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// EnsureProfile creates the profile on first sign-in and returns the stored one otherwise.
func (srv *profileService) EnsureProfile(ctx context.Context, uid string, input *usecase.EnsureProfileInput) (*entity.UserProfile, bool, error) {
	if uid == "" {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails("uid is required")
	}
	if input == nil {
		input = &usecase.EnsureProfileInput{}
	}

	now := srv.now()
	profile := &entity.UserProfile{
		UID:                      uid,
		DisplayName:              initialDisplayName(input),
		Email:                    input.Email,
		IsLocationSharingEnabled: true,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	stored, created, err := srv.userRepo.CreateIfAbsent(ctx, profile)
	if err != nil {
		return nil, false, storageError(err, "create profile")
	}

	if created {
		reqctx.GetLoggerOrDefault(ctx, srv.logger).Info("Profile created", slog.String("user_id", uid))
	}

	return stored, created, nil
}

// GetProfile returns the user's profile.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := srv.userRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails(uid)
		}

		return nil, storageError(err, "find profile")
	}

	return profile, nil
}

// UpdateProfile changes the editable profile fields.
func (srv *profileService) UpdateProfile(ctx context.Context, uid string, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	if input != nil && input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if name == "" || utf8.RuneCountInString(name) > maxDisplayNameLength {
			return nil, domainerrors.ErrValidationFailed.WithDetails("display name must be 1 to 64 characters")
		}

		if err := srv.userRepo.UpdateDisplayName(ctx, uid, name); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrUserNotFound.WithDetails(uid)
			}

			return nil, storageError(err, "update display name")
		}
	}

	return srv.GetProfile(ctx, uid)
}

// SetLocationSharing toggles ghost mode.
func (srv *profileService) SetLocationSharing(ctx context.Context, uid string, enabled bool) (*entity.UserProfile, error) {
	return srv.location.SetLocationSharing(ctx, uid, enabled)
}

// UploadProfilePicture stores the picture at profile_pictures/{uid} and points the profile at it.
func (srv *profileService) UploadProfilePicture(ctx context.Context, uid, contentType string, data []byte) (*entity.UserProfile, error) {
	if len(data) == 0 {
		return nil, domainerrors.ErrInvalidMedia.WithDetails("empty upload")
	}
	if int64(len(data)) > srv.maxUpload {
		return nil, domainerrors.ErrInvalidMedia.WithDetails("upload exceeds " + util.FormatBytes(srv.maxUpload))
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return nil, domainerrors.ErrInvalidMedia.WithDetails("content type " + contentType + " is not an image")
	}

	if _, err := srv.GetProfile(ctx, uid); err != nil {
		return nil, err
	}

	url, err := srv.media.Upload(ctx, profilePicturePrefix+uid, mediaType, data)
	if err != nil {
		if errors.Is(err, service.ErrMediaPermissionDenied) {
			return nil, domainerrors.ErrStoragePermissionDenied
		}

		return nil, storageError(err, "upload profile picture")
	}

	// same object path on every upload, so version the URL to defeat client caches
	url += "?v=" + util.ContentChecksum(data)[:12]

	if err := srv.userRepo.UpdateProfilePicture(ctx, uid, url); err != nil {
		return nil, storageError(err, "update profile picture")
	}

	reqctx.GetLoggerOrDefault(ctx, srv.logger).Info("Profile picture uploaded",
		slog.String("user_id", uid),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return srv.GetProfile(ctx, uid)
}

func initialDisplayName(input *usecase.EnsureProfileInput) string {
	if name := strings.TrimSpace(input.DisplayName); name != "" {
		if utf8.RuneCountInString(name) > maxDisplayNameLength {
			return string([]rune(name)[:maxDisplayNameLength])
		}

		return name
	}

	if local, _, ok := strings.Cut(input.Email, "@"); ok && local != "" {
		return local
	}

	return defaultDisplayName
}
