package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/domain/service"
	mockRepo "github.com/46h1/buzzer/internal/mocks/repository"
	mockSvc "github.com/46h1/buzzer/internal/mocks/service"
	mockUC "github.com/46h1/buzzer/internal/mocks/usecase"
	"github.com/46h1/buzzer/internal/usecase"
	"github.com/46h1/buzzer/internal/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  *profileService
	userRepo *mockRepo.MockUserRepository
	location *mockUC.MockLocationUsecase
	media    *mockSvc.MockMediaStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	cfg := testConfig()
	cfg.Media.MaxUploadBytes = 16

	env := profileServiceFixtures{
		userRepo: mockRepo.NewMockUserRepository(t),
		location: mockUC.NewMockLocationUsecase(t),
		media:    mockSvc.NewMockMediaStorage(t),
	}

	svc := NewProfileService(ProfileServiceParams{
		Config:   cfg,
		Logger:   discardLogger(),
		UserRepo: env.userRepo,
		Location: env.location,
		Media:    env.media,
	}).(*profileService)
	svc.now = func() time.Time { return testNow }
	env.service = svc

	return env
}

func TestProfileService_EnsureProfile_CreatesWithDefaults(t *testing.T) {
	env := createTestProfileService(t)
	ctx := context.Background()

	env.userRepo.EXPECT().
		CreateIfAbsent(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool {
			return p.UID == "alice" && p.DisplayName == "alice.w" && p.IsLocationSharingEnabled && p.CreatedAt.Equal(testNow)
		})).
		RunAndReturn(func(_ context.Context, p *entity.UserProfile) (*entity.UserProfile, bool, error) {
			return p, true, nil
		})

	profile, created, err := env.service.EnsureProfile(ctx, "alice", &usecase.EnsureProfileInput{Email: "alice.w@example.com"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "alice.w@example.com", profile.Email)
}

func TestProfileService_EnsureProfile_ReturnsExisting(t *testing.T) {
	env := createTestProfileService(t)
	ctx := context.Background()

	existing := &entity.UserProfile{UID: "alice", DisplayName: "Alice", IsLocationSharingEnabled: false}
	env.userRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(existing, false, nil)

	profile, created, err := env.service.EnsureProfile(ctx, "alice", &usecase.EnsureProfileInput{DisplayName: "New Name"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, existing, profile)
}

func TestInitialDisplayName(t *testing.T) {
	assert.Equal(t, "Alice", initialDisplayName(&usecase.EnsureProfileInput{DisplayName: "  Alice ", Email: "a@x.io"}))
	assert.Equal(t, "a", initialDisplayName(&usecase.EnsureProfileInput{Email: "a@x.io"}))
	assert.Equal(t, defaultDisplayName, initialDisplayName(&usecase.EnsureProfileInput{}))
	assert.Len(t, []rune(initialDisplayName(&usecase.EnsureProfileInput{DisplayName: strings.Repeat("ß", 80)})), maxDisplayNameLength)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	env := createTestProfileService(t)

	env.userRepo.EXPECT().FindByID(mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := env.service.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	env := createTestProfileService(t)
	ctx := context.Background()

	name := "  Alice W  "
	env.userRepo.EXPECT().UpdateDisplayName(ctx, "alice", "Alice W").Return(nil)
	env.userRepo.EXPECT().FindByID(ctx, "alice").Return(&entity.UserProfile{UID: "alice", DisplayName: "Alice W"}, nil)

	profile, err := env.service.UpdateProfile(ctx, "alice", &usecase.UpdateProfileInput{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice W", profile.DisplayName)
}

func TestProfileService_UpdateProfile_RejectsBadNames(t *testing.T) {
	env := createTestProfileService(t)

	for _, name := range []string{"", "   ", strings.Repeat("x", maxDisplayNameLength+1)} {
		_, err := env.service.UpdateProfile(context.Background(), "alice", &usecase.UpdateProfileInput{DisplayName: &name})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestProfileService_SetLocationSharing_Delegates(t *testing.T) {
	env := createTestProfileService(t)
	ctx := context.Background()

	env.location.EXPECT().SetLocationSharing(ctx, "alice", false).Return(&entity.UserProfile{UID: "alice"}, nil)

	_, err := env.service.SetLocationSharing(ctx, "alice", false)
	require.NoError(t, err)
}

func TestProfileService_UploadProfilePicture(t *testing.T) {
	env := createTestProfileService(t)
	ctx := context.Background()
	data := []byte("\x89PNG fake")

	env.userRepo.EXPECT().FindByID(ctx, "alice").Return(&entity.UserProfile{UID: "alice"}, nil).Once()
	env.media.EXPECT().
		Upload(ctx, "profile_pictures/alice", "image/png", data).
		Return("https://cdn.example.com/profile_pictures/alice", nil)

	wantURL := "https://cdn.example.com/profile_pictures/alice?v=" + util.ContentChecksum(data)[:12]
	env.userRepo.EXPECT().UpdateProfilePicture(ctx, "alice", wantURL).Return(nil)
	env.userRepo.EXPECT().FindByID(ctx, "alice").Return(&entity.UserProfile{UID: "alice", ProfilePictureURL: wantURL}, nil).Once()

	profile, err := env.service.UploadProfilePicture(ctx, "alice", "image/png; charset=binary", data)
	require.NoError(t, err)
	assert.Equal(t, wantURL, profile.ProfilePictureURL)
}

func TestProfileService_UploadProfilePicture_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        []byte
		setup       func(env profileServiceFixtures)
		wantErr     error
	}{
		{name: "empty", contentType: "image/png", wantErr: domainerrors.ErrInvalidMedia},
		{name: "too large", contentType: "image/png", data: make([]byte, 17), wantErr: domainerrors.ErrInvalidMedia},
		{name: "not an image", contentType: "application/pdf", data: []byte("pdf"), wantErr: domainerrors.ErrInvalidMedia},
		{name: "garbage content type", contentType: ";;", data: []byte("x"), wantErr: domainerrors.ErrInvalidMedia},
		{
			name: "bucket denies", contentType: "image/jpeg", data: []byte("jpg"),
			setup: func(env profileServiceFixtures) {
				env.userRepo.EXPECT().FindByID(mock.Anything, "alice").Return(&entity.UserProfile{UID: "alice"}, nil)
				env.media.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return("", errors.Wrap(service.ErrMediaPermissionDenied, "gcs"))
			},
			wantErr: domainerrors.ErrStoragePermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := createTestProfileService(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			_, err := env.service.UploadProfilePicture(context.Background(), "alice", tt.contentType, tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
