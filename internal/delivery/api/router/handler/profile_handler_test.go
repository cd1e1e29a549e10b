package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/46h1/buzzer/config"
	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	mockUC "github.com/46h1/buzzer/internal/mocks/usecase"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestProfileHandler(t *testing.T) (*ProfileHandler, *mockUC.MockProfileUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Media.MaxUploadBytes = 8

	profileUC := mockUC.NewMockProfileUsecase(t)

	return NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Config: cfg}), profileUC
}

func TestProfileHandler_PutProfile_CreatesOnFirstSignIn(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)

	profile := &entity.UserProfile{UID: "alice", DisplayName: "Alice", IsLocationSharingEnabled: true}
	profileUC.EXPECT().
		EnsureProfile(mock.Anything, "alice", &usecase.EnsureProfileInput{DisplayName: "Alice", Email: "alice@example.com"}).
		Return(profile, true, nil)

	rec := serve(t, route{http.MethodPut, "/profile", h.PutProfile}, "alice", http.MethodPut, "/profile", `{}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got entity.UserProfile
	decodeData(t, rec, &got)
	assert.Equal(t, "Alice", got.DisplayName)
}

func TestProfileHandler_PutProfile_UpdatesName(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)

	existing := &entity.UserProfile{UID: "alice", DisplayName: "Alice"}
	renamed := &entity.UserProfile{UID: "alice", DisplayName: "Ali"}
	profileUC.EXPECT().EnsureProfile(mock.Anything, "alice", mock.Anything).Return(existing, false, nil)
	profileUC.EXPECT().
		UpdateProfile(mock.Anything, "alice", mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.DisplayName != nil && *in.DisplayName == "Ali"
		})).
		Return(renamed, nil)

	rec := serve(t, route{http.MethodPut, "/profile", h.PutProfile}, "alice", http.MethodPut, "/profile", `{"display_name":"Ali"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got entity.UserProfile
	decodeData(t, rec, &got)
	assert.Equal(t, "Ali", got.DisplayName)
}

func TestProfileHandler_GetProfile_NotFound(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)
	profileUC.EXPECT().GetProfile(mock.Anything, "alice").Return(nil, domainerrors.ErrUserNotFound.WithDetails("alice"))

	rec := serve(t, route{http.MethodGet, "/profile", h.GetProfile}, "alice", http.MethodGet, "/profile", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Kind)
}

func TestProfileHandler_SetLocationSharing(t *testing.T) {
	t.Run("ghost mode on", func(t *testing.T) {
		h, profileUC := newTestProfileHandler(t)
		profileUC.EXPECT().SetLocationSharing(mock.Anything, "alice", false).
			Return(&entity.UserProfile{UID: "alice"}, nil)

		rec := serve(t, route{http.MethodPut, "/profile/sharing", h.SetLocationSharing}, "alice",
			http.MethodPut, "/profile/sharing", `{"enabled":false}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("flag is required", func(t *testing.T) {
		h, _ := newTestProfileHandler(t)

		rec := serve(t, route{http.MethodPut, "/profile/sharing", h.SetLocationSharing}, "alice",
			http.MethodPut, "/profile/sharing", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProfileHandler_UploadProfilePicture(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)

	profileUC.EXPECT().
		UploadProfilePicture(mock.Anything, "alice", "image/png", []byte("png")).
		Return(&entity.UserProfile{UID: "alice", ProfilePictureURL: "http://media/profile_pictures/alice"}, nil)

	e := newTestEcho()
	e.PUT("/profile/picture", h.UploadProfilePicture, asUser("alice"))
	req := httptest.NewRequest(http.MethodPut, "/profile/picture", strings.NewReader("png"))
	req.Header.Set("Content-Type", "image/png")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_UploadProfilePicture_ReadsOnePastTheLimit(t *testing.T) {
	h, profileUC := newTestProfileHandler(t)

	// MaxUploadBytes is 8; the usecase sees 9 bytes and rejects the upload
	profileUC.EXPECT().
		UploadProfilePicture(mock.Anything, "alice", "image/jpeg", mock.MatchedBy(func(data []byte) bool { return len(data) == 9 })).
		Return(nil, domainerrors.ErrInvalidMedia.WithDetails("picture is too large"))

	e := newTestEcho()
	e.PUT("/profile/picture", h.UploadProfilePicture, asUser("alice"))
	req := httptest.NewRequest(http.MethodPut, "/profile/picture", strings.NewReader(strings.Repeat("x", 64)))
	req.Header.Set("Content-Type", "image/jpeg")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_MEDIA", decodeError(t, rec).Code)
}
