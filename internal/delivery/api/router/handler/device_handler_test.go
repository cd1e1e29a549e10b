package handler

import (
	"net/http"
	"testing"

	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	mockUC "github.com/46h1/buzzer/internal/mocks/usecase"
	"github.com/46h1/buzzer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUC.MockDeviceUsecase) {
	t.Helper()

	deviceUC := mockUC.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC}), deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	r := route{http.MethodPost, "/devices", h.RegisterDevice}

	device := &entity.UserDevice{ID: uuid.New(), UserID: "alice", DeviceID: "pixel", Platform: "android", IsActive: true}
	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, "alice", &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "pixel", Platform: "android"}).
		Return(device, nil)

	rec := serve(t, r, "alice", http.MethodPost, "/devices", `{"fcm_token":"tok","device_id":"pixel","platform":"android"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got entity.UserDevice
	decodeData(t, rec, &got)
	assert.Equal(t, device.ID, got.ID)
}

func TestDeviceHandler_RegisterDevice_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "anonymous", body: `{}`, wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "malformed json", userID: "alice", body: `{`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "unknown platform", userID: "alice", body: `{"fcm_token":"tok","device_id":"d","platform":"symbian"}`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
		{name: "missing token", userID: "alice", body: `{"device_id":"d","platform":"ios"}`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestDeviceHandler(t)

			rec := serve(t, route{http.MethodPost, "/devices", h.RegisterDevice}, tt.userID, http.MethodPost, "/devices", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestDeviceHandler_ValidationDetailsNameTheField(t *testing.T) {
	h, _ := newTestDeviceHandler(t)

	rec := serve(t, route{http.MethodPost, "/devices", h.RegisterDevice}, "alice", http.MethodPost, "/devices", `{"device_id":"d","platform":"ios"}`)

	details, ok := decodeError(t, rec).Details.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "required", details["fcm_token"])
}

func TestDeviceHandler_UpdateFCMToken(t *testing.T) {
	deviceID := uuid.New()

	t.Run("updated", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)
		deviceUC.EXPECT().UpdateFCMToken(mock.Anything, "alice", deviceID, "new-token").Return(nil)

		rec := serve(t, route{http.MethodPut, "/devices/:id/token", h.UpdateFCMToken}, "alice",
			http.MethodPut, "/devices/"+deviceID.String()+"/token", `{"fcm_token":"new-token"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := newTestDeviceHandler(t)

		rec := serve(t, route{http.MethodPut, "/devices/:id/token", h.UpdateFCMToken}, "alice",
			http.MethodPut, "/devices/not-a-uuid/token", `{"fcm_token":"new-token"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
	})

	t.Run("someone else's device", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)
		deviceUC.EXPECT().UpdateFCMToken(mock.Anything, "alice", deviceID, "new-token").
			Return(domainerrors.ErrForbidden.WithDetails("device belongs to another user"))

		rec := serve(t, route{http.MethodPut, "/devices/:id/token", h.UpdateFCMToken}, "alice",
			http.MethodPut, "/devices/"+deviceID.String()+"/token", `{"fcm_token":"new-token"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "PERMISSION", info.Kind)
		assert.Nil(t, info.Details)
	})
}

func TestDeviceHandler_GetUserDevices_StorageDown(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	deviceUC.EXPECT().GetUserDevices(mock.Anything, "alice").
		Return(nil, domainerrors.ErrStorageUnavailable.WithDetails("find active devices by user"))

	rec := serve(t, route{http.MethodGet, "/devices", h.GetUserDevices}, "alice", http.MethodGet, "/devices", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestDeviceHandler_DeactivateDevice_BadID(t *testing.T) {
	h, _ := newTestDeviceHandler(t)

	rec := serve(t, route{http.MethodDelete, "/devices/:id", h.DeactivateDevice}, "alice", http.MethodDelete, "/devices/42", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)
	deviceID := uuid.New()
	deviceUC.EXPECT().DeactivateDevice(mock.Anything, "alice", deviceID).Return(nil)

	rec := serve(t, route{http.MethodDelete, "/devices/:id", h.DeactivateDevice}, "alice", http.MethodDelete, "/devices/"+deviceID.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
