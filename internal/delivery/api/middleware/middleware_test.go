package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/46h1/buzzer/internal/delivery/api/response"
	deliverycontext "github.com/46h1/buzzer/internal/delivery/context"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/service"
	mockSvc "github.com/46h1/buzzer/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verify     bool
		verifyErr  error
		wantStatus int
		wantCode   string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantCode: "MISSING_TOKEN"},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "empty bearer", header: "Bearer  ", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "rejected token", header: "Bearer bad", verify: true, verifyErr: service.ErrInvalidToken, wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "valid token", header: "Bearer good", verify: true, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := mockSvc.NewMockIdentityVerifier(t)
			if tt.verify {
				var identity *service.Identity
				if tt.verifyErr == nil {
					identity = &service.Identity{UserID: "alice", Email: "alice@example.com"}
				}
				verifier.EXPECT().Verify(mock.Anything, tt.header[len("Bearer "):]).Return(identity, tt.verifyErr)
			}

			m := NewAuthMiddleware(AuthMiddlewareParams{Verifier: verifier, Logger: discardLogger()})

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			next := func(c echo.Context) error {
				userID, ok := GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, "alice", userID)
				assert.Equal(t, "alice", deliverycontext.GetUserIDFromContext(c.Request().Context()))

				identity, ok := GetIdentity(c)
				require.True(t, ok)
				assert.Equal(t, "alice@example.com", identity.Email)

				return c.NoContent(http.StatusOK)
			}

			require.NoError(t, m.Authenticate(next)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatus     int
		wantCode       string
		wantKind       string
		wantRetryAfter bool
		wantDetails    bool
	}{
		{
			name:        "validation keeps details",
			err:         domainerrors.ErrInvalidRadius.WithDetails("huge"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_RADIUS",
			wantKind:    "VALIDATION",
			wantDetails: true,
		},
		{
			name:       "permission hides details",
			err:        domainerrors.ErrForbidden.WithDetails("device belongs to another user"),
			wantStatus: http.StatusForbidden,
			wantCode:   domainerrors.ErrForbidden.ErrorCode(),
			wantKind:   "PERMISSION",
		},
		{
			name:       "conflict",
			err:        errors.WithStack(domainerrors.ErrBuzzAlreadyPending),
			wantStatus: http.StatusConflict,
			wantCode:   "BUZZ_ALREADY_PENDING",
			wantKind:   "STATE_CONFLICT",
		},
		{
			name:           "transient asks for a retry",
			err:            domainerrors.NewDatabaseExecuteError(errors.New("dial tcp"), "find chat"),
			wantStatus:     http.StatusServiceUnavailable,
			wantKind:       "TRANSIENT_IO",
			wantRetryAfter: true,
		},
		{
			name:           "rate limit",
			err:            domainerrors.ErrTooManyReports,
			wantStatus:     http.StatusTooManyRequests,
			wantCode:       domainerrors.ErrTooManyReports.ErrorCode(),
			wantKind:       "TRANSIENT_IO",
			wantRetryAfter: true,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "plain error is internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.ErrInternalError.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(discardLogger())

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, info.Code)
			}
			assert.Equal(t, tt.wantKind, info.Kind)
			assert.Equal(t, tt.wantDetails, info.Details != nil)
			assert.Equal(t, tt.wantRetryAfter, rec.Header().Get("Retry-After") != "")
		})
	}
}

func TestHandleHTTPError_CommittedResponseIsLeftAlone(t *testing.T) {
	m := NewErrorMiddleware(discardLogger())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "streaming"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, "streaming", rec.Body.String())
}
