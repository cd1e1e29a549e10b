package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/46h1/buzzer/internal/delivery/api/middleware"
	"github.com/46h1/buzzer/internal/delivery/api/response"
	"github.com/46h1/buzzer/internal/delivery/api/validator"
	"github.com/46h1/buzzer/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// route is the single route a test mounts.
type route struct {
	method  string
	pattern string
	handler echo.HandlerFunc
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

// serve mounts r behind asUser(userID) and sends one request.
func serve(t *testing.T, r route, userID, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := newTestEcho()
	e.Add(r.method, r.pattern, r.handler, asUser(userID))

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// asUser stands in for the auth middleware. An empty userID leaves the request anonymous.
func asUser(userID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID != "" {
				middleware.SetIdentity(c, &service.Identity{
					UserID:      userID,
					Email:       userID + "@example.com",
					DisplayName: strings.ToUpper(userID[:1]) + userID[1:],
				})
			}

			return next(c)
		}
	}
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()

	envelope := struct {
		Data json.RawMessage   `json:"data"`
		Meta response.MetaInfo `json:"meta"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, into))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}
