// Package middleware holds the echo middleware specific to the public API.
package middleware

import (
	"log/slog"
	"strings"

	"github.com/46h1/buzzer/internal/delivery/api/response"
	deliverycontext "github.com/46h1/buzzer/internal/delivery/context"
	"github.com/46h1/buzzer/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const keyIdentity = "identity"

// AuthMiddleware authenticates bearer tokens through the configured identity verifier.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.IdentityVerifier
	Logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{verifier: params.Verifier, logger: params.Logger}
}

// Authenticate verifies the bearer token and puts the caller's id on the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.Verify(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		SetIdentity(c, identity)

		ctx = deliverycontext.WithUserID(ctx, identity.UserID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", identity.UserID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// SetIdentity records the verified caller on the echo context.
func SetIdentity(c echo.Context, identity *service.Identity) {
	deliverycontext.SetUserID(c, identity.UserID)
	c.Set(keyIdentity, identity)
}

// GetUserID returns the authenticated user id. It must be used behind Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	return deliverycontext.GetUserID(c)
}

// GetIdentity returns the verified identity, including the email and name claims.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(keyIdentity).(*service.Identity)

	return identity, ok
}
