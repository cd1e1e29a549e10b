package auth

import (
	"context"
	"log/slog"

	"github.com/46h1/buzzer/config"
	"github.com/46h1/buzzer/internal/domain/constants"
	"github.com/46h1/buzzer/internal/domain/service"
	"github.com/46h1/buzzer/internal/errors"
	"github.com/46h1/buzzer/internal/infra/firebaseapp"

	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the IdentityVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityVerifier builds the verifier named by auth.provider.
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	cfg := params.Config.Auth

	switch cfg.Provider {
	case constants.AuthProviderJWT, "":
		params.Logger.Info("Using HS256 JWT identity verifier")

		return NewJWTVerifier(cfg.SecretKey)

	case constants.AuthProviderFirebase:
		app, err := firebaseapp.NewApp(params.Ctx, params.Config.Firebase)
		if err != nil {
			return nil, err
		}
		client, err := app.Auth(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get Firebase auth client")
		}
		params.Logger.Info("Using Firebase ID token verifier")

		return NewFirebaseVerifier(client), nil

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityVerifier),
)
