package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidToken is returned for any bearer token that cannot be trusted.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the authenticated caller behind a bearer token.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
}

// IdentityVerifier turns a bearer token into the caller's identity.
// Implementations: HS256 JWT (development, tests) and Firebase ID tokens.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
