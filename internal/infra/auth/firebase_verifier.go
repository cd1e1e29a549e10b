package auth

import (
	"context"

	"github.com/46h1/buzzer/internal/domain/service"
	"github.com/46h1/buzzer/internal/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// idTokenVerifier is the part of the Firebase auth client the verifier needs.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseVerifier validates Firebase ID tokens; the uid becomes the user id.
type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier wraps a Firebase auth client.
func NewFirebaseVerifier(client *firebaseauth.Client) service.IdentityVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		if firebaseauth.IsIDTokenInvalid(err) || firebaseauth.IsIDTokenExpired(err) {
			return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
		}

		return nil, errors.Wrap(err, "verify firebase id token")
	}

	identity := &service.Identity{UserID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.DisplayName = name
	}

	return identity, nil
}
