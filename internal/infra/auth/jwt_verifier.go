// Package auth provides the IdentityVerifier implementations.
package auth

import (
	"context"
	"time"

	"github.com/46h1/buzzer/internal/domain/service"
	"github.com/46h1/buzzer/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtVerifier validates HS256 tokens whose subject is the user id.
type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for tokens signed with secret.
func NewJWTVerifier(secret string) (service.IdentityVerifier, error) {
	if secret == "" {
		return nil, errors.New("auth.secretKey must be provided for the jwt provider")
	}

	return &jwtVerifier{secret: []byte(secret)}, nil
}

func (v *jwtVerifier) Verify(_ context.Context, tokenString string) (*service.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, errors.Wrap(service.ErrInvalidToken, "parse jwt")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "missing subject")
	}

	identity := &service.Identity{UserID: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.DisplayName = name
	}

	return identity, nil
}

// SignToken issues an HS256 token for identity. Local tooling and tests use it to mint tokens
// the jwt verifier accepts.
func SignToken(secret string, identity *service.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": identity.UserID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if identity.Email != "" {
		claims["email"] = identity.Email
	}
	if identity.DisplayName != "" {
		claims["name"] = identity.DisplayName
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
