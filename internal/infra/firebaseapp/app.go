// Package firebaseapp builds the Firebase app shared by messaging, ID token verification and Firestore.
package firebaseapp

import (
	"context"

	"github.com/46h1/buzzer/config"
	"github.com/46h1/buzzer/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes a Firebase app. Without a credentials path it falls back to
// application default credentials.
func NewApp(ctx context.Context, cfg *config.FirebaseConfig) (*firebase.App, error) {
	var fbConfig *firebase.Config
	var opts []option.ClientOption

	if cfg != nil {
		if cfg.ProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
		}
		if cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
