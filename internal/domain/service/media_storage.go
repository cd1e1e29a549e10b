package service

import (
	"context"

	"github.com/pkg/errors"
)

// Media storage errors.
var (
	// ErrMediaPermissionDenied is returned when the bucket rejects access to an object.
	ErrMediaPermissionDenied = errors.New("media storage permission denied")
	// ErrMediaNotFound is returned when nothing is stored at the requested path.
	ErrMediaNotFound = errors.New("media object not found")
)

// MediaStorage stores binary assets and hands back a URL clients can download them from.
type MediaStorage interface {
	// Upload writes data at path, replacing any existing object, and returns its download URL.
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)

	// Read returns the object at path and its content type.
	Read(ctx context.Context, path string) ([]byte, string, error)
}
