// Package media stores profile pictures in a gocloud.dev bucket.
package media

import (
	"context"
	"log/slog"
	"strings"

	"github.com/46h1/buzzer/config"
	"github.com/46h1/buzzer/internal/domain/service"
	"github.com/46h1/buzzer/internal/errors"
	"github.com/46h1/buzzer/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	"gocloud.dev/gcerrors"
)

// BucketStorage implements service.MediaStorage on top of a blob.Bucket.
type BucketStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBucketStorage wraps an opened bucket. Download URLs are publicBaseURL + "/" + path.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string) *BucketStorage {
	return &BucketStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Params holds dependencies for the media storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (*BucketStorage, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open media bucket %q", params.Config.Media.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(bucket.Close(), "close media bucket")
		},
	})

	params.Logger.Info("Media bucket opened", slog.String("bucket_url", params.Config.Media.BucketURL))

	return NewBucketStorage(bucket, params.Config.Media.PublicBaseURL), nil
}

// Module provides the media storage
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		func(storage *BucketStorage) service.MediaStorage { return storage },
	),
)

// Upload writes data at path, replacing any previous object, and returns its download URL.
func (s *BucketStorage) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{
		ContentType: contentType,
		Metadata: map[string]string{
			"sha256": util.ContentChecksum(data),
		},
	}

	if err := s.bucket.WriteAll(ctx, path, data, opts); err != nil {
		if gcerrors.Code(err) == gcerrors.PermissionDenied {
			return "", errors.Wrap(service.ErrMediaPermissionDenied, path)
		}

		return "", errors.Wrapf(err, "write media object %s", path)
	}

	return s.publicBaseURL + "/" + path, nil
}

// Read returns the object stored at path and its content type.
func (s *BucketStorage) Read(ctx context.Context, path string) ([]byte, string, error) {
	attrs, err := s.bucket.Attributes(ctx, path)
	if err != nil {
		return nil, "", s.readError(err, path)
	}

	data, err := s.bucket.ReadAll(ctx, path)
	if err != nil {
		return nil, "", s.readError(err, path)
	}

	return data, attrs.ContentType, nil
}

func (s *BucketStorage) readError(err error, path string) error {
	switch gcerrors.Code(err) {
	case gcerrors.NotFound:
		return errors.Wrap(service.ErrMediaNotFound, path)
	case gcerrors.PermissionDenied:
		return errors.Wrap(service.ErrMediaPermissionDenied, path)
	default:
		return errors.Wrapf(err, "read media object %s", path)
	}
}
