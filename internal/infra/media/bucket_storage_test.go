package media

import (
	"context"
	"testing"

	"github.com/46h1/buzzer/internal/domain/service"
	"github.com/46h1/buzzer/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *BucketStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBucketStorage(bucket, "https://cdn.example.com/media/")
}

func TestUpload_ReturnsPublicURL(t *testing.T) {
	storage := newTestStorage(t)

	url, err := storage.Upload(context.Background(), "profile_pictures/u1", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/media/profile_pictures/u1", url)
}

func TestUpload_OverwritesAndStoresChecksum(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	_, err := storage.Upload(ctx, "profile_pictures/u1", "image/jpeg", []byte("first"))
	require.NoError(t, err)
	_, err = storage.Upload(ctx, "profile_pictures/u1", "image/png", []byte("second"))
	require.NoError(t, err)

	data, contentType, err := storage.Read(ctx, "profile_pictures/u1")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
	assert.Equal(t, "image/png", contentType)

	attrs, err := storage.bucket.Attributes(ctx, "profile_pictures/u1")
	require.NoError(t, err)
	assert.Equal(t, util.ContentChecksum([]byte("second")), attrs.Metadata["sha256"])
}

func TestRead_NotFound(t *testing.T) {
	storage := newTestStorage(t)

	_, _, err := storage.Read(context.Background(), "profile_pictures/missing")
	assert.ErrorIs(t, err, service.ErrMediaNotFound)
}
