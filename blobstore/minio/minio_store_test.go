package minio

import (
	"context"
	"io"
	"testing"

	"github.com/hupe1980/nearpair/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Options(t *testing.T) {
	s := NewStore(nil, "bucket", "root/")
	assert.Equal(t, "text/csv", s.contentType)
	assert.Equal(t, "root/a.csv", s.key("a.csv"))

	s = NewStore(nil, "bucket", "", WithContentType("application/zstd"))
	assert.Equal(t, "application/zstd", s.putOptions().ContentType)
	assert.Equal(t, "a.csv", s.key("a.csv"))
}

func TestBlob_ReadRangePastEnd(t *testing.T) {
	b := &minioBlob{size: 4}
	_, err := b.ReadRange(context.Background(), 4, 1)
	assert.ErrorIs(t, err, io.EOF)

	n, err := b.ReadAt(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	client, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	store := NewStore(client, "test-nearpair", "test-prefix/")
	require.NoError(t, store.EnsureBucket(ctx, ""))

	data := []byte("0;0\n1;1\n")
	require.NoError(t, store.Put(ctx, "points.csv", data))

	blob, err := store.Open(ctx, "points.csv")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 3)
	n, err := blob.ReadAt(ctx, buf, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "1;1", string(buf))
	require.NoError(t, blob.Close())

	got, err := blobstore.ReadAll(ctx, store, "points.csv")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "points.csv")

	require.NoError(t, store.Delete(ctx, "points.csv"))
	_, err = store.Open(ctx, "points.csv")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
	require.NoError(t, store.Delete(ctx, "points.csv"))

	wb, err := store.Create(ctx, "stream.csv")
	require.NoError(t, err)
	_, err = wb.Write([]byte("2;3\n"))
	require.NoError(t, err)
	require.NoError(t, wb.Close())

	blob, err = store.Open(ctx, "stream.csv")
	require.NoError(t, err)
	assert.Equal(t, int64(4), blob.Size())
	require.NoError(t, blob.Close())

	_ = store.Delete(ctx, "stream.csv")
}
