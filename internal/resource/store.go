package resource

import (
	"context"
	"io"

	"github.com/hupe1980/nearpair/blobstore"
)

// Store returns store with all transferred bytes charged to the IO limit.
// Without an IO limit store is returned unchanged.
func (c *Controller) Store(store blobstore.BlobStore) blobstore.BlobStore {
	if c == nil || c.ioLimiter == nil {
		return store
	}
	return &limitedStore{BlobStore: store, c: c}
}

type limitedStore struct {
	blobstore.BlobStore
	c *Controller
}

func (s *limitedStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	b, err := s.BlobStore.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &limitedBlob{blob: b, c: s.c}, nil
}

func (s *limitedStore) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	w, err := s.BlobStore.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &limitedWritableBlob{WritableBlob: w, ctx: ctx, c: s.c}, nil
}

func (s *limitedStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.c.AcquireIO(ctx, len(data)); err != nil {
		return err
	}
	return s.BlobStore.Put(ctx, name, data)
}

// limitedBlob hides the Mappable fast path so reads go through ReadRange.
type limitedBlob struct {
	blob blobstore.Blob
	c    *Controller
}

func (b *limitedBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := b.c.AcquireIO(ctx, len(p)); err != nil {
		return 0, err
	}
	return b.blob.ReadAt(ctx, p, off)
}

func (b *limitedBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	r, err := b.blob.ReadRange(ctx, off, length)
	if err != nil {
		return nil, err
	}
	return &limitedReader{ReadCloser: r, ctx: ctx, c: b.c}, nil
}

func (b *limitedBlob) Size() int64  { return b.blob.Size() }
func (b *limitedBlob) Close() error { return b.blob.Close() }

type limitedReader struct {
	io.ReadCloser
	ctx context.Context
	c   *Controller
}

func (r *limitedReader) Read(p []byte) (int, error) {
	if burst := r.c.ioLimiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := r.ReadCloser.Read(p)
	if n > 0 {
		if werr := r.c.AcquireIO(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

type limitedWritableBlob struct {
	blobstore.WritableBlob
	ctx context.Context
	c   *Controller
}

func (w *limitedWritableBlob) Write(p []byte) (int, error) {
	if err := w.c.AcquireIO(w.ctx, len(p)); err != nil {
		return 0, err
	}
	return w.WritableBlob.Write(p)
}
