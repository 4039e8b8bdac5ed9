// Package resource bounds the memory and I/O used by concurrent solves.
//
//	┌──────────────────────────────────────────────┐
//	│                  Controller                  │
//	├──────────────────────┬───────────────────────┤
//	│  Memory budget       │  IO rate limiter      │
//	│  (weighted sem)      │  (token bucket)       │
//	├──────────────────────┼───────────────────────┤
//	│  AcquireMemory       │  AcquireIO            │
//	│  ReleaseMemory       │  Store (wraps a       │
//	│  MemoryUsage         │  blobstore.BlobStore) │
//	└──────────────────────┴───────────────────────┘
//
// # Memory
//
// Solves reserve the memory of their point set before running and release it
// when done. AcquireMemory waits until enough budget is free and fails with
// ErrMemoryLimitExceeded only for requests larger than the whole budget:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 30})
//	if err := rc.AcquireMemory(ctx, resource.PointBytes(len(points))); err != nil {
//	    return err
//	}
//	defer rc.ReleaseMemory(resource.PointBytes(len(points)))
//
// # IO
//
// Store wraps a blob store so that bytes read and written pass through the
// token bucket:
//
//	store = rc.Store(store)
//
// A nil *Controller imposes no limits.
package resource
