package ports

import (
	"context"
	"io"
)

// RevalidationHook tells the storefront that cached pages are stale. Callers
// treat it as fire-and-forget: a failure is logged, never propagated.
type RevalidationHook interface {
	Revalidate(ctx context.Context, paths []string) error
}

// ObjectStorage stores uploaded blobs and returns their public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, folder, name string, blob io.Reader) (string, error)
}
