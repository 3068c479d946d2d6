// Package media owns image persistence: the storage drivers the catalog's
// images upload to, the preview data-URLs shown before upload, and the
// resolver that drains an editor slot set into remote URLs.
package media

import (
	"context"
	"io"
)

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
