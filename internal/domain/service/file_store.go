package service

import (
	"context"
	"io"
)

// FileStore abstracts where accepted uploads are written. The key is the
// collision-resistant name computed by the upload pipeline, including its
// kind prefix.
type FileStore interface {
	// Save writes the full content of r under key. It must not leave a
	// partial object behind on error.
	Save(ctx context.Context, key, contentType string, r io.Reader) error

	// Delete removes a stored object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
