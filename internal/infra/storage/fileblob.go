// Package storage implements the upload file store on top of a gocloud blob
// bucket backed by the local filesystem.
package storage

import (
	"context"
	"io"
	"log/slog"
	"os"

	"cityportal/config"
	"cityportal/internal/domain/service"
	"cityportal/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket *blob.Bucket
}

// New opens the local blob bucket under the configured upload base directory.
func New(params Params) (service.FileStore, error) {
	baseDir := params.Config.Uploads.BaseDir
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, errors.Wrap(err, "create upload base directory")
	}

	bucket, err := fileblob.OpenBucket(baseDir, &fileblob.Options{
		// Uploads are served back verbatim; sidecar metadata files would
		// only pollute the key space.
		Metadata: fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open upload bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("upload bucket opened", slog.String("baseDir", baseDir))

	return &blobStore{bucket: bucket}, nil
}

// Save writes the full content of r under key. The blob writer discards the
// partial object when Close is preceded by an error, so a failed copy leaves
// nothing behind.
func (s *blobStore) Save(ctx context.Context, key, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return errors.Wrapf(err, "write %s", key)
	}

	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "commit %s", key)
	}

	return nil
}

// Delete removes a stored object. A missing key is not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}
