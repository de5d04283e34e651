// Package storage implements the FileStorage interface on gocloud.dev
// portable blob buckets. The bucket URL decides the backend: file:// paths
// in development, gs:// buckets in production.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"afyalink/config"
	"afyalink/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registered bucket drivers.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the blob storage, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a service.FileStorage.
func New(params Params) (service.FileStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Storage.BucketURL)
	}

	store := &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob bucket")

			return store.Close()
		},
	})

	return store, nil
}

// Upload writes the stream under the given key and returns the durable URL.
func (s *blobStorage) Upload(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open blob writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		// Abort the write so no partial object becomes visible.
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit blob %s", key)
	}

	s.logger.Debug("Blob uploaded", slog.String("key", key))

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the bucket handle.
func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
