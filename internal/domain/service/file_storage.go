package service

import (
	"context"
	"io"
)

// FileStorage abstracts the blob-storage collaborator: it accepts a file
// stream and returns a durable URL. Only the prescription upload step uses
// it; the rest of the system treats the URL as opaque.
type FileStorage interface {
	// Upload writes the stream under the given object key and returns the
	// durable public URL.
	Upload(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	// Close releases the underlying bucket handle.
	Close() error
}
