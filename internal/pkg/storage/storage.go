package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where rendered payslips are archived. Paths are
// slash-separated and relative to the backend's base directory.
type FileStorage interface {
	// Upload stores a file and returns the stored path.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a stored file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists reports whether a file is present.
	Exists(ctx context.Context, path string) (bool, error)
}
