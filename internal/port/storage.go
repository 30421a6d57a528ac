package port

import (
	"context"
	"io"

	"idscan/internal/domain"
)

// SaveInput encapsulates a received upload to be spooled to disk.
type SaveInput struct {
	OriginalName string
	ContentType  string
	Body         io.Reader
}

// UploadStore abstracts the temporary storage of received uploads.
type UploadStore interface {
	Save(ctx context.Context, input SaveInput) (*domain.Upload, error)
	Read(ctx context.Context, upload *domain.Upload) ([]byte, error)
	Remove(ctx context.Context, upload *domain.Upload) error
	// Ping reports whether the store can accept new uploads.
	Ping(ctx context.Context) error
}
