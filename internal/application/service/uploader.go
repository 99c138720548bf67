package service

import (
	"context"
	"io"
)

// Uploader stores a media file (profile image, resume) and returns the
// public URL that AboutMe records reference.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
