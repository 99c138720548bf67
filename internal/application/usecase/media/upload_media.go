package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hoangtran/portfolio-api/internal/application/service"
	"github.com/hoangtran/portfolio-api/internal/validation"
)

// UploadMediaUseCase stores profile images and resume files and hands back
// the public URL that AboutMe fields reference.
type UploadMediaUseCase struct {
	uploader service.Uploader
}

func NewUploadMediaUseCase(uploader service.Uploader) *UploadMediaUseCase {
	return &UploadMediaUseCase{uploader: uploader}
}

type UploadMediaInput struct {
	File     io.Reader
	Filename string
}

type UploadMediaOutput struct {
	URL string
}

func (uc *UploadMediaUseCase) Execute(ctx context.Context, input UploadMediaInput) (*UploadMediaOutput, error) {
	var v validation.Violations
	if input.File == nil {
		v.Add("file is required")
	}
	if input.Filename == "" {
		v.Add("filename is required")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	ext := filepath.Ext(input.Filename)
	base := strings.TrimSuffix(filepath.Base(input.Filename), ext)
	publicID := fmt.Sprintf("%s-%s", base, uuid.New().String())

	url, err := uc.uploader.Upload(ctx, input.File, "portfolio", publicID)
	if err != nil {
		return nil, fmt.Errorf("upload media failed: %w", err)
	}

	return &UploadMediaOutput{URL: url}, nil
}
