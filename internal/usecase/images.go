package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/domain/image"
)

// UploadImage stores data under folder and maps host failures onto the
// error taxonomy.
func UploadImage(ctx context.Context, host image.Host, folder string, data []byte) (*image.Upload, error) {
	if len(data) == 0 {
		return nil, apperr.Validation("file_required", "Image file is empty.")
	}

	up, err := host.Upload(ctx, folder, data)
	switch {
	case err == nil:
		return up, nil
	case errors.Is(err, image.ErrUnsupported):
		return nil, apperr.Validation("invalid_image", "File is not a supported image.")
	default:
		return nil, fmt.Errorf("upload image: %w", err)
	}
}
