package image

import (
	"context"
	"errors"
)

var (
	// ErrHostDisabled is returned by uploads when no object store is configured.
	ErrHostDisabled = errors.New("image host not configured")
	ErrUnsupported  = errors.New("unsupported image format")
)

type Upload struct {
	URL      string
	PublicID string
}

// Host stores image bytes on an external object store.
type Host interface {
	Upload(ctx context.Context, folder string, data []byte) (*Upload, error)
	Delete(ctx context.Context, publicID string) error
}

const (
	FolderBusinessLogos = "business-logos"
	FolderProfiles      = "profile-images"
)
