package business

import (
	"context"

	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type Repository interface {
	GetBusiness(ctx context.Context, id uint) (*models.Business, error)
	ListBusinesses(ctx context.Context) ([]models.Business, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Business, error)

	// Search matches query as a case-sensitive substring of name,
	// description, city or address. An empty query matches everything.
	// Rows come back in storage order.
	Search(ctx context.Context, query string, offset, limit int) ([]models.Business, int64, error)

	GetUser(ctx context.Context, id uint) (*models.User, error)

	// CreateWithImage persists b and, when img is non-nil, the image row
	// linked to it, in one transaction.
	CreateWithImage(ctx context.Context, b *models.Business, img *models.Image) error

	// UpdateWithImage saves b. When img is non-nil it replaces the current
	// image row, which is returned so its stored object can be removed.
	UpdateWithImage(ctx context.Context, b *models.Business, img *models.Image) (*models.Image, error)
}
