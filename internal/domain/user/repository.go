package user

import (
	"context"

	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type Repository interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	Create(ctx context.Context, u *models.User) error
	Save(ctx context.Context, u *models.User) error
	UpdateRole(ctx context.Context, id uint, role string) error

	// ReplaceProfileImage swaps the user's image row for img and returns
	// the previous one, if any.
	ReplaceProfileImage(ctx context.Context, userID uint, img *models.Image) (*models.Image, error)

	Counts(ctx context.Context) (Stats, error)
}

type Stats struct {
	TotalUsers        int64
	TotalBusinesses   int64
	TotalAppointments int64
}
