package employee

import (
	"context"

	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type Repository interface {
	GetEmployee(ctx context.Context, id uint) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	ListByBusiness(ctx context.Context, businessID uint) ([]models.Employee, error)

	GetBusiness(ctx context.Context, id uint) (*models.Business, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)

	Create(ctx context.Context, e *models.Employee) error
	// Save writes e and unassigns it from service types of any other
	// business in the same transaction.
	Save(ctx context.Context, e *models.Employee) error
}
