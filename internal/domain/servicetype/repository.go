package servicetype

import (
	"context"

	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type Repository interface {
	GetServiceType(ctx context.Context, id uint) (*models.ServiceType, error)
	ListServiceTypes(ctx context.Context) ([]models.ServiceType, error)
	ListByBusiness(ctx context.Context, businessID uint) ([]models.ServiceType, error)

	GetBusiness(ctx context.Context, id uint) (*models.Business, error)
	GetEmployee(ctx context.Context, id uint) (*models.Employee, error)

	// NameTaken reports whether another service type of the business,
	// other than excludeID, already uses name.
	NameTaken(ctx context.Context, businessID uint, name string, excludeID uint) (bool, error)

	Create(ctx context.Context, st *models.ServiceType) error
	Save(ctx context.Context, st *models.ServiceType) error
	Delete(ctx context.Context, id uint) error
}
