package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/booksmart-api/internal/domain"
	"github.com/BruksfildServices01/booksmart-api/internal/domain/servicetype"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type ServiceTypeGormRepository struct {
	db *gorm.DB
}

func NewServiceTypeGormRepository(db *gorm.DB) *ServiceTypeGormRepository {
	return &ServiceTypeGormRepository{db: db}
}

func (r *ServiceTypeGormRepository) GetServiceType(ctx context.Context, id uint) (*models.ServiceType, error) {
	var st models.ServiceType
	if err := r.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, translate("get service type", err)
	}
	return &st, nil
}

func (r *ServiceTypeGormRepository) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	var out []models.ServiceType
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, translate("list service types", err)
}

func (r *ServiceTypeGormRepository) ListByBusiness(ctx context.Context, businessID uint) ([]models.ServiceType, error) {
	var out []models.ServiceType
	err := r.db.WithContext(ctx).Where("business_id = ?", businessID).Order("id").Find(&out).Error
	return out, translate("list business service types", err)
}

func (r *ServiceTypeGormRepository) GetBusiness(ctx context.Context, id uint) (*models.Business, error) {
	var b models.Business
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate("get business", err)
	}
	return &b, nil
}

func (r *ServiceTypeGormRepository) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	var e models.Employee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate("get employee", err)
	}
	return &e, nil
}

func (r *ServiceTypeGormRepository) NameTaken(
	ctx context.Context,
	businessID uint,
	name string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.ServiceType{}).
		Where("business_id = ? AND name = ?", businessID, name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, translate("check service name", err)
	}
	return n > 0, nil
}

func (r *ServiceTypeGormRepository) Create(ctx context.Context, st *models.ServiceType) error {
	return translate("create service type", r.db.WithContext(ctx).Omit("Employee").Create(st).Error)
}

func (r *ServiceTypeGormRepository) Save(ctx context.Context, st *models.ServiceType) error {
	return translate("save service type", r.db.WithContext(ctx).Omit("Employee").Save(st).Error)
}

func (r *ServiceTypeGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.ServiceType{}, id)
	if res.Error != nil {
		return translate("delete service type", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ servicetype.Repository = (*ServiceTypeGormRepository)(nil)
