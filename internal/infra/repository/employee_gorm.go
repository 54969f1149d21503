package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/booksmart-api/internal/domain/employee"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type EmployeeGormRepository struct {
	db *gorm.DB
}

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

func (r *EmployeeGormRepository) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	var e models.Employee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate("get employee", err)
	}
	return &e, nil
}

func (r *EmployeeGormRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, translate("list employees", err)
}

func (r *EmployeeGormRepository) ListByBusiness(ctx context.Context, businessID uint) ([]models.Employee, error) {
	var out []models.Employee
	err := r.db.WithContext(ctx).Where("business_id = ?", businessID).Order("id").Find(&out).Error
	return out, translate("list business employees", err)
}

func (r *EmployeeGormRepository) GetBusiness(ctx context.Context, id uint) (*models.Business, error) {
	var b models.Business
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate("get business", err)
	}
	return &b, nil
}

func (r *EmployeeGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate("get user", err)
	}
	return &u, nil
}

func (r *EmployeeGormRepository) Create(ctx context.Context, e *models.Employee) error {
	return translate("create employee", r.db.WithContext(ctx).Omit("User").Create(e).Error)
}

func (r *EmployeeGormRepository) Save(ctx context.Context, e *models.Employee) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User").Save(e).Error; err != nil {
			return err
		}
		// services left behind in a previous business lose their employee
		return tx.Model(&models.ServiceType{}).
			Where("employee_id = ? AND business_id <> ?", e.ID, e.BusinessID).
			Update("employee_id", nil).Error
	})
	return translate("save employee", err)
}

var _ employee.Repository = (*EmployeeGormRepository)(nil)
