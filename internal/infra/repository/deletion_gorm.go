package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/booksmart-api/internal/domain/deletion"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type DeletionGormRepository struct {
	db *gorm.DB
}

func NewDeletionGormRepository(db *gorm.DB) *DeletionGormRepository {
	return &DeletionGormRepository{db: db}
}

func (r *DeletionGormRepository) Transaction(
	ctx context.Context,
	fn func(tx deletion.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DeletionGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Loads
// --------------------------------------------------

func (r *DeletionGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate("get user", err)
	}
	return &u, nil
}

func (r *DeletionGormRepository) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	var e models.Employee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate("get employee", err)
	}
	return &e, nil
}

func (r *DeletionGormRepository) GetBusiness(ctx context.Context, id uint) (*models.Business, error) {
	var b models.Business
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate("get business", err)
	}
	return &b, nil
}

// --------------------------------------------------
// Guards
// --------------------------------------------------

func (r *DeletionGormRepository) count(ctx context.Context, model any, query string, args ...any) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Where(query, args...).Count(&n).Error
	return n, translate("count", err)
}

func (r *DeletionGormRepository) CountBusinessesOwnedBy(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, &models.Business{}, "owner_id = ?", userID)
}

func (r *DeletionGormRepository) CountAppointmentsForUser(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, &models.Appointment{}, "user_id = ?", userID)
}

func (r *DeletionGormRepository) CountEmployeesLinkedTo(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, &models.Employee{}, "user_id = ?", userID)
}

func (r *DeletionGormRepository) CountAppointmentsForEmployee(ctx context.Context, employeeID uint) (int64, error) {
	return r.count(ctx, &models.Appointment{}, "employee_id = ?", employeeID)
}

// --------------------------------------------------
// Images
// --------------------------------------------------

func (r *DeletionGormRepository) ImagesForUser(ctx context.Context, userID uint) ([]models.Image, error) {
	var imgs []models.Image
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&imgs).Error
	return imgs, translate("list user images", err)
}

func (r *DeletionGormRepository) ImagesForBusiness(ctx context.Context, businessID uint) ([]models.Image, error) {
	var imgs []models.Image
	err := r.db.WithContext(ctx).Where("business_id = ?", businessID).Find(&imgs).Error
	return imgs, translate("list business images", err)
}

func (r *DeletionGormRepository) DeleteImages(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return translate("delete images", r.db.WithContext(ctx).Delete(&models.Image{}, ids).Error)
}

// --------------------------------------------------
// Employee
// --------------------------------------------------

func (r *DeletionGormRepository) UnlinkServiceTypesFromEmployee(ctx context.Context, employeeID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.ServiceType{}).
		Where("employee_id = ?", employeeID).
		Update("employee_id", nil).Error
	return translate("unlink service types", err)
}

func (r *DeletionGormRepository) ClearEmployeeUser(ctx context.Context, employeeID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Update("user_id", nil).Error
	return translate("clear employee user", err)
}

func (r *DeletionGormRepository) DeleteEmployee(ctx context.Context, employeeID uint) error {
	return translate("delete employee", r.db.WithContext(ctx).Delete(&models.Employee{}, employeeID).Error)
}

// --------------------------------------------------
// Business cascade
// --------------------------------------------------

func (r *DeletionGormRepository) EmployeeIDsForBusiness(ctx context.Context, businessID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("business_id = ?", businessID).
		Pluck("id", &ids).Error
	return ids, translate("employee ids", err)
}

func (r *DeletionGormRepository) ServiceTypeIDsForBusiness(ctx context.Context, businessID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.ServiceType{}).
		Where("business_id = ?", businessID).
		Pluck("id", &ids).Error
	return ids, translate("service type ids", err)
}

func (r *DeletionGormRepository) DeleteAppointmentsForEmployees(ctx context.Context, employeeIDs []uint) (int64, error) {
	if len(employeeIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("employee_id IN ?", employeeIDs).Delete(&models.Appointment{})
	return res.RowsAffected, translate("delete employee appointments", res.Error)
}

func (r *DeletionGormRepository) DeleteAppointmentsForServiceTypes(ctx context.Context, serviceTypeIDs []uint) (int64, error) {
	if len(serviceTypeIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("service_type_id IN ?", serviceTypeIDs).Delete(&models.Appointment{})
	return res.RowsAffected, translate("delete service appointments", res.Error)
}

func (r *DeletionGormRepository) DeleteServiceTypesForBusiness(ctx context.Context, businessID uint) error {
	err := r.db.WithContext(ctx).Where("business_id = ?", businessID).Delete(&models.ServiceType{}).Error
	return translate("delete service types", err)
}

func (r *DeletionGormRepository) DeleteEmployeesForBusiness(ctx context.Context, businessID uint) error {
	err := r.db.WithContext(ctx).Where("business_id = ?", businessID).Delete(&models.Employee{}).Error
	return translate("delete employees", err)
}

func (r *DeletionGormRepository) UnlinkUsersFromBusiness(ctx context.Context, businessID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("business_id = ?", businessID).
		Update("business_id", nil).Error
	return translate("unlink users", err)
}

func (r *DeletionGormRepository) DeleteBusiness(ctx context.Context, businessID uint) error {
	return translate("delete business", r.db.WithContext(ctx).Delete(&models.Business{}, businessID).Error)
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *DeletionGormRepository) DeleteUser(ctx context.Context, userID uint) error {
	return translate("delete user", r.db.WithContext(ctx).Delete(&models.User{}, userID).Error)
}

var _ deletion.Repository = (*DeletionGormRepository)(nil)
