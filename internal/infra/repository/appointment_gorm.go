package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/booksmart-api/internal/domain"
	apdomain "github.com/BruksfildServices01/booksmart-api/internal/domain/appointment"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate("get user", err)
	}
	return &u, nil
}

func (r *AppointmentGormRepository) GetServiceType(
	ctx context.Context,
	id uint,
) (*models.ServiceType, error) {

	var st models.ServiceType
	if err := r.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, translate("get service type", err)
	}
	return &st, nil
}

func (r *AppointmentGormRepository) GetEmployee(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var e models.Employee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate("get employee", err)
	}
	return &e, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("ServiceType").
		First(&ap, id).Error; err != nil {
		return nil, translate("get appointment", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("ServiceType").
		Order("id").
		Find(&aps).Error; err != nil {
		return nil, translate("list appointments", err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListActiveForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("ServiceType").
		Where("user_id = ? AND status <> ?", userID, string(apdomain.StatusCanceled)).
		Order("appointment_time DESC").
		Find(&aps).Error; err != nil {
		return nil, translate("list user appointments", err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListForBusiness(
	ctx context.Context,
	businessID uint,
) ([]models.Appointment, error) {

	services := r.db.Model(&models.ServiceType{}).
		Select("id").
		Where("business_id = ?", businessID)

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("ServiceType").
		Where("service_type_id IN (?)", services).
		Order("id").
		Find(&aps).Error; err != nil {
		return nil, translate("list business appointments", err)
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate("create appointment", r.db.WithContext(ctx).Create(ap).Error)
}

func (r *AppointmentGormRepository) UpdateVersioned(
	ctx context.Context,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND version = ?", ap.ID, ap.Version).
		Updates(map[string]any{
			"user_id":          ap.UserID,
			"service_type_id":  ap.ServiceTypeID,
			"employee_id":      ap.EmployeeID,
			"appointment_time": ap.AppointmentTime,
			"status":           ap.Status,
			"canceled_at":      ap.CanceledAt,
			"version":          gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return translate("update appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleVersion
	}

	ap.Version++
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return translate("delete appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ apdomain.Repository = (*AppointmentGormRepository)(nil)
