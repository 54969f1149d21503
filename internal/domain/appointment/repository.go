package appointment

import (
	"context"

	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

type Repository interface {
	// -------- References --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetServiceType(
		ctx context.Context,
		id uint,
	) (*models.ServiceType, error)

	GetEmployee(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// ListActiveForUser omits canceled rows, newest appointment first.
	ListActiveForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListForBusiness(
		ctx context.Context,
		businessID uint,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// UpdateVersioned writes ap only if the stored version still equals
	// ap.Version, then advances ap.Version. Returns domain.ErrStaleVersion
	// when another writer got there first.
	UpdateVersioned(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error
}
