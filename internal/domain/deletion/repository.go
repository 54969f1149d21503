package deletion

import (
	"context"

	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

// Repository exposes the reads and bulk deletes needed to remove users,
// employees and businesses without leaving dangling references.
type Repository interface {
	// Transaction runs fn against a repository bound to a single database
	// transaction. Returning an error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Loads --------
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetEmployee(ctx context.Context, id uint) (*models.Employee, error)
	GetBusiness(ctx context.Context, id uint) (*models.Business, error)

	// -------- Guards --------
	CountBusinessesOwnedBy(ctx context.Context, userID uint) (int64, error)
	CountAppointmentsForUser(ctx context.Context, userID uint) (int64, error)
	CountEmployeesLinkedTo(ctx context.Context, userID uint) (int64, error)
	CountAppointmentsForEmployee(ctx context.Context, employeeID uint) (int64, error)

	// -------- Images --------
	ImagesForUser(ctx context.Context, userID uint) ([]models.Image, error)
	ImagesForBusiness(ctx context.Context, businessID uint) ([]models.Image, error)
	DeleteImages(ctx context.Context, ids []uint) error

	// -------- Employee --------
	UnlinkServiceTypesFromEmployee(ctx context.Context, employeeID uint) error
	ClearEmployeeUser(ctx context.Context, employeeID uint) error
	DeleteEmployee(ctx context.Context, employeeID uint) error

	// -------- Business cascade --------
	EmployeeIDsForBusiness(ctx context.Context, businessID uint) ([]uint, error)
	ServiceTypeIDsForBusiness(ctx context.Context, businessID uint) ([]uint, error)
	DeleteAppointmentsForEmployees(ctx context.Context, employeeIDs []uint) (int64, error)
	DeleteAppointmentsForServiceTypes(ctx context.Context, serviceTypeIDs []uint) (int64, error)
	DeleteServiceTypesForBusiness(ctx context.Context, businessID uint) error
	DeleteEmployeesForBusiness(ctx context.Context, businessID uint) error
	UnlinkUsersFromBusiness(ctx context.Context, businessID uint) error
	DeleteBusiness(ctx context.Context, businessID uint) error

	// -------- User --------
	DeleteUser(ctx context.Context, userID uint) error
}
