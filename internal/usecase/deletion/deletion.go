package deletion

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/audit"
	"github.com/BruksfildServices01/booksmart-api/internal/domain/deletion"
	"github.com/BruksfildServices01/booksmart-api/internal/domain/image"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase"
)

// ======================================================
// SHARED
// ======================================================

type guard struct {
	repo  deletion.Repository
	host  image.Host
	audit *audit.Dispatcher
}

// purgeHosted removes stored objects after the rows are gone. Failures are
// logged and ignored; the database is already consistent.
func (g *guard) purgeHosted(ctx context.Context, imgs []models.Image) {
	for _, img := range imgs {
		if err := g.host.Delete(ctx, img.PublicID); err != nil {
			log.Warn().
				Err(err).
				Str("public_id", img.PublicID).
				Msg("image host delete failed")
		}
	}
}

func imageIDs(imgs []models.Image) []uint {
	ids := make([]uint, 0, len(imgs))
	for _, img := range imgs {
		ids = append(ids, img.ID)
	}
	return ids
}

// ======================================================
// USER
// ======================================================

type DeleteUser struct {
	guard
}

func NewDeleteUser(
	repo deletion.Repository,
	host image.Host,
	audit *audit.Dispatcher,
) *DeleteUser {
	return &DeleteUser{guard{repo: repo, host: host, audit: audit}}
}

func (uc *DeleteUser) Execute(ctx context.Context, userID uint) error {
	var imgs []models.Image

	err := uc.repo.Transaction(ctx, func(tx deletion.Repository) error {
		if _, err := tx.GetUser(ctx, userID); err != nil {
			return usecase.NotFoundAs(err, "user_not_found", "User not found.")
		}

		// --------------------------------------------------
		// 1. Guards
		// --------------------------------------------------
		owned, err := tx.CountBusinessesOwnedBy(ctx, userID)
		if err != nil {
			return err
		}
		if owned > 0 {
			return apperr.Conflict("user_owns_business", "User owns %d business(es) and cannot be deleted.", owned)
		}

		booked, err := tx.CountAppointmentsForUser(ctx, userID)
		if err != nil {
			return err
		}
		if booked > 0 {
			return apperr.Conflict("user_has_appointments", "User has %d appointment(s) and cannot be deleted.", booked)
		}

		linked, err := tx.CountEmployeesLinkedTo(ctx, userID)
		if err != nil {
			return err
		}
		if linked > 0 {
			return apperr.Conflict("user_is_employee", "User is linked to an employee and cannot be deleted.")
		}

		// --------------------------------------------------
		// 2. Rows
		// --------------------------------------------------
		imgs, err = tx.ImagesForUser(ctx, userID)
		if err != nil {
			return err
		}
		if err := tx.DeleteImages(ctx, imageIDs(imgs)); err != nil {
			return err
		}
		return tx.DeleteUser(ctx, userID)
	})
	if err != nil {
		return err
	}

	uc.purgeHosted(ctx, imgs)

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &userID,
	})
	return nil
}

// ======================================================
// EMPLOYEE
// ======================================================

type DeleteEmployee struct {
	guard
}

func NewDeleteEmployee(
	repo deletion.Repository,
	audit *audit.Dispatcher,
) *DeleteEmployee {
	return &DeleteEmployee{guard{repo: repo, audit: audit}}
}

func (uc *DeleteEmployee) Execute(ctx context.Context, employeeID uint) error {
	err := uc.repo.Transaction(ctx, func(tx deletion.Repository) error {
		if _, err := tx.GetEmployee(ctx, employeeID); err != nil {
			return usecase.NotFoundAs(err, "employee_not_found", "Employee not found.")
		}

		booked, err := tx.CountAppointmentsForEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		if booked > 0 {
			return apperr.Conflict("employee_has_appointments", "Employee has %d appointment(s) and cannot be deleted.", booked)
		}

		if err := tx.UnlinkServiceTypesFromEmployee(ctx, employeeID); err != nil {
			return err
		}
		if err := tx.ClearEmployeeUser(ctx, employeeID); err != nil {
			return err
		}
		return tx.DeleteEmployee(ctx, employeeID)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "employee_deleted",
		Entity:   "employee",
		EntityID: &employeeID,
	})
	return nil
}

// ======================================================
// BUSINESS
// ======================================================

type DeleteBusiness struct {
	guard
}

func NewDeleteBusiness(
	repo deletion.Repository,
	host image.Host,
	audit *audit.Dispatcher,
) *DeleteBusiness {
	return &DeleteBusiness{guard{repo: repo, host: host, audit: audit}}
}

// Execute removes the business with everything hanging off it. Appointments
// go first so no FK points at the employees or service types being removed.
func (uc *DeleteBusiness) Execute(ctx context.Context, businessID uint) error {
	var (
		imgs    []models.Image
		removed int64
	)

	err := uc.repo.Transaction(ctx, func(tx deletion.Repository) error {
		if _, err := tx.GetBusiness(ctx, businessID); err != nil {
			return usecase.NotFoundAs(err, "business_not_found", "Business not found.")
		}

		// --------------------------------------------------
		// 1. Appointments of employees, then of services
		// --------------------------------------------------
		employeeIDs, err := tx.EmployeeIDsForBusiness(ctx, businessID)
		if err != nil {
			return err
		}
		n, err := tx.DeleteAppointmentsForEmployees(ctx, employeeIDs)
		if err != nil {
			return err
		}
		removed += n

		serviceIDs, err := tx.ServiceTypeIDsForBusiness(ctx, businessID)
		if err != nil {
			return err
		}
		n, err = tx.DeleteAppointmentsForServiceTypes(ctx, serviceIDs)
		if err != nil {
			return err
		}
		removed += n

		// --------------------------------------------------
		// 2. Catalog and staff
		// --------------------------------------------------
		if err := tx.DeleteServiceTypesForBusiness(ctx, businessID); err != nil {
			return err
		}
		if err := tx.DeleteEmployeesForBusiness(ctx, businessID); err != nil {
			return err
		}

		// --------------------------------------------------
		// 3. Image, back-links, business
		// --------------------------------------------------
		imgs, err = tx.ImagesForBusiness(ctx, businessID)
		if err != nil {
			return err
		}
		if err := tx.DeleteImages(ctx, imageIDs(imgs)); err != nil {
			return err
		}
		if err := tx.UnlinkUsersFromBusiness(ctx, businessID); err != nil {
			return err
		}
		return tx.DeleteBusiness(ctx, businessID)
	})
	if err != nil {
		return err
	}

	uc.purgeHosted(ctx, imgs)

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "business_deleted",
		Entity:   "business",
		EntityID: &businessID,
		Metadata: map[string]any{"appointmentsRemoved": removed},
	})
	return nil
}
