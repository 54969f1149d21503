package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/audit"
	"github.com/BruksfildServices01/booksmart-api/internal/domain"
	apdomain "github.com/BruksfildServices01/booksmart-api/internal/domain/appointment"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase"
)

// ======================================================
// INPUT
// ======================================================

// UpdateAppointmentInput carries a partial update. Nil fields keep their
// stored value.
type UpdateAppointmentInput struct {
	ID uint

	UserID          *uint
	ServiceID       *uint
	EmployeeID      *uint
	AppointmentTime *time.Time

	// Version is the caller's view of the row. When set it must match.
	Version *int
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  apdomain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo apdomain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func staleVersion() error {
	return apperr.Conflict("stale_version", "Appointment was modified by another request.")
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Load
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, usecase.NotFoundAs(err, "appointment_not_found", "Appointment not found.")
	}

	if in.Version != nil && *in.Version != ap.Version {
		return nil, staleVersion()
	}

	// --------------------------------------------------
	// 2. Re-resolve changed references
	// --------------------------------------------------
	if in.UserID != nil {
		u, err := uc.repo.GetUser(ctx, *in.UserID)
		if err != nil {
			return nil, usecase.NotFoundAs(err, "user_not_found", "User not found.")
		}
		ap.UserID = u.ID
	}

	if in.ServiceID != nil {
		st, err := uc.repo.GetServiceType(ctx, *in.ServiceID)
		if err != nil {
			return nil, usecase.NotFoundAs(err, "service_not_found", "Service type not found.")
		}
		ap.ServiceTypeID = st.ID
		ap.ServiceType = st
	}

	if in.EmployeeID != nil {
		e, err := uc.repo.GetEmployee(ctx, *in.EmployeeID)
		if err != nil {
			return nil, usecase.NotFoundAs(err, "employee_not_found", "Employee not found.")
		}
		ap.EmployeeID = e.ID
	}

	if in.AppointmentTime != nil {
		ap.AppointmentTime = in.AppointmentTime.UTC()
	}

	// --------------------------------------------------
	// 3. Versioned write
	// --------------------------------------------------
	if err := uc.repo.UpdateVersioned(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrStaleVersion) {
			return nil, staleVersion()
		}
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"version": ap.Version},
	})

	return ap, nil
}
