package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/audit"
	"github.com/BruksfildServices01/booksmart-api/internal/clock"
	apdomain "github.com/BruksfildServices01/booksmart-api/internal/domain/appointment"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID     *uint
	ServiceID  *uint
	EmployeeID *uint

	// AppointmentTime defaults to now when nil.
	AppointmentTime *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  apdomain.Repository
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewCreateAppointment(
	repo apdomain.Repository,
	audit *audit.Dispatcher,
	clk clock.Clock,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		clock: clk,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. References
	// --------------------------------------------------
	if in.UserID == nil {
		return nil, apperr.NotFound("user_not_found", "User not found.")
	}
	if _, err := uc.repo.GetUser(ctx, *in.UserID); err != nil {
		return nil, usecase.NotFoundAs(err, "user_not_found", "User not found.")
	}

	if in.ServiceID == nil {
		return nil, apperr.NotFound("service_not_found", "Service type not found.")
	}
	service, err := uc.repo.GetServiceType(ctx, *in.ServiceID)
	if err != nil {
		return nil, usecase.NotFoundAs(err, "service_not_found", "Service type not found.")
	}

	if in.EmployeeID == nil {
		return nil, apperr.NotFound("employee_not_found", "Employee not found.")
	}
	if _, err := uc.repo.GetEmployee(ctx, *in.EmployeeID); err != nil {
		return nil, usecase.NotFoundAs(err, "employee_not_found", "Employee not found.")
	}

	// --------------------------------------------------
	// 2. Time
	// --------------------------------------------------
	at := uc.clock.Now()
	if in.AppointmentTime != nil {
		at = in.AppointmentTime.UTC()
	}

	// --------------------------------------------------
	// 3. Persist
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:          *in.UserID,
		ServiceTypeID:   service.ID,
		EmployeeID:      *in.EmployeeID,
		AppointmentTime: at,
		Status:          string(apdomain.InitialStatus()),
		Version:         0,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}
	ap.ServiceType = service

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
