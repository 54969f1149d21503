package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/booksmart-api/internal/audit"
	"github.com/BruksfildServices01/booksmart-api/internal/clock"
	"github.com/BruksfildServices01/booksmart-api/internal/domain"
	apdomain "github.com/BruksfildServices01/booksmart-api/internal/domain/appointment"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase"
)

// CancelAppointment is the soft delete: the row stays with status CANCELED.
type CancelAppointment struct {
	repo  apdomain.Repository
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewCancelAppointment(
	repo apdomain.Repository,
	audit *audit.Dispatcher,
	clk clock.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		clock: clk,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, usecase.NotFoundAs(err, "appointment_not_found", "Appointment not found.")
	}

	if err := apdomain.Cancel(ap, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateVersioned(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrStaleVersion) {
			return nil, staleVersion()
		}
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "appointment_canceled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
