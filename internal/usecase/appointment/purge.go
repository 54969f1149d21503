package appointment

import (
	"context"

	"github.com/BruksfildServices01/booksmart-api/internal/audit"
	apdomain "github.com/BruksfildServices01/booksmart-api/internal/domain/appointment"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase"
)

// PurgeAppointment removes the row whatever its status.
type PurgeAppointment struct {
	repo  apdomain.Repository
	audit *audit.Dispatcher
}

func NewPurgeAppointment(
	repo apdomain.Repository,
	audit *audit.Dispatcher,
) *PurgeAppointment {
	return &PurgeAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *PurgeAppointment) Execute(ctx context.Context, appointmentID uint) error {
	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return usecase.NotFoundAs(err, "appointment_not_found", "Appointment not found.")
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "appointment_purged",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})
	return nil
}
