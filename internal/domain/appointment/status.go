package appointment

import "github.com/BruksfildServices01/booksmart-api/internal/apperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCanceled  Status = "CANCELED"
)

// ===============================
// Validations
// ===============================

// CanCancel accepts both known states. Canceling twice re-stamps canceledAt.
func CanCancel(current Status) error {
	switch current {
	case StatusScheduled, StatusCanceled:
		return nil
	}
	return apperr.Validation("invalid_state", "Appointment is in unknown state %q.", current)
}

func InitialStatus() Status {
	return StatusScheduled
}
