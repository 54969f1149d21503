package appointment

import (
	"time"

	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCanceled)
	ap.CanceledAt = &now
	return nil
}

func IsCanceled(ap *models.Appointment) bool {
	return Status(ap.Status) == StatusCanceled
}
