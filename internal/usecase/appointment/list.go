package appointment

import (
	"context"

	apdomain "github.com/BruksfildServices01/booksmart-api/internal/domain/appointment"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase"
)

type ListAppointments struct {
	repo apdomain.Repository
}

func NewListAppointments(repo apdomain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) All(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx)
}

func (uc *ListAppointments) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, usecase.NotFoundAs(err, "appointment_not_found", "Appointment not found.")
	}
	return ap, nil
}

// ForUser hides canceled appointments and returns the latest first.
func (uc *ListAppointments) ForUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	if _, err := uc.repo.GetUser(ctx, userID); err != nil {
		return nil, usecase.NotFoundAs(err, "user_not_found", "User not found.")
	}
	return uc.repo.ListActiveForUser(ctx, userID)
}

// ForBusiness includes canceled appointments.
func (uc *ListAppointments) ForBusiness(ctx context.Context, businessID uint) ([]models.Appointment, error) {
	return uc.repo.ListForBusiness(ctx, businessID)
}
