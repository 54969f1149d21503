package employee

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	domain "github.com/BruksfildServices01/booksmart-api/internal/domain/employee"
	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase"
)

type Service interface {
	Create(ctx context.Context, req dto.EmployeeRequest) (dto.EmployeeResponse, error)
	Update(ctx context.Context, id uint, req dto.EmployeeRequest) (dto.EmployeeResponse, error)
	ListAll(ctx context.Context) ([]dto.EmployeeResponse, error)
	Get(ctx context.Context, id uint) (dto.EmployeeResponse, error)
	ListByBusiness(ctx context.Context, businessID uint) ([]dto.EmployeeResponse, error)
}

type service struct {
	repo domain.Repository
}

func NewService(repo domain.Repository) Service {
	return &service{repo: repo}
}

func notFound(err error) error {
	return usecase.NotFoundAs(err, "employee_not_found", "Employee not found.")
}

func businessNotFound(err error) error {
	return usecase.NotFoundAs(err, "business_not_found", "Business not found.")
}

func (s *service) Create(ctx context.Context, req dto.EmployeeRequest) (dto.EmployeeResponse, error) {
	e := &models.Employee{}
	if err := s.apply(ctx, e, req); err != nil {
		return dto.EmployeeResponse{}, err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return dto.EmployeeResponse{}, err
	}

	log.Info().Uint("employee_id", e.ID).Uint("business_id", e.BusinessID).Msg("employee created")
	return dto.FromEmployee(e), nil
}

// Update overwrites every field. A nil userId unlinks the user account.
func (s *service) Update(ctx context.Context, id uint, req dto.EmployeeRequest) (dto.EmployeeResponse, error) {
	e, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return dto.EmployeeResponse{}, notFound(err)
	}

	if err := s.apply(ctx, e, req); err != nil {
		return dto.EmployeeResponse{}, err
	}

	if err := s.repo.Save(ctx, e); err != nil {
		return dto.EmployeeResponse{}, err
	}
	return dto.FromEmployee(e), nil
}

func (s *service) apply(ctx context.Context, e *models.Employee, req dto.EmployeeRequest) error {
	if req.BusinessID == nil {
		return apperr.Validation("business_required", "Business ID is required.")
	}
	b, err := s.repo.GetBusiness(ctx, *req.BusinessID)
	if err != nil {
		return businessNotFound(err)
	}

	e.Name = req.Name
	e.Position = req.Position
	e.BusinessID = b.ID
	e.UserID = nil

	if req.UserID != nil {
		u, err := s.repo.GetUser(ctx, *req.UserID)
		if err != nil {
			return usecase.NotFoundAs(err, "user_not_found", "User not found.")
		}
		e.UserID = &u.ID
	}
	return nil
}

func (s *service) ListAll(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromEmployees(list), nil
}

func (s *service) Get(ctx context.Context, id uint) (dto.EmployeeResponse, error) {
	e, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return dto.EmployeeResponse{}, notFound(err)
	}
	return dto.FromEmployee(e), nil
}

func (s *service) ListByBusiness(ctx context.Context, businessID uint) ([]dto.EmployeeResponse, error) {
	if _, err := s.repo.GetBusiness(ctx, businessID); err != nil {
		return nil, businessNotFound(err)
	}
	list, err := s.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return dto.FromEmployees(list), nil
}
