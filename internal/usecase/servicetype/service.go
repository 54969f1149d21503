package servicetype

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	root "github.com/BruksfildServices01/booksmart-api/internal/domain"
	domain "github.com/BruksfildServices01/booksmart-api/internal/domain/servicetype"
	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase"
)

// Service is the per-business catalog of bookable services.
type Service interface {
	Create(ctx context.Context, req dto.ServiceTypeRequest) (dto.ServiceTypeResponse, error)
	Update(ctx context.Context, id uint, req dto.ServiceTypeRequest) (dto.ServiceTypeResponse, error)
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]dto.ServiceTypeResponse, error)
	Get(ctx context.Context, id uint) (dto.ServiceTypeResponse, error)
	ListByBusiness(ctx context.Context, businessID uint) ([]dto.ServiceTypeResponse, error)
}

type service struct {
	repo domain.Repository
}

func NewService(repo domain.Repository) Service {
	return &service{repo: repo}
}

func notFound(err error) error {
	return usecase.NotFoundAs(err, "service_not_found", "Service type not found.")
}

func duplicateName() error {
	return apperr.Conflict("service_name_taken", "A service type with the same name already exists in the business.")
}

// nameConflict covers the race between NameTaken and the write hitting
// the unique index.
func nameConflict(err error) error {
	if errors.Is(err, root.ErrDuplicate) {
		return duplicateName()
	}
	return err
}

func foreignEmployee() error {
	return apperr.Conflict("employee_other_business", "Employee does not belong to the same business as the service type.")
}

// ======================================================
// CREATE
// ======================================================

func (s *service) Create(ctx context.Context, req dto.ServiceTypeRequest) (dto.ServiceTypeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return dto.ServiceTypeResponse{}, apperr.Validation("name_required", "Service name cannot be blank.")
	}
	if req.Price == nil || req.Price.IsNegative() {
		return dto.ServiceTypeResponse{}, apperr.Validation("invalid_price", "Price must be non-negative.")
	}
	if req.BusinessID == nil {
		return dto.ServiceTypeResponse{}, apperr.Validation("business_required", "Business ID is required.")
	}

	taken, err := s.repo.NameTaken(ctx, *req.BusinessID, name, 0)
	if err != nil {
		return dto.ServiceTypeResponse{}, err
	}
	if taken {
		return dto.ServiceTypeResponse{}, duplicateName()
	}

	b, err := s.repo.GetBusiness(ctx, *req.BusinessID)
	if err != nil {
		return dto.ServiceTypeResponse{}, usecase.NotFoundAs(err, "business_not_found", "Business not found.")
	}

	st := &models.ServiceType{
		Name:       name,
		Price:      *req.Price,
		BusinessID: b.ID,
	}
	if req.Description != nil {
		st.Description = strings.TrimSpace(*req.Description)
	}

	if req.EmployeeID != nil {
		if err := s.linkEmployee(ctx, st, *req.EmployeeID); err != nil {
			return dto.ServiceTypeResponse{}, err
		}
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return dto.ServiceTypeResponse{}, nameConflict(err)
	}

	log.Info().Uint("service_type_id", st.ID).Msg("service type created")
	return dto.FromServiceType(st), nil
}

// ======================================================
// UPDATE
// ======================================================

// Update applies the non-empty fields of req. A nil employeeId clears the
// assigned employee.
func (s *service) Update(ctx context.Context, id uint, req dto.ServiceTypeRequest) (dto.ServiceTypeResponse, error) {
	st, err := s.repo.GetServiceType(ctx, id)
	if err != nil {
		return dto.ServiceTypeResponse{}, notFound(err)
	}

	if name := strings.TrimSpace(req.Name); name != "" && name != st.Name {
		taken, err := s.repo.NameTaken(ctx, st.BusinessID, name, st.ID)
		if err != nil {
			return dto.ServiceTypeResponse{}, err
		}
		if taken {
			return dto.ServiceTypeResponse{}, duplicateName()
		}
		st.Name = name
	}

	if req.Description != nil {
		st.Description = strings.TrimSpace(*req.Description)
	}

	if req.Price != nil {
		if req.Price.IsNegative() {
			return dto.ServiceTypeResponse{}, apperr.Validation("invalid_price", "Price must be non-negative.")
		}
		st.Price = *req.Price
	}

	if req.EmployeeID == nil {
		st.EmployeeID = nil
	} else if err := s.linkEmployee(ctx, st, *req.EmployeeID); err != nil {
		return dto.ServiceTypeResponse{}, err
	}

	if err := s.repo.Save(ctx, st); err != nil {
		return dto.ServiceTypeResponse{}, nameConflict(err)
	}

	log.Info().Uint("service_type_id", st.ID).Msg("service type updated")
	return dto.FromServiceType(st), nil
}

func (s *service) linkEmployee(ctx context.Context, st *models.ServiceType, employeeID uint) error {
	e, err := s.repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return usecase.NotFoundAs(err, "employee_not_found", "Employee not found.")
	}
	if e.BusinessID != st.BusinessID {
		return foreignEmployee()
	}
	st.EmployeeID = &e.ID
	return nil
}

// ======================================================
// DELETE / READS
// ======================================================

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	log.Info().Uint("service_type_id", id).Msg("service type deleted")
	return nil
}

func (s *service) ListAll(ctx context.Context) ([]dto.ServiceTypeResponse, error) {
	list, err := s.repo.ListServiceTypes(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromServiceTypes(list), nil
}

func (s *service) Get(ctx context.Context, id uint) (dto.ServiceTypeResponse, error) {
	st, err := s.repo.GetServiceType(ctx, id)
	if err != nil {
		return dto.ServiceTypeResponse{}, notFound(err)
	}
	return dto.FromServiceType(st), nil
}

func (s *service) ListByBusiness(ctx context.Context, businessID uint) ([]dto.ServiceTypeResponse, error) {
	if _, err := s.repo.GetBusiness(ctx, businessID); err != nil {
		return nil, usecase.NotFoundAs(err, "business_not_found", "Business not found.")
	}
	list, err := s.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return dto.FromServiceTypes(list), nil
}
