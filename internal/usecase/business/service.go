package business

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/audit"
	domain "github.com/BruksfildServices01/booksmart-api/internal/domain/business"
	"github.com/BruksfildServices01/booksmart-api/internal/domain/image"
	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase"
)

// Service covers business reads, search and create/update. Deletion lives
// in the deletion package.
type Service interface {
	Search(ctx context.Context, query string, page, size int) (dto.Page[dto.BusinessResponse], error)
	ListAll(ctx context.Context) ([]dto.BusinessResponse, error)
	Get(ctx context.Context, id uint) (dto.BusinessResponse, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]dto.BusinessResponse, error)
	Create(ctx context.Context, req dto.BusinessRequest, file []byte) (dto.BusinessResponse, error)
	Update(ctx context.Context, id uint, req dto.BusinessRequest, file []byte) (dto.BusinessResponse, error)
}

type service struct {
	repo  domain.Repository
	host  image.Host
	audit *audit.Dispatcher
}

func NewService(repo domain.Repository, host image.Host, audit *audit.Dispatcher) Service {
	return &service{repo: repo, host: host, audit: audit}
}

func notFound(err error) error {
	return usecase.NotFoundAs(err, "business_not_found", "Business not found.")
}

// ======================================================
// READS
// ======================================================

func (s *service) Search(ctx context.Context, query string, page, size int) (dto.Page[dto.BusinessResponse], error) {
	if page < 0 {
		return dto.Page[dto.BusinessResponse]{}, apperr.Validation("invalid_page", "Page index must not be negative.")
	}
	if size < 1 {
		return dto.Page[dto.BusinessResponse]{}, apperr.Validation("invalid_size", "Page size must be at least 1.")
	}
	// page*size must fit in an int offset
	if page > math.MaxInt/size {
		return dto.Page[dto.BusinessResponse]{}, apperr.Validation("invalid_page", "Page index is out of range.")
	}

	rows, total, err := s.repo.Search(ctx, query, page*size, size)
	if err != nil {
		return dto.Page[dto.BusinessResponse]{}, err
	}

	return dto.MapPage(dto.NewPage(rows, page, size, total), dto.FromBusiness), nil
}

func (s *service) ListAll(ctx context.Context) ([]dto.BusinessResponse, error) {
	list, err := s.repo.ListBusinesses(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromBusinesses(list), nil
}

func (s *service) Get(ctx context.Context, id uint) (dto.BusinessResponse, error) {
	b, err := s.repo.GetBusiness(ctx, id)
	if err != nil {
		return dto.BusinessResponse{}, notFound(err)
	}
	return dto.FromBusiness(b), nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID uint) ([]dto.BusinessResponse, error) {
	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return dto.FromBusinesses(list), nil
}

// ======================================================
// WRITES
// ======================================================

func (s *service) Create(ctx context.Context, req dto.BusinessRequest, file []byte) (dto.BusinessResponse, error) {
	if req.OwnerID == nil {
		return dto.BusinessResponse{}, apperr.Validation("owner_required", "Owner ID cannot be null.")
	}
	if _, err := s.repo.GetUser(ctx, *req.OwnerID); err != nil {
		return dto.BusinessResponse{}, usecase.NotFoundAs(err, "owner_not_found", "Owner not found.")
	}

	b := &models.Business{}
	dto.ApplyBusiness(b, req)

	img, err := s.upload(ctx, file)
	if err != nil {
		return dto.BusinessResponse{}, err
	}

	if err := s.repo.CreateWithImage(ctx, b, img); err != nil {
		s.discard(ctx, img)
		return dto.BusinessResponse{}, err
	}

	s.audit.Dispatch(ctx, audit.Event{
		Action:   "business_created",
		Entity:   "business",
		EntityID: &b.ID,
	})
	return dto.FromBusiness(b), nil
}

// Update keeps the current owner whatever the request says.
func (s *service) Update(ctx context.Context, id uint, req dto.BusinessRequest, file []byte) (dto.BusinessResponse, error) {
	b, err := s.repo.GetBusiness(ctx, id)
	if err != nil {
		return dto.BusinessResponse{}, notFound(err)
	}

	dto.ApplyBusiness(b, req)

	img, err := s.upload(ctx, file)
	if err != nil {
		return dto.BusinessResponse{}, err
	}

	previous, err := s.repo.UpdateWithImage(ctx, b, img)
	if err != nil {
		s.discard(ctx, img)
		return dto.BusinessResponse{}, err
	}
	s.discard(ctx, previous)

	s.audit.Dispatch(ctx, audit.Event{
		Action:   "business_updated",
		Entity:   "business",
		EntityID: &b.ID,
	})
	return dto.FromBusiness(b), nil
}

func (s *service) upload(ctx context.Context, file []byte) (*models.Image, error) {
	if len(file) == 0 {
		return nil, nil
	}
	up, err := usecase.UploadImage(ctx, s.host, image.FolderBusinessLogos, file)
	if err != nil {
		return nil, err
	}
	return &models.Image{URL: up.URL, PublicID: up.PublicID}, nil
}

// discard removes an uploaded object that no row points at any more.
func (s *service) discard(ctx context.Context, img *models.Image) {
	if img == nil {
		return
	}
	if err := s.host.Delete(ctx, img.PublicID); err != nil {
		log.Warn().Err(err).Str("public_id", img.PublicID).Msg("image host delete failed")
	}
}
