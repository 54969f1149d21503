package admin

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/audit"
	users "github.com/BruksfildServices01/booksmart-api/internal/domain/user"
	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase"
)

const statsKey = "stats"

// Cache is the read-through store for system stats.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}

// UserDeleter runs the guarded user deletion.
type UserDeleter interface {
	Execute(ctx context.Context, userID uint) error
}

type Service interface {
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	UpdateRole(ctx context.Context, id uint, role string) (dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uint) error
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type service struct {
	repo    users.Repository
	deleter UserDeleter
	cache   Cache
	audit   *audit.Dispatcher
}

func NewService(repo users.Repository, deleter UserDeleter, cache Cache, audit *audit.Dispatcher) Service {
	return &service{repo: repo, deleter: deleter, cache: cache, audit: audit}
}

func (s *service) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromUsers(list), nil
}

func (s *service) UpdateRole(ctx context.Context, id uint, role string) (dto.UserResponse, error) {
	role = strings.ToUpper(strings.TrimSpace(role))
	if role != models.RoleUser && role != models.RoleAdmin {
		return dto.UserResponse{}, apperr.Validation("invalid_role", "Invalid role: %s", role)
	}

	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return dto.UserResponse{}, usecase.NotFoundAs(err, "user_not_found", "User not found.")
	}

	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return dto.UserResponse{}, usecase.NotFoundAs(err, "user_not_found", "User not found.")
	}

	s.audit.Dispatch(ctx, audit.Event{
		Action:   "user_role_updated",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]string{"role": role},
	})
	return dto.FromUser(u), nil
}

func (s *service) DeleteUser(ctx context.Context, id uint) error {
	if err := s.deleter.Execute(ctx, id); err != nil {
		return err
	}
	s.invalidateStats(ctx)
	return nil
}

// Stats serves the counters from cache when present.
func (s *service) Stats(ctx context.Context) (dto.StatsResponse, error) {
	var out dto.StatsResponse

	hit, err := s.cache.Get(ctx, statsKey, &out)
	if err != nil {
		log.Warn().Err(err).Msg("stats cache read failed")
	}
	if hit {
		return out, nil
	}

	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return dto.StatsResponse{}, err
	}
	out = dto.StatsResponse{
		TotalUsers:        counts.TotalUsers,
		TotalBusinesses:   counts.TotalBusinesses,
		TotalAppointments: counts.TotalAppointments,
	}

	if err := s.cache.Set(ctx, statsKey, out); err != nil {
		log.Warn().Err(err).Msg("stats cache write failed")
	}
	return out, nil
}

func (s *service) invalidateStats(ctx context.Context) {
	if err := s.cache.Delete(ctx, statsKey); err != nil {
		log.Warn().Err(err).Msg("stats cache invalidation failed")
	}
}
