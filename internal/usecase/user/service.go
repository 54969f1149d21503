package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/auth"
	"github.com/BruksfildServices01/booksmart-api/internal/domain"
	"github.com/BruksfildServices01/booksmart-api/internal/domain/image"
	users "github.com/BruksfildServices01/booksmart-api/internal/domain/user"
	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase"
)

// Service handles authentication and the caller-facing profile.
type Service interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Register(ctx context.Context, req dto.SignUpRequest) (dto.AuthResponse, error)
	UsernameAvailable(ctx context.Context, username string) (bool, error)

	Get(ctx context.Context, id uint) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, id uint, req dto.UpdateProfileRequest) (dto.UserResponse, error)
	UploadProfileImage(ctx context.Context, id uint, file []byte) (dto.UserResponse, error)
}

type service struct {
	repo     users.Repository
	tokens   *auth.TokenIssuer
	host     image.Host
	hashCost int
}

func NewService(repo users.Repository, tokens *auth.TokenIssuer, host image.Host) Service {
	return &service{
		repo:     repo,
		tokens:   tokens,
		host:     host,
		hashCost: bcrypt.DefaultCost,
	}
}

func notFound(err error) error {
	return usecase.NotFoundAs(err, "user_not_found", "User not found.")
}

// ======================================================
// AUTH
// ======================================================

func (s *service) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return dto.AuthResponse{}, usecase.NotFoundAs(err, "unknown_user", "Unknown user.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return dto.AuthResponse{}, apperr.Unauthorized("invalid_credentials", "Invalid password.")
		}
		return dto.AuthResponse{}, fmt.Errorf("compare password: %w", err)
	}

	return s.authResponse(u)
}

func (s *service) Register(ctx context.Context, req dto.SignUpRequest) (dto.AuthResponse, error) {
	taken, err := s.repo.UsernameTaken(ctx, req.Username, 0)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	if taken {
		return dto.AuthResponse{}, apperr.Conflict("username_taken", "Username already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return dto.AuthResponse{}, usernameConflict(err)
	}

	log.Info().Uint("user_id", u.ID).Str("username", u.Username).Msg("user registered")
	return s.authResponse(u)
}

func (s *service) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	if strings.TrimSpace(username) == "" {
		return false, apperr.Validation("username_required", "Username cannot be blank.")
	}
	taken, err := s.repo.UsernameTaken(ctx, username, 0)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

func (s *service) authResponse(u *models.User) (dto.AuthResponse, error) {
	token, err := s.tokens.Issue(auth.Claims{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	})
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return dto.AuthResponse{User: dto.FromUser(u), Token: token}, nil
}

// usernameConflict covers the race between the availability check and the
// insert.
func usernameConflict(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return apperr.Conflict("username_taken", "Username already exists.")
	}
	return err
}

// ======================================================
// PROFILE
// ======================================================

func (s *service) Get(ctx context.Context, id uint) (dto.UserResponse, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return dto.UserResponse{}, notFound(err)
	}
	return dto.FromUser(u), nil
}

func (s *service) UpdateProfile(ctx context.Context, id uint, req dto.UpdateProfileRequest) (dto.UserResponse, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return dto.UserResponse{}, notFound(err)
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Username != nil && *req.Username != u.Username {
		taken, err := s.repo.UsernameTaken(ctx, *req.Username, u.ID)
		if err != nil {
			return dto.UserResponse{}, err
		}
		if taken {
			return dto.UserResponse{}, apperr.Conflict("username_taken", "Username already exists.")
		}
		u.Username = *req.Username
	}

	if err := s.repo.Save(ctx, u); err != nil {
		return dto.UserResponse{}, usernameConflict(err)
	}
	return dto.FromUser(u), nil
}

// UploadProfileImage replaces the user's image. The previous object is
// removed from the host once the new row is stored.
func (s *service) UploadProfileImage(ctx context.Context, id uint, file []byte) (dto.UserResponse, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return dto.UserResponse{}, notFound(err)
	}

	up, err := usecase.UploadImage(ctx, s.host, image.FolderProfiles, file)
	if err != nil {
		return dto.UserResponse{}, err
	}

	img := &models.Image{URL: up.URL, PublicID: up.PublicID}
	previous, err := s.repo.ReplaceProfileImage(ctx, u.ID, img)
	if err != nil {
		s.discard(ctx, img.PublicID)
		return dto.UserResponse{}, err
	}
	if previous != nil {
		s.discard(ctx, previous.PublicID)
	}

	u.ProfileImage = img
	return dto.FromUser(u), nil
}

func (s *service) discard(ctx context.Context, publicID string) {
	if err := s.host.Delete(ctx, publicID); err != nil {
		log.Warn().Err(err).Str("public_id", publicID).Msg("image host delete failed")
	}
}
