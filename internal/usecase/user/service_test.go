package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/auth"
	"github.com/BruksfildServices01/booksmart-api/internal/domain/image"
	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/infra/repository"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/testutil"
)

type fakeHost struct {
	uploads int
	deleted []string
}

func (h *fakeHost) Upload(_ context.Context, folder string, _ []byte) (*image.Upload, error) {
	h.uploads++
	key := fmt.Sprintf("%s/%d.webp", folder, h.uploads)
	return &image.Upload{URL: "https://cdn.test/" + key, PublicID: key}, nil
}

func (h *fakeHost) Delete(_ context.Context, publicID string) error {
	h.deleted = append(h.deleted, publicID)
	return nil
}

func newService(t *testing.T) (Service, *gorm.DB, *auth.TokenIssuer, *fakeHost) {
	t.Helper()
	db := testutil.NewDB(t)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	host := &fakeHost{}
	svc := &service{
		repo:     repository.NewUserGormRepository(db),
		tokens:   tokens,
		host:     host,
		hashCost: bcrypt.MinCost,
	}
	return svc, db, tokens, host
}

// ======================================================
// AUTH
// ======================================================

func TestRegister_IssuesTokenWithUserRole(t *testing.T) {
	svc, db, tokens, _ := newService(t)

	out, err := svc.Register(context.Background(), dto.SignUpRequest{
		FirstName: "Jane", LastName: "Doe", Username: "jane", Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, out.User.Role)
	assert.NotZero(t, out.User.ID)

	claims, err := tokens.Parse(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, "jane", claims.Username)

	var stored models.User
	require.NoError(t, db.First(&stored, out.User.ID).Error)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, db, _, _ := newService(t)
	testutil.CreateUser(t, db, "jane")

	_, err := svc.Register(context.Background(), dto.SignUpRequest{
		FirstName: "Jane", LastName: "Doe", Username: "jane", Password: "secret123",
	})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestLogin(t *testing.T) {
	svc, db, _, _ := newService(t)
	u := testutil.CreateUser(t, db, "jane")

	out, err := svc.Login(context.Background(), dto.LoginRequest{Username: "jane", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, out.User.ID)
	assert.NotEmpty(t, out.Token)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "jane", Password: "wrong"})
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "secret123"})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUsernameAvailable(t *testing.T) {
	svc, db, _, _ := newService(t)
	testutil.CreateUser(t, db, "jane")

	ok, err := svc.UsernameAvailable(context.Background(), "jane")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.UsernameAvailable(context.Background(), "john")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.UsernameAvailable(context.Background(), "  ")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

// ======================================================
// PROFILE
// ======================================================

func TestUpdateProfile(t *testing.T) {
	svc, db, _, _ := newService(t)
	u := testutil.CreateUser(t, db, "jane")
	testutil.CreateUser(t, db, "john")

	first, taken, fresh := "Janet", "john", "janet"

	out, err := svc.UpdateProfile(context.Background(), u.ID, dto.UpdateProfileRequest{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Janet", out.FirstName)
	assert.Equal(t, "User", out.LastName)

	_, err = svc.UpdateProfile(context.Background(), u.ID, dto.UpdateProfileRequest{Username: &taken})
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	out, err = svc.UpdateProfile(context.Background(), u.ID, dto.UpdateProfileRequest{Username: &fresh})
	require.NoError(t, err)
	assert.Equal(t, "janet", out.Username)

	_, err = svc.UpdateProfile(context.Background(), 999, dto.UpdateProfileRequest{})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUploadProfileImage_ReplacesPrevious(t *testing.T) {
	svc, db, _, host := newService(t)
	u := testutil.CreateUser(t, db, "jane")

	first, err := svc.UploadProfileImage(context.Background(), u.ID, []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/profile-images/1.webp", first.ProfileImageURL)
	assert.Empty(t, host.deleted)

	second, err := svc.UploadProfileImage(context.Background(), u.ID, []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/profile-images/2.webp", second.ProfileImageURL)
	assert.Equal(t, []string{"profile-images/1.webp"}, host.deleted)
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Image{}, "user_id = ?", u.ID))

	got, err := svc.Get(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ProfileImageURL, got.ProfileImageURL)
}

func TestUploadProfileImage_Failures(t *testing.T) {
	svc, db, _, host := newService(t)
	u := testutil.CreateUser(t, db, "jane")

	_, err := svc.UploadProfileImage(context.Background(), u.ID, nil)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = svc.UploadProfileImage(context.Background(), 999, []byte("img"))
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Zero(t, host.uploads)
}
