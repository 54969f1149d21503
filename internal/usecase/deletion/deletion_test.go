package deletion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/domain/image"
	"github.com/BruksfildServices01/booksmart-api/internal/infra/repository"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/testutil"
)

type recordingHost struct {
	deleted []string
	err     error
}

func (h *recordingHost) Upload(context.Context, string, []byte) (*image.Upload, error) {
	return nil, errors.New("not used")
}

func (h *recordingHost) Delete(_ context.Context, publicID string) error {
	h.deleted = append(h.deleted, publicID)
	return h.err
}

var at = time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)

// ======================================================
// USER
// ======================================================

func TestDeleteUser_Guards(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewDeletionGormRepository(db)
	uc := NewDeleteUser(repo, &recordingHost{}, nil)
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, "owner")
	b := testutil.CreateBusiness(t, db, owner.ID, "Salon")

	err := uc.Execute(ctx, owner.ID)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "user_owns_business", apperr.CodeOf(err))

	client := testutil.CreateUser(t, db, "client")
	e := testutil.CreateEmployee(t, db, b.ID, "Eve")
	s := testutil.CreateServiceType(t, db, b.ID, nil, "Cut")
	testutil.CreateAppointment(t, db, client.ID, s.ID, e.ID, at)

	err = uc.Execute(ctx, client.ID)
	assert.Equal(t, "user_has_appointments", apperr.CodeOf(err))

	staff := testutil.CreateUser(t, db, "staff")
	require.NoError(t, db.Model(e).Update("user_id", staff.ID).Error)

	err = uc.Execute(ctx, staff.ID)
	assert.Equal(t, "user_is_employee", apperr.CodeOf(err))

	assert.Equal(t, int64(3), testutil.Count(t, db, &models.User{}, ""))
}

func TestDeleteUser_RemovesUserAndImage(t *testing.T) {
	db := testutil.NewDB(t)
	host := &recordingHost{err: errors.New("host down")}
	uc := NewDeleteUser(repository.NewDeletionGormRepository(db), host, nil)

	u := testutil.CreateUser(t, db, "lonely")
	require.NoError(t, db.Create(&models.Image{URL: "https://cdn/p.webp", PublicID: "profile-images/p.webp", UserID: &u.ID}).Error)

	require.NoError(t, uc.Execute(context.Background(), u.ID))

	assert.Equal(t, int64(0), testutil.Count(t, db, &models.User{}, ""))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Image{}, ""))
	assert.Equal(t, []string{"profile-images/p.webp"}, host.deleted)
}

func TestDeleteUser_Unknown(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewDeleteUser(repository.NewDeletionGormRepository(db), &recordingHost{}, nil)

	err := uc.Execute(context.Background(), 77)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

// ======================================================
// EMPLOYEE
// ======================================================

func TestDeleteEmployee_WithAppointmentsConflictsAndKeepsRow(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewDeleteEmployee(repository.NewDeletionGormRepository(db), nil)

	owner := testutil.CreateUser(t, db, "owner")
	b := testutil.CreateBusiness(t, db, owner.ID, "Salon")
	e := testutil.CreateEmployee(t, db, b.ID, "Eve")
	s := testutil.CreateServiceType(t, db, b.ID, &e.ID, "Cut")
	ap := testutil.CreateAppointment(t, db, owner.ID, s.ID, e.ID, at)

	err := uc.Execute(context.Background(), e.ID)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Employee{}, "id = ?", e.ID))
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Appointment{}, "id = ?", ap.ID))
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.ServiceType{}, "employee_id = ?", e.ID))
}

func TestDeleteEmployee_UnlinksServicesAndUser(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewDeleteEmployee(repository.NewDeletionGormRepository(db), nil)

	owner := testutil.CreateUser(t, db, "owner")
	staff := testutil.CreateUser(t, db, "staff")
	b := testutil.CreateBusiness(t, db, owner.ID, "Salon")
	e := testutil.CreateEmployee(t, db, b.ID, "Eve")
	require.NoError(t, db.Model(e).Update("user_id", staff.ID).Error)
	s := testutil.CreateServiceType(t, db, b.ID, &e.ID, "Cut")

	require.NoError(t, uc.Execute(context.Background(), e.ID))

	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Employee{}, ""))
	var st models.ServiceType
	require.NoError(t, db.First(&st, s.ID).Error)
	assert.Nil(t, st.EmployeeID)
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.User{}, "id = ?", staff.ID))

	err := uc.Execute(context.Background(), e.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

// ======================================================
// BUSINESS
// ======================================================

func TestDeleteBusiness_CascadesInOrder(t *testing.T) {
	db := testutil.NewDB(t)
	host := &recordingHost{}
	uc := NewDeleteBusiness(repository.NewDeletionGormRepository(db), host, nil)

	owner := testutil.CreateUser(t, db, "owner")
	client := testutil.CreateUser(t, db, "client")
	b := testutil.CreateBusiness(t, db, owner.ID, "Salon")
	require.NoError(t, db.Model(owner).Update("business_id", b.ID).Error)
	e := testutil.CreateEmployee(t, db, b.ID, "Eve")
	s := testutil.CreateServiceType(t, db, b.ID, &e.ID, "Cut")
	testutil.CreateAppointment(t, db, client.ID, s.ID, e.ID, at)
	testutil.CreateAppointment(t, db, client.ID, s.ID, e.ID, at.Add(time.Hour))
	require.NoError(t, db.Create(&models.Image{URL: "u", PublicID: "business-logos/x.webp", BusinessID: &b.ID}).Error)

	// Unrelated business survives.
	other := testutil.CreateBusiness(t, db, owner.ID, "Other")
	oe := testutil.CreateEmployee(t, db, other.ID, "Oz")
	os := testutil.CreateServiceType(t, db, other.ID, nil, "Shave")
	keep := testutil.CreateAppointment(t, db, client.ID, os.ID, oe.ID, at)

	require.NoError(t, uc.Execute(context.Background(), b.ID))

	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Business{}, "id = ?", b.ID))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Employee{}, "business_id = ?", b.ID))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.ServiceType{}, "business_id = ?", b.ID))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Image{}, ""))
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Appointment{}, ""))
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Appointment{}, "id = ?", keep.ID))
	assert.Equal(t, int64(2), testutil.Count(t, db, &models.User{}, ""))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.User{}, "business_id IS NOT NULL"))
	assert.Equal(t, []string{"business-logos/x.webp"}, host.deleted)
}

func TestDeleteBusiness_Unknown(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewDeleteBusiness(repository.NewDeletionGormRepository(db), &recordingHost{}, nil)

	err := uc.Execute(context.Background(), 5)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
