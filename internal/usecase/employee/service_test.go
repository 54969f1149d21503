package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/infra/repository"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/testutil"
)

func TestCreate_WithAndWithoutUser(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(repository.NewEmployeeGormRepository(db))
	owner := testutil.CreateUser(t, db, "owner")
	worker := testutil.CreateUser(t, db, "worker")
	b := testutil.CreateBusiness(t, db, owner.ID, "Salon")

	plain, err := svc.Create(context.Background(), dto.EmployeeRequest{
		Name: "Ana", Position: "Stylist", BusinessID: &b.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, plain.ID)
	assert.Nil(t, plain.UserID)

	linked, err := svc.Create(context.Background(), dto.EmployeeRequest{
		Name: "Rui", Position: "Barber", BusinessID: &b.ID, UserID: &worker.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, linked.UserID)
	assert.Equal(t, worker.ID, *linked.UserID)
}

func TestCreate_MissingReferences(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(repository.NewEmployeeGormRepository(db))
	owner := testutil.CreateUser(t, db, "owner")
	b := testutil.CreateBusiness(t, db, owner.ID, "Salon")
	missing := uint(999)

	_, err := svc.Create(context.Background(), dto.EmployeeRequest{
		Name: "Ana", Position: "Stylist", BusinessID: &missing,
	})
	assert.Equal(t, "business_not_found", apperr.CodeOf(err))

	_, err = svc.Create(context.Background(), dto.EmployeeRequest{
		Name: "Ana", Position: "Stylist", BusinessID: &b.ID, UserID: &missing,
	})
	assert.Equal(t, "user_not_found", apperr.CodeOf(err))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Employee{}, ""))
}

func TestUpdate_MovesBusinessAndUnlinksUser(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(repository.NewEmployeeGormRepository(db))
	owner := testutil.CreateUser(t, db, "owner")
	worker := testutil.CreateUser(t, db, "worker")
	from := testutil.CreateBusiness(t, db, owner.ID, "Salon")
	to := testutil.CreateBusiness(t, db, owner.ID, "Barber")
	e := testutil.CreateEmployee(t, db, from.ID, "Ana")
	require.NoError(t, db.Model(e).Update("user_id", worker.ID).Error)

	out, err := svc.Update(context.Background(), e.ID, dto.EmployeeRequest{
		Name: "Ana Maria", Position: "Manager", BusinessID: &to.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", out.Name)
	assert.Equal(t, to.ID, out.BusinessID)
	assert.Nil(t, out.UserID)

	var stored models.Employee
	require.NoError(t, db.First(&stored, e.ID).Error)
	assert.Nil(t, stored.UserID)
	assert.Equal(t, "Manager", stored.Position)
}

func TestUpdate_MoveDetachesOldBusinessServices(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(repository.NewEmployeeGormRepository(db))
	owner := testutil.CreateUser(t, db, "owner")
	from := testutil.CreateBusiness(t, db, owner.ID, "Salon")
	to := testutil.CreateBusiness(t, db, owner.ID, "Barber")
	e := testutil.CreateEmployee(t, db, from.ID, "Ana")
	cut := testutil.CreateServiceType(t, db, from.ID, &e.ID, "Haircut")

	_, err := svc.Update(context.Background(), e.ID, dto.EmployeeRequest{
		Name: "Ana", Position: "Stylist", BusinessID: &from.ID,
	})
	require.NoError(t, err)

	var stored models.ServiceType
	require.NoError(t, db.First(&stored, cut.ID).Error)
	require.NotNil(t, stored.EmployeeID, "same business keeps the assignment")

	_, err = svc.Update(context.Background(), e.ID, dto.EmployeeRequest{
		Name: "Ana", Position: "Stylist", BusinessID: &to.ID,
	})
	require.NoError(t, err)

	stored = models.ServiceType{}
	require.NoError(t, db.First(&stored, cut.ID).Error)
	assert.Nil(t, stored.EmployeeID)
	assert.Equal(t, from.ID, stored.BusinessID)
}

func TestUpdate_NotFound(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(repository.NewEmployeeGormRepository(db))
	owner := testutil.CreateUser(t, db, "owner")
	b := testutil.CreateBusiness(t, db, owner.ID, "Salon")

	_, err := svc.Update(context.Background(), 42, dto.EmployeeRequest{
		Name: "x", Position: "y", BusinessID: &b.ID,
	})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestReads(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(repository.NewEmployeeGormRepository(db))
	owner := testutil.CreateUser(t, db, "owner")
	a := testutil.CreateBusiness(t, db, owner.ID, "Salon")
	b := testutil.CreateBusiness(t, db, owner.ID, "Barber")
	ana := testutil.CreateEmployee(t, db, a.ID, "Ana")
	testutil.CreateEmployee(t, db, b.ID, "Rui")

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := svc.Get(context.Background(), ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	_, err = svc.Get(context.Background(), 999)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	inA, err := svc.ListByBusiness(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, inA, 1)
	assert.Equal(t, ana.ID, inA[0].ID)

	_, err = svc.ListByBusiness(context.Background(), 999)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
