//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booksmart-api/internal/config"
	dbpkg "github.com/BruksfildServices01/booksmart-api/internal/db"
	"github.com/BruksfildServices01/booksmart-api/internal/domain"
	"github.com/BruksfildServices01/booksmart-api/internal/infra/storage"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/testutil"
	ucDeletion "github.com/BruksfildServices01/booksmart-api/internal/usecase/deletion"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("booksmart_test"),
		tcPostgres.WithUsername("booksmart"),
		tcPostgres.WithPassword("booksmart"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	url, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := dbpkg.NewDB(&config.Config{
		DBUrl:                 url,
		DBMaxOpenConns:        5,
		DBMaxIdleConns:        2,
		DBConnMaxLifetimeMins: 5,
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func TestPostgres_Repositories(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, "owner")
	pizza := testutil.CreateBusiness(t, db, owner.ID, "Pizza Place")
	testutil.CreateBusiness(t, db, owner.ID, "Barber Shop")
	emp := testutil.CreateEmployee(t, db, pizza.ID, "Ana")
	svc := testutil.CreateServiceType(t, db, pizza.ID, &emp.ID, "Haircut")

	t.Run("unique service name per business maps to ErrDuplicate", func(t *testing.T) {
		repo := NewServiceTypeGormRepository(db)
		err := repo.Create(ctx, &models.ServiceType{
			Name:       "Haircut",
			Price:      decimal.NewFromInt(5),
			BusinessID: pizza.ID,
		})
		assert.True(t, errors.Is(err, domain.ErrDuplicate), "got %v", err)
	})

	t.Run("search is case-sensitive and escapes wildcards", func(t *testing.T) {
		repo := NewBusinessGormRepository(db)

		rows, total, err := repo.Search(ctx, "Pizza", 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, pizza.ID, rows[0].ID)

		_, total, err = repo.Search(ctx, "pizza place", 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)

		_, total, err = repo.Search(ctx, "%", 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("versioned update rejects a stale row", func(t *testing.T) {
		repo := NewAppointmentGormRepository(db)
		ap := testutil.CreateAppointment(t, db, owner.ID, svc.ID, emp.ID, time.Now().Add(time.Hour))

		first := *ap
		second := *ap

		require.NoError(t, repo.UpdateVersioned(ctx, &first))
		assert.Equal(t, 1, first.Version)

		err := repo.UpdateVersioned(ctx, &second)
		assert.ErrorIs(t, err, domain.ErrStaleVersion)
	})

	t.Run("business cascade honours foreign keys", func(t *testing.T) {
		uc := ucDeletion.NewDeleteBusiness(NewDeletionGormRepository(db), storage.DisabledHost{}, nil)
		require.NoError(t, uc.Execute(ctx, pizza.ID))

		assert.Equal(t, int64(0), testutil.Count(t, db, &models.Appointment{}, ""))
		assert.Equal(t, int64(0), testutil.Count(t, db, &models.Employee{}, "business_id = ?", pizza.ID))
		assert.Equal(t, int64(0), testutil.Count(t, db, &models.ServiceType{}, "business_id = ?", pizza.ID))
		assert.Equal(t, int64(1), testutil.Count(t, db, &models.Business{}, ""))
	})
}
