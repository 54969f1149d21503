package admin

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/infra/repository"
	"github.com/BruksfildServices01/booksmart-api/internal/infra/storage"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/testutil"
	"github.com/BruksfildServices01/booksmart-api/internal/usecase/deletion"
)

type memCache struct {
	entries map[string][]byte
	sets    int
}

func (c *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func newService(t *testing.T) (Service, *gorm.DB, *memCache) {
	t.Helper()
	db := testutil.NewDB(t)
	cache := &memCache{entries: map[string][]byte{}}
	deleter := deletion.NewDeleteUser(repository.NewDeletionGormRepository(db), storage.DisabledHost{}, nil)
	return NewService(repository.NewUserGormRepository(db), deleter, cache, nil), db, cache
}

func TestListUsers(t *testing.T) {
	svc, db, _ := newService(t)
	testutil.CreateUser(t, db, "a")
	testutil.CreateUser(t, db, "b")

	out, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Username)
}

func TestUpdateRole(t *testing.T) {
	svc, db, _ := newService(t)
	u := testutil.CreateUser(t, db, "jane")

	out, err := svc.UpdateRole(context.Background(), u.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, out.Role)

	_, err = svc.UpdateRole(context.Background(), u.ID, "superuser")
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = svc.UpdateRole(context.Background(), 999, "USER")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestDeleteUser_GuardedAndInvalidatesStats(t *testing.T) {
	svc, db, cache := newService(t)
	owner := testutil.CreateUser(t, db, "owner")
	loner := testutil.CreateUser(t, db, "loner")
	testutil.CreateBusiness(t, db, owner.ID, "Salon")

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)

	err = svc.DeleteUser(context.Background(), owner.ID)
	assert.Equal(t, "user_owns_business", apperr.CodeOf(err))
	assert.Contains(t, cache.entries, statsKey)

	require.NoError(t, svc.DeleteUser(context.Background(), loner.ID))
	assert.NotContains(t, cache.entries, statsKey)

	stats, err = svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalBusinesses)
}

func TestStats_ServedFromCache(t *testing.T) {
	svc, db, cache := newService(t)
	u := testutil.CreateUser(t, db, "jane")
	b := testutil.CreateBusiness(t, db, u.ID, "Salon")
	e := testutil.CreateEmployee(t, db, b.ID, "Ana")
	st := testutil.CreateServiceType(t, db, b.ID, nil, "Cut")
	testutil.CreateAppointment(t, db, u.ID, st.ID, e.ID, time.Now().Add(time.Hour))

	first, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.TotalAppointments)

	testutil.CreateUser(t, db, "john")

	second, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
}
