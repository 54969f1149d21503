package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/testutil"
)

func TestLogger_ListFiltersAndPages(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []models.AuditLog{
		{Action: "appointment_created", Entity: "appointment", CreatedAt: base},
		{Action: "appointment_canceled", Entity: "appointment", CreatedAt: base.Add(time.Hour)},
		{Action: "user_deleted", Entity: "user", CreatedAt: base.Add(48 * time.Hour)},
	}
	require.NoError(t, db.Create(&rows).Error)

	all, total, err := l.List(ctx, Filter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, all, 2)
	assert.Equal(t, "user_deleted", all[0].Action)

	byEntity, total, err := l.List(ctx, Filter{Entity: "appointment", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, byEntity, 2)

	to := base.Add(24 * time.Hour)
	inRange, total, err := l.List(ctx, Filter{From: &base, To: &to, Action: "appointment_canceled", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, inRange, 1)
	assert.Equal(t, "appointment_canceled", inRange[0].Action)
}
