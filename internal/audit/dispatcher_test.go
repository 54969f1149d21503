package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booksmart-api/internal/auth"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
	"github.com/BruksfildServices01/booksmart-api/internal/testutil"
)

func TestDispatcher_WritesEventWithActorFromContext(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, "actor")
	d := NewDispatcher(New(db))

	ctx := auth.WithClaims(context.Background(), &auth.Claims{UserID: u.ID})
	entityID := uint(9)
	d.Dispatch(ctx, Event{
		Action:   "appointment_canceled",
		Entity:   "appointment",
		EntityID: &entityID,
		Metadata: map[string]any{"version": 2},
	})
	d.Close()

	var rows []models.AuditLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "appointment_canceled", rows[0].Action)
	require.NotNil(t, rows[0].UserID)
	assert.Equal(t, u.ID, *rows[0].UserID)
	assert.JSONEq(t, `{"version":2}`, string(rows[0].Metadata))
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), Event{Action: "x"})
	})
}
