package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

func TestCancel_SetsStatusAndTimestamp(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	now := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, Cancel(ap, now))

	assert.Equal(t, string(StatusCanceled), ap.Status)
	require.NotNil(t, ap.CanceledAt)
	assert.True(t, ap.CanceledAt.Equal(now))
	assert.True(t, IsCanceled(ap))
}

func TestCancel_Twice_RestampsCanceledAt(t *testing.T) {
	first := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	require.NoError(t, Cancel(ap, first))
	require.NoError(t, Cancel(ap, second))

	assert.True(t, ap.CanceledAt.Equal(second))
}

func TestCancel_UnknownStatus(t *testing.T) {
	ap := &models.Appointment{Status: "DONE"}

	err := Cancel(ap, time.Now())

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Nil(t, ap.CanceledAt)
}
