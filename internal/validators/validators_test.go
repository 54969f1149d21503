package validators

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type booking struct {
	At *time.Time `json:"appointmentTime" validate:"omitempty,future"`
}

func TestFuture(t *testing.T) {
	v := validator.New()
	Configure(v)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	assert.NoError(t, v.Struct(booking{}))
	assert.NoError(t, v.Struct(booking{At: &future}))

	err := v.Struct(booking{At: &past})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "appointmentTime", verrs[0].Field())
	assert.Equal(t, "future", verrs[0].Tag())
}
