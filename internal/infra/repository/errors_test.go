package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booksmart-api/internal/domain"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate("op", nil))
	assert.ErrorIs(t, translate("op", gorm.ErrRecordNotFound), domain.ErrNotFound)
	assert.ErrorIs(t, translate("op", gorm.ErrDuplicatedKey), domain.ErrDuplicate)

	pg := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}
	assert.ErrorIs(t, translate("create user", pg), domain.ErrDuplicate)

	other := errors.New("boom")
	err := translate("load", other)
	assert.ErrorIs(t, err, other)
	assert.Contains(t, err.Error(), "load")
}
