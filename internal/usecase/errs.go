package usecase

import (
	"errors"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/domain"
)

// NotFoundAs reports domain.ErrNotFound as an apperr NotFound carrying code
// and message. Other errors are returned unchanged.
func NotFoundAs(err error, code, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperr.NotFound(code, "%s", message)
	}
	return err
}
