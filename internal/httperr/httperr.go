package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
)

type HTTPError struct {
	Message string            `json:"message"`
	Code    string            `json:"errorCode"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func StatusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes the error envelope for err. Anything that is not an
// *apperr.Error is logged and reported as a generic 500.
func FromError(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("unhandled error")
		Internal(c, "internal_error", "Unexpected server error.")
		return
	}

	c.AbortWithStatusJSON(StatusOf(ae.Kind), HTTPError{
		Message: ae.Message,
		Code:    ae.Code,
		Errors:  ae.Fields,
	})
}

// FromBinding reports a gin binding failure. Validator errors are listed
// per field, anything else (malformed JSON, wrong types) as one message.
func FromBinding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		FromError(c, apperr.Validation("invalid_request", "Malformed request body."))
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	FromError(c, apperr.ValidationFields("Validation failed.", fields))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "future":
		return "must be in the future"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "is invalid"
	}
}
