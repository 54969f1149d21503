package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindInternal     Kind = "INTERNAL"
)

// Error is the failure type returned by domain services. The HTTP layer is
// the only place that turns a Kind into a status code.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, code, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func Validation(code, format string, args ...any) error {
	return newError(KindValidation, code, format, args...)
}

func ValidationFields(message string, fields map[string]string) error {
	return &Error{
		Kind:    KindValidation,
		Code:    "validation_failed",
		Message: message,
		Fields:  fields,
	}
}

func NotFound(code, format string, args ...any) error {
	return newError(KindNotFound, code, format, args...)
}

func Conflict(code, format string, args ...any) error {
	return newError(KindConflict, code, format, args...)
}

func Unauthorized(code, format string, args ...any) error {
	return newError(KindUnauthorized, code, format, args...)
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
