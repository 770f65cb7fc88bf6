package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Every error a service returns on purpose wraps one of these,
// so callers branch with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrDuplicate       = errors.New("duplicate resource")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationError(field, msg string) *Error {
	return &Error{Kind: ErrValidation, Message: ErrValidation.Error(), Fields: map[string]string{field: msg}}
}

// notFound converts gorm's missing-row error into ErrNotFound and passes
// anything else through.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(ErrNotFound, format, args...)
	}
	return err
}
