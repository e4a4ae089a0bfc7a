package models

import (
	"errors"
	"fmt"
)

// Error kinds shared by every layer. Handlers map them to HTTP status codes.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// AppError pairs an error kind with the message shown to API consumers.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Kind }

func newAppError(kind error, format string, args ...interface{}) error {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewValidationError reports a request the caller has to fix before retrying.
func NewValidationError(format string, args ...interface{}) error {
	return newAppError(ErrValidation, format, args...)
}

func NewUnauthorizedError(format string, args ...interface{}) error {
	return newAppError(ErrUnauthorized, format, args...)
}

func NewForbiddenError(format string, args ...interface{}) error {
	return newAppError(ErrForbidden, format, args...)
}

func NewNotFoundError(format string, args ...interface{}) error {
	return newAppError(ErrNotFound, format, args...)
}

func NewConflictError(format string, args ...interface{}) error {
	return newAppError(ErrConflict, format, args...)
}
