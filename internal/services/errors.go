package services

import (
	"errors"
)

// Error kinds returned by services. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrStorage      = errors.New("storage unavailable")
)

// serviceError pairs an error kind with a message safe to show to clients
type serviceError struct {
	kind    error
	message string
	cause   error
}

func (e *serviceError) Error() string {
	return e.message
}

func (e *serviceError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

func validationError(message string) error {
	return &serviceError{kind: ErrValidation, message: message}
}

func unauthorizedError(message string) error {
	return &serviceError{kind: ErrUnauthorized, message: message}
}

func notFoundError(message string) error {
	return &serviceError{kind: ErrNotFound, message: message}
}

// storageError wraps a persistence failure. The cause is kept for logs and errors.Is,
// the message shown to clients is generic.
func storageError(cause error) error {
	return &serviceError{kind: ErrStorage, message: "almacenamiento no disponible", cause: cause}
}
