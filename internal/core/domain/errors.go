package domain

import (
	"errors"
	"fmt"
)

// Authentication failures.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedToken     = errors.New("malformed token")
	ErrBadSignature       = errors.New("token signature is invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Authorization failures.
var (
	ErrForbidden = errors.New("access forbidden")
	ErrNotFound  = errors.New("not found")
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidInput = errors.New("invalid input")
)

// InputError is a validation failure. Detail is the only part meant for
// clients; it matches ErrInvalidInput under errors.Is.
type InputError struct {
	Detail string
}

// InvalidInput builds an *InputError from a format string.
func InvalidInput(format string, args ...any) error {
	return &InputError{Detail: fmt.Sprintf(format, args...)}
}

func (e *InputError) Error() string {
	return ErrInvalidInput.Error() + ": " + e.Detail
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
