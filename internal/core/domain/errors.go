package domain

import "errors"

// Sentinel errors shared by every layer. Adapters wrap driver errors with %w so
// callers match them with errors.Is.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("resource not found")
	ErrConflict    = errors.New("resource already exists")
	ErrUnavailable = errors.New("service temporarily unavailable")

	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("incorrect password")
)

// IsAuthFailure reports whether err is one of the login failures answered with 401.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrInvalidPassword)
}
