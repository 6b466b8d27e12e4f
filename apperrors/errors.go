package apperrors

import "errors"

var (
	// Request input failures
	ErrValidation = errors.New("validation error")

	// Credential failures
	ErrConflict           = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")

	// Storage failures
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError carries a client-facing message and matches ErrValidation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func Invalid(msg string) error {
	return &ValidationError{Msg: msg}
}
