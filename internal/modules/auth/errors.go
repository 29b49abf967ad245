package auth

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError carries the field->tag map produced when account
// fields fail entity validation, so handlers can surface which fields
// were rejected instead of a bare message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "account fields failed validation" }
