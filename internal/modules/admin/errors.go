package admin

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrNotManagedUser     = errors.New("user is not managed by this admin")
)
