package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthorized is returned when an operation requires an
	// authenticated session and the caller has none.
	ErrUnauthorized = errors.New("authentication required")

	ErrUsernameTaken = errors.New("username already taken")
)

// ValidationError identifies the first request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError identifies a missing record by resource and id.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}
