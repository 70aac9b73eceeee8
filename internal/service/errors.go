package service

import "errors"

// Common service errors.
var (
	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately not
	// distinguished so callers cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTaskNotOwned is returned when a task exists but belongs to a
	// different user than the caller. This is distinct from
	// store.ErrTaskNotFound: the API reveals that the task exists but is
	// not accessible.
	ErrTaskNotOwned = errors.New("task not owned by user")
)
