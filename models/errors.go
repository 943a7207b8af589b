package models

import "errors"

// Sentinel errors shared by services and repositories. Controllers map them
// onto HTTP statuses; anything unrecognized becomes a 500.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrForbidden       = errors.New("you do not own this resource")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthenticated = errors.New("authentication required")
)

type appError struct {
	kind error
	msg  string
}

// E attaches a user-facing message to one of the sentinel kinds. The message
// is what Error() returns; errors.Is still matches the sentinel.
func E(kind error, msg string) error {
	return &appError{kind: kind, msg: msg}
}

func (e *appError) Error() string { return e.msg }

func (e *appError) Unwrap() error { return e.kind }
