package repository

import "errors"

var (
	// ErrNotFound is returned when a user, post, or application lookup by
	// id (or email) matches nothing.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when creating a user whose email is
	// already registered.
	ErrDuplicateEmail = errors.New("email already exists")
)
