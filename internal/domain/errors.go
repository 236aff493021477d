package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict in storage.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput indicates a caller-side validation failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCheckoutUnavailable is returned when checkout is requested before a
	// remote checkout session exists.
	ErrCheckoutUnavailable = errors.New("checkout unavailable")
)
