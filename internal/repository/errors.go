package repository

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidReference is returned when a schedule points at a post
	// that does not exist.
	ErrInvalidReference = errors.New("referenced post does not exist")
)
