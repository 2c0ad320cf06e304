package project

import "errors"

var (
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrMissingID indicates an update or delete without a project ID.
	ErrMissingID = errors.New("project id is required")
)
