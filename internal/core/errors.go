package core

import "errors"

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates the actor may not perform the operation.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAlreadyExists indicates a uniqueness rule was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrAlreadyReviewed indicates the user has already reviewed the course.
	ErrAlreadyReviewed = errors.New("course already reviewed")
	// ErrValidation represents user input validation failures.
	ErrValidation = errors.New("validation error")
	// ErrInvalidPageToken indicates pagination tokens are malformed.
	ErrInvalidPageToken = errors.New("invalid page token")
	// ErrConflict indicates a concurrent writer changed the aggregate since it
	// was loaded; callers retry the whole load-mutate-save cycle.
	ErrConflict = errors.New("version conflict")
)
