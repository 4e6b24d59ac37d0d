package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden indicates the acting party lacks authority for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidState indicates the entity's current state forbids the action.
// Recoverable by the caller refreshing and retrying with updated intent.
var ErrInvalidState = errors.New("invalid state")

// ErrConflict indicates a concurrent commitment already claimed the resource (HTTP 409).
var ErrConflict = errors.New("conflict")
