package types

import "errors"

// Repository operation errors. Repositories wrap these with context via
// fmt.Errorf("%w: ..."); callers test with errors.Is.
var (
	// ErrValidation indicates caller-supplied input violated a documented
	// constraint (empty required field, value outside an enumerated set).
	// It is always raised before any store mutation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a referenced id matched no row.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState indicates an operation was attempted against an
	// entity whose current state forbids it.
	ErrInvalidState = errors.New("invalid state")
)
