package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database. This includes the parent-existence
// check on create: a day under a missing trip is a not-found condition, never
// a raw foreign-key violation leaking out of the storage layer.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")
