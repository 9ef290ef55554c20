package types

import "errors"

// Field validation errors. Constructors wrap these with the offending value
// so callers can both match with errors.Is and show the reason to the user.
var (
	ErrEmptyName       = errors.New("contact name must not be empty")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidBirthday = errors.New("invalid birthday")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
)
