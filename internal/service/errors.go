package service

import "errors"

// Error taxonomy for all service operations. Handlers map these to HTTP
// status codes with errors.Is; anything else is treated as an internal error.
var (
	// ErrValidation indicates malformed or missing required input.
	ErrValidation = errors.New("invalid input")
	// ErrConflict indicates a case-insensitive product name collision.
	ErrConflict = errors.New("product name already in use")
	// ErrNotFound indicates the referenced product id does not exist.
	ErrNotFound = errors.New("product not found")
)
