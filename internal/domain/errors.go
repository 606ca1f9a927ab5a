package domain

import "errors"

var (
	// ErrValidation marks a missing or invalid required field.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned for absent records and for records owned by
	// a different user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidOperation marks a mutation that is not allowed in the
	// record's current state, e.g. selling a closed trade.
	ErrInvalidOperation = errors.New("invalid operation")
)
