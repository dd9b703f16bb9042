// Package common defines shared sentinel errors used across the service and
// CLI layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Rental workflow errors.
	ErrVehicleUnavailable = errors.New("vehicle unavailable")
	ErrInvalidTransition  = errors.New("invalid state transition")

	// Validation errors (field format, range, reference checks).
	ErrValidation = errors.New("validation error")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
)
