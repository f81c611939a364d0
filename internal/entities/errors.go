package entities

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("authentication required")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("conflict")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrNotEnoughSlots   = errors.New("not enough slots available")
	ErrAmountMismatch   = errors.New("amount does not match booking total")
	ErrInvalidTarget    = errors.New("exactly one of packageId or eventId is required")
)

// NewFieldError builds a single-field validation error rendered the same way as
// struct validation failures.
func NewFieldError(field, message string) error {
	return validation.Errors{field: errors.New(message)}
}
