package domain

import (
	"errors"
	"fmt"
)

// Common error types
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

var (
	// ErrSlugTaken is returned when a page slug already exists in the store
	ErrSlugTaken = errors.New("slug already taken")
	// ErrSlugExhausted is returned when no free slug was found within the retry budget
	ErrSlugExhausted = errors.New("could not find a free slug")
	// ErrStyleConflict is returned when an element's styles changed since they were read
	ErrStyleConflict = errors.New("element styles were modified concurrently")
)
