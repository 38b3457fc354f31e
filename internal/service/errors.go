package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a request fails validation.
	// Every ValidationError matches it with errors.Is.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when no drawer has the requested id.
	ErrNotFound = errors.New("not found")
	// ErrExternalService is returned when the label printer fails.
	ErrExternalService = errors.New("external service error")
	// ErrRejected is returned when a layout change would break the cabinet
	// invariants and was not applied.
	ErrRejected = errors.New("request rejected")
)

// ValidationError names the request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func drawerNotFound(id string) error {
	return fmt.Errorf("drawer %s: %w", id, ErrNotFound)
}
