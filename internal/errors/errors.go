// Package errors provides typed errors for BlitzForge chart generation.
// This enables callers to use errors.Is() and errors.As() for specific error handling.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
// Use errors.Is(err, errors.ErrInvalidArgument) to check for specific errors.
var (
	// ErrInvalidArgument indicates a caller passed a value outside the
	// numeric model's domain (non-positive hash rate, negative length, ...).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRenderFailed indicates a chart could not be drawn or written.
	ErrRenderFailed = errors.New("render failed")
)

// InvalidArgumentError reports a specific argument that failed validation.
// It wraps ErrInvalidArgument so errors.Is works on the sentinel.
type InvalidArgumentError struct {
	Field   string // Argument name: "alphabetSize", "length", "hashRate", "seconds"
	Message string // Human-readable constraint that was violated
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s: %s", e.Field, e.Message)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// NewInvalidArgument creates a new InvalidArgumentError.
func NewInvalidArgument(field, message string) *InvalidArgumentError {
	return &InvalidArgumentError{Field: field, Message: message}
}

// RenderError represents a failure while building or writing one chart.
type RenderError struct {
	Chart string // Output filename of the chart that failed
	Err   error  // Underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render %s: %v", e.Chart, e.Err)
	}
	return fmt.Sprintf("render %s failed", e.Chart)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the ErrRenderFailed category without
// knowing the underlying cause.
func (e *RenderError) Is(target error) bool {
	return target == ErrRenderFailed
}

// NewRenderError creates a new RenderError.
func NewRenderError(chart string, err error) *RenderError {
	return &RenderError{Chart: chart, Err: err}
}

// Is checks if target matches any error in err's chain.
// This is a convenience function for common error checks.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsInvalidArgument checks if the error indicates a domain violation.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
