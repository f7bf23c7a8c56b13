// Package errors provides centralized error handling for clockface.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
var (
	// ErrSurfaceUnavailable indicates that no usable drawing surface could be
	// obtained. The clock never starts when this is returned.
	ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

	// ErrDrawFailed indicates that a drawing callback failed. The transform
	// was restored and the stroke skipped.
	ErrDrawFailed = errors.New("draw failed")

	// ErrNotTerminal indicates that an interactive command was started
	// without a terminal attached to stdout.
	ErrNotTerminal = errors.New("stdout is not a terminal")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidClock indicates an invalid clock configuration value.
	ErrConfigInvalidClock = errors.New("invalid clock configuration")

	// ErrConfigInvalidSurface indicates an invalid surface configuration value.
	ErrConfigInvalidSurface = errors.New("invalid surface configuration")

	// ErrConfigInvalidStyle indicates an invalid style configuration value.
	ErrConfigInvalidStyle = errors.New("invalid style configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidTime indicates that a wall-clock time argument could not be parsed.
	ErrInvalidTime = errors.New("invalid time")

	// ErrInvalidColor indicates that a color string is neither a hex value nor a known name.
	ErrInvalidColor = errors.New("invalid color")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrValueOutOfRange indicates that a numeric value is outside its allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrMenuCanceled indicates that the user canceled an interactive form.
	ErrMenuCanceled = errors.New("menu canceled by user")

	// ErrOutputLocked indicates that another clockface process is writing
	// the same frame file.
	ErrOutputLocked = errors.New("frame file is locked by another process")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
