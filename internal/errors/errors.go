// Package errors provides centralized error handling for worldclock.
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
	// ErrUnknownTimezone indicates the time formatting service could not
	// resolve a timezone identifier.
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrInvalidTimezone indicates a value that is neither the local sentinel
	// nor a Region/City identifier.
	ErrInvalidTimezone = errors.New("invalid timezone identifier")

	// ErrDisplayRefresh indicates that resolving or formatting the current
	// instant failed during a display refresh.
	ErrDisplayRefresh = errors.New("display refresh failed")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidClock indicates an invalid clock configuration value.
	ErrConfigInvalidClock = errors.New("invalid clock configuration")

	// ErrConfigInvalidModal indicates an invalid modal configuration value.
	ErrConfigInvalidModal = errors.New("invalid modal configuration")

	// ErrConfigInvalidNotifications indicates an invalid notifications configuration value.
	ErrConfigInvalidNotifications = errors.New("invalid notifications configuration")

	// ErrConfigInvalidZones indicates an invalid timezone option list.
	ErrConfigInvalidZones = errors.New("invalid zones configuration")

	// ErrConfigNotFound indicates that an explicitly requested config file was not found.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInteractiveRequired indicates that interactive prompts are required but not available.
	ErrInteractiveRequired = errors.New("interactive prompt required")

	// ErrNoZonesMatched indicates a zone filter matched nothing.
	ErrNoZonesMatched = errors.New("no zones matched")

	// ErrMenuCanceled indicates the user dismissed an interactive menu.
	ErrMenuCanceled = errors.New("menu canceled")

	// ErrFlagConflict indicates flags or arguments that cannot be used together.
	ErrFlagConflict = errors.New("conflicting flags")
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
