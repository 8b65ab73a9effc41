// Package timein provides the public API for the timein timezone tool.
// It parses timezone specifications, resolves them against the IANA
// database, and projects an instant across zones as timestamps or an
// hour window.
package timein

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
// Use errors.Is() to check for these errors.
var (
	// ErrInvalidTimezone is returned when a timezone identifier cannot be resolved.
	ErrInvalidTimezone = errors.New("timein: invalid timezone")

	// ErrInvalidDate is returned when a date expression cannot be parsed.
	ErrInvalidDate = errors.New("timein: invalid date")

	// ErrUsage is returned when options or arguments are missing or conflicting.
	ErrUsage = errors.New("timein: usage error")
)

// InvalidTimezoneError provides detailed information about an identifier
// that did not resolve to a known timezone.
type InvalidTimezoneError struct {
	// Input is the identifier as given, e.g. "Amsterdm".
	Input string

	// Suggestion holds a "did you mean ..." hint when a close match exists.
	Suggestion string

	// Cause is the underlying resolution error.
	Cause error
}

// Error returns a formatted error message.
func (e *InvalidTimezoneError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("timein: unknown timezone %q (%s)", e.Input, e.Suggestion)
	}
	return fmt.Sprintf("timein: unknown timezone %q", e.Input)
}

// Unwrap returns the underlying cause error.
func (e *InvalidTimezoneError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error.
func (e *InvalidTimezoneError) Is(target error) bool {
	return target == ErrInvalidTimezone
}

// InvalidDateError provides detailed information about a date expression
// that could not be parsed.
type InvalidDateError struct {
	// Input is the expression as given, e.g. "next blursday".
	Input string

	// Cause is the underlying parse error.
	Cause error
}

// Error returns a formatted error message.
func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("timein: unable to parse date %q", e.Input)
}

// Unwrap returns the underlying cause error.
func (e *InvalidDateError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error.
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// UsageError reports invalid or conflicting options.
type UsageError struct {
	// Message describes what was wrong with the invocation.
	Message string
}

// Error returns a formatted error message.
func (e *UsageError) Error() string {
	return "timein: " + e.Message
}

// Is reports whether this error matches the target error.
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}
