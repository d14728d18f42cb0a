// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across timescale. Calendar arithmetic
//              failures are split into range overflows and invalid calendar values;
//              the remaining codes cover input parsing and configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Calendar codes, dropped service and TCOL codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Calendar arithmetic
	CodeRangeOverflow        Code = "RANGE_OVERFLOW"
	CodeInvalidCalendarValue Code = "INVALID_CALENDAR_VALUE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeRangeOverflow, CodeInvalidCalendarValue,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeRangeOverflow, CodeInvalidCalendarValue:
		return "calendar"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidInput:
		return "input"
	default:
		return "generic"
	}
}

// Recoverable reports whether callers are expected to degrade gracefully
// instead of aborting. Calendar failures are ordinary for astronomically
// large or small inputs.
func (c Code) Recoverable() bool {
	switch c {
	case CodeRangeOverflow, CodeInvalidCalendarValue, CodeInvalidInput:
		return true
	default:
		return false
	}
}
