// Package error provides structured error handling for the timescale engine.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements a structured error type carrying an error code, a severity,
//              the failing operation and free-form details. The calendar engine uses it
//              to report out-of-range Julian days and calendar values that cannot be
//              normalised, so callers can branch on the code instead of parsing text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced code set to the calendar domain, chain-aware HasCode
//
// Usage:
//
//	import mdwerror "github.com/msto63/timescale/core/error"
//
//	err := mdwerror.New("julian day out of range").
//		WithCode(mdwerror.CodeRangeOverflow).
//		WithOperation("timex.ToCalendar").
//		WithDetail("julianDay", jd)
//
//	if mdwerror.HasCode(err, mdwerror.CodeRangeOverflow) {
//		// degrade to the unrounded value
//	}
package error
