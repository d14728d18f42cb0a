// Package timex implements calendar-interval arithmetic on millisecond timestamps.
//
// Package: timex
// Title: Calendar Interval Arithmetic
// Description: Converts millisecond timestamps to proleptic Gregorian calendar
//              fields and back, rounds timestamps to calendar interval boundaries,
//              infers the coarsest interval at which a set of samples is aligned
//              and selects label patterns for it. The calendar range covers the
//              years -2147483648 to 2147483647; there is no year 0.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-19 v0.2.0: Rebuilt around Julian-day arithmetic for extended year ranges
//
// Package Overview:
//
// # Calendar Conversion
//
//   - Calendar.ToCalendar / Calendar.FromCalendar: timestamp <-> DateTime
//   - JulianDay / DateFromJulianDay: date <-> Julian day number
//   - MinDate, MaxDate, InBounds: the supported range
//
// Conversion errors are *error.Error values carrying the codes RANGE_OVERFLOW
// or INVALID_CALENDAR_VALUE.
//
// # Interval Rounding
//
//   - Calendar.Floor: start of the interval containing t
//   - Calendar.Ceil: first interval boundary at or after t
//
// Rounding never fails. If t or its rounded value leaves the calendar range,
// t is returned unchanged and a warning goes to the calendar's logger.
//
// # Weeks
//
// WeekConfig selects the first day of the week and ISO-8601 numbering. It is
// part of the Calendar value; no locale state is read implicitly. See
// Calendar.WeekStart.
//
// # Classification and Labels
//
//   - Calendar.Classify: coarsest interval type every sample is aligned to
//   - FormatFor / Pattern.Render / Calendar.Label: label patterns
//
// Usage:
//
//	cal := timex.New().WithZone(timex.LocationZone(berlin))
//
//	start := cal.Floor(t, timex.Week)
//	end := cal.Ceil(t, timex.Month)
//
//	typ := cal.Classify(ticks)
//	label := cal.Label(ticks[0], typ)
//
// Concurrency:
//
// Calendar is a value type without internal state; all functions are safe for
// concurrent use.
package timex
