// File: bounds.go
// Title: Calendar Domain Bounds
// Description: Defines the Julian-day range for which calendar conversion is
//              defined, together with the epoch constants shared by every
//              conversion in the package.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

const (
	// MsecsPerDay is the number of milliseconds in a calendar day
	MsecsPerDay = 86400000

	// JulianDayOfEpoch is the Julian day number of 1970-01-01
	JulianDayOfEpoch int64 = 2440588

	// MinJulianDay is the first Julian day with a calendar representation
	// (-2147483648-01-01)
	MinJulianDay int64 = -784350574879

	// MaxJulianDay is the last Julian day with a calendar representation
	// (2147483647-12-31)
	MaxJulianDay int64 = 784354017364

	// maxYearMagnitude keeps the Julian-day formula far away from int64 overflow.
	// Years beyond it are rejected before any multiplication happens.
	maxYearMagnitude int64 = 1 << 40

	msecsPerSecond = 1000
	msecsPerMinute = 60 * msecsPerSecond
	msecsPerHour   = 60 * msecsPerMinute
)

// InBounds reports whether jd lies within [MinJulianDay, MaxJulianDay]
func InBounds(jd int64) bool {
	return jd >= MinJulianDay && jd <= MaxJulianDay
}

// MinDate returns the first representable calendar date
func MinDate() Date {
	return DateFromJulianDay(MinJulianDay)
}

// MaxDate returns the last representable calendar date
func MaxDate() Date {
	return DateFromJulianDay(MaxJulianDay)
}

// floorDiv divides rounding towards negative infinity
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv; the result has the sign of b
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
