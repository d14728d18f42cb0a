// File: interval.go
// Title: Interval Types
// Description: Defines the ordered set of calendar interval types used for
//              rounding, classification and label formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import (
	"strings"

	mdwerror "github.com/msto63/timescale/core/error"
)

// IntervalType is a calendar unit, ordered from finest to coarsest
type IntervalType int

const (
	Millisecond IntervalType = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var intervalNames = map[IntervalType]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Month:       "month",
	Year:        "year",
}

// IntervalTypes returns all interval types from finest to coarsest
func IntervalTypes() []IntervalType {
	return []IntervalType{Millisecond, Second, Minute, Hour, Day, Week, Month, Year}
}

// String returns the lower-case unit name
func (t IntervalType) String() string {
	if name, ok := intervalNames[t]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether t is one of the defined interval types
func (t IntervalType) Valid() bool {
	return t >= Millisecond && t <= Year
}

// ApproxMsecs returns the nominal length of one unit in milliseconds. Months
// count 30 days and years 365 days. Unknown types count as one millisecond.
func (t IntervalType) ApproxMsecs() float64 {
	switch t {
	case Second:
		return msecsPerSecond
	case Minute:
		return msecsPerMinute
	case Hour:
		return msecsPerHour
	case Day:
		return MsecsPerDay
	case Week:
		return 7 * MsecsPerDay
	case Month:
		return 30 * MsecsPerDay
	case Year:
		return 365 * MsecsPerDay
	default:
		return 1
	}
}

// ParseIntervalType parses a unit name such as "day", "Days" or "ms"
func ParseIntervalType(s string) (IntervalType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "ms", "msec", "msecs":
		return Millisecond, nil
	case "s", "sec", "secs":
		return Second, nil
	case "min", "mins":
		return Minute, nil
	case "h":
		return Hour, nil
	case "d":
		return Day, nil
	case "w":
		return Week, nil
	case "y":
		return Year, nil
	}
	name = strings.TrimSuffix(name, "s")
	for typ, n := range intervalNames {
		if n == name {
			return typ, nil
		}
	}
	return Millisecond, mdwerror.New("unknown interval type").
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("timex.ParseIntervalType").
		WithDetail("value", s)
}
