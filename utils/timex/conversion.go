// File: conversion.go
// Title: Timestamp and Calendar Conversion
// Description: Implements the Calendar type and the bidirectional conversion
//              between millisecond timestamps and calendar date-times. The
//              conversion is exact over the full calendar range even where
//              timestamps exceed the int64 millisecond range.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation
// - 2026-10-19 v0.2.1: Zone offsets resolved from both sides of a transition

package timex

import (
	"math"

	mdwerror "github.com/msto63/timescale/core/error"
	mdwlog "github.com/msto63/timescale/core/log"
)

// Calendar bundles the settings that influence calendar arithmetic. A
// Calendar is an immutable value and safe for concurrent use; the zero value
// computes in UTC with Sunday as first day of the week and no logging.
type Calendar struct {
	// Week controls week rounding and week-0 computation
	Week WeekConfig

	// Zone shifts calendar fields to local time. Nil means UTC.
	Zone Zone

	// Logger receives warnings for conversions that failed during rounding.
	// Nil disables logging.
	Logger *mdwlog.Logger
}

// New returns a UTC calendar using DefaultWeekConfig
func New() Calendar {
	return Calendar{Week: DefaultWeekConfig(), Zone: UTC}
}

// WithWeek returns a copy of c using week configuration w
func (c Calendar) WithWeek(w WeekConfig) Calendar {
	c.Week = w
	return c
}

// WithZone returns a copy of c computing calendar fields in zone z
func (c Calendar) WithZone(z Zone) Calendar {
	c.Zone = z
	return c
}

// WithLogger returns a copy of c reporting to logger
func (c Calendar) WithLogger(logger *mdwlog.Logger) Calendar {
	c.Logger = logger
	return c
}

// ToCalendar converts a timestamp to calendar fields. Fractional milliseconds
// are discarded. Timestamps outside the calendar bounds fail with
// RANGE_OVERFLOW.
func (c Calendar) ToCalendar(t Timestamp) (DateTime, error) {
	f := float64(t)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return DateTime{}, mdwerror.New("timestamp is not a finite number").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timex.ToCalendar")
	}

	ms := math.Floor(f)
	var jd, msecs int64
	if math.Abs(ms) < 1<<62 {
		n := int64(ms)
		jd = floorDiv(n, MsecsPerDay) + JulianDayOfEpoch
		msecs = floorMod(n, MsecsPerDay)
	} else {
		// Beyond int64 range every float64 is an integral multiple of 1024,
		// so the FMA remainder is exact
		days := math.Floor(ms / MsecsPerDay)
		if days < float64(MinJulianDay-JulianDayOfEpoch-1) || days > float64(MaxJulianDay-JulianDayOfEpoch+1) {
			return DateTime{}, timestampOverflow(t)
		}
		jd = int64(days) + JulianDayOfEpoch
		rem := math.FMA(-days, MsecsPerDay, ms)
		switch {
		case rem < 0:
			jd--
			rem += MsecsPerDay
		case rem >= MsecsPerDay:
			jd++
			rem -= MsecsPerDay
		}
		msecs = int64(rem)
	}

	if !InBounds(jd) {
		return DateTime{}, timestampOverflow(t)
	}

	if c.Zone != nil && zoneDayRange(jd) {
		msecs += c.Zone.OffsetAt(t)
		jd += floorDiv(msecs, MsecsPerDay)
		msecs = floorMod(msecs, MsecsPerDay)
	}

	return DateTime{Date: DateFromJulianDay(jd), TimeOfDay: timeOfDayFromMsecs(msecs)}, nil
}

// FromCalendar converts calendar fields back to a timestamp. Invalid fields
// fail with INVALID_CALENDAR_VALUE, dates outside the calendar bounds with
// RANGE_OVERFLOW.
func (c Calendar) FromCalendar(dt DateTime) (Timestamp, error) {
	if !dt.TimeOfDay.Valid() {
		return 0, mdwerror.New("invalid time of day").
			WithCode(mdwerror.CodeInvalidCalendarValue).
			WithOperation("timex.FromCalendar").
			WithDetail("time", dt.TimeOfDay.String())
	}
	jd, err := JulianDay(dt.Date)
	if err != nil {
		return 0, err
	}

	msecs := dt.TimeOfDay.Msecs()
	if c.zoned(jd) {
		// A repeated wall-clock time resolves to its first occurrence
		first, _ := c.localInstants(localMsecs(jd, msecs))
		return Timestamp(first), nil
	}

	return timestampOf(jd, msecs), nil
}

// zoned reports whether calendar fields on local day jd are zone adjusted
func (c Calendar) zoned(jd int64) bool {
	return c.Zone != nil && zoneDayRange(jd)
}

// localInstants resolves local wall-clock milliseconds since the epoch to
// UTC. A wall-clock time repeated when the offset drops yields its two
// instants in ascending order. A time skipped when the offset rises yields
// the instant of the transition twice, which shows the end of the gap.
func (c Calendar) localInstants(local int64) (first, last int64) {
	before := local - c.Zone.OffsetAt(Timestamp(local-MsecsPerDay))
	after := local - c.Zone.OffsetAt(Timestamp(local+MsecsPerDay))

	okBefore, okAfter := c.isLocal(before, local), c.isLocal(after, local)
	switch {
	case okBefore && okAfter:
		return min(before, after), max(before, after)
	case okAfter:
		return after, after
	case okBefore || after >= before:
		return before, before
	default:
		gap := c.transition(after, before)
		return gap, gap
	}
}

// transition returns the first instant in (lo, hi] whose offset differs from
// the offset at lo
func (c Calendar) transition(lo, hi int64) int64 {
	offset := c.Zone.OffsetAt(Timestamp(lo))
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if c.Zone.OffsetAt(Timestamp(mid)) == offset {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// isLocal reports whether the UTC instant utc shows the wall-clock time local
func (c Calendar) isLocal(utc, local int64) bool {
	if !zoneDayRange(floorDiv(utc, MsecsPerDay) + JulianDayOfEpoch) {
		return false
	}
	return utc+c.Zone.OffsetAt(Timestamp(utc)) == local
}

// localMsecs counts the milliseconds of a zone adjusted day jd since the
// epoch; the zone day range keeps the product within int64
func localMsecs(jd, msecs int64) int64 {
	return (jd-JulianDayOfEpoch)*MsecsPerDay + msecs
}

// timestampOf rebuilds a timestamp with a single rounding step
func timestampOf(jd, msecs int64) Timestamp {
	return Timestamp(math.FMA(float64(jd-JulianDayOfEpoch), MsecsPerDay, float64(msecs)))
}

func timestampOverflow(t Timestamp) *mdwerror.Error {
	return rangeOverflow("timex.ToCalendar", "timestamp out of calendar range").
		WithDetail("timestamp", float64(t))
}

// warn reports a conversion failure swallowed by a rounding operation
func (c Calendar) warn(operation string, t Timestamp, typ IntervalType, err error) {
	if c.Logger == nil {
		return
	}
	c.Logger.WarnWithErr("calendar conversion failed, returning timestamp unchanged", err, mdwlog.Fields{
		"operation": operation,
		"timestamp": float64(t),
		"interval":  typ.String(),
	})
}
