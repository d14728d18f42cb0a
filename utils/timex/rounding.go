// File: rounding.go
// Title: Interval Rounding
// Description: Implements Floor and Ceil of a timestamp to calendar interval
//              boundaries. Both operations go through calendar conversion and
//              return the input unchanged whenever the result would leave the
//              calendar range.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: StartOfDay, StartOfWeek, StartOfMonth and StartOfYear helpers
// - 2026-10-19 v0.2.0: Generic Floor/Ceil over all interval types
// - 2026-10-19 v0.2.1: Repeated and skipped local times resolve relative to
//                      the rounded timestamp

package timex

import (
	"math"
	"time"
)

// Floor returns the start of the interval of type typ containing t.
// Millisecond and unknown types return t. When t or the result is outside the
// calendar range, t is returned unchanged.
func (c Calendar) Floor(t Timestamp, typ IntervalType) Timestamp {
	if typ <= Millisecond || typ > Year {
		return t
	}

	dt, err := c.ToCalendar(t)
	if err != nil {
		c.warn("timex.Floor", t, typ, err)
		return t
	}
	if julianDay(dt.Date) <= MinJulianDay {
		return t
	}

	floored, err := c.floorFields(dt, typ)
	if err != nil {
		c.warn("timex.Floor", t, typ, err)
		return t
	}

	result, err := c.boundary(floored, t, math.Inf(1))
	if err != nil {
		c.warn("timex.Floor", t, typ, err)
		return t
	}
	return result
}

// Ceil returns the smallest interval boundary of type typ at or after t.
// Millisecond and unknown types return t. When t or the result is outside the
// calendar range, t is returned unchanged.
func (c Calendar) Ceil(t Timestamp, typ IntervalType) Timestamp {
	if typ <= Millisecond || typ > Year {
		return t
	}

	dt, err := c.ToCalendar(t)
	if err != nil {
		c.warn("timex.Ceil", t, typ, err)
		return t
	}
	if julianDay(dt.Date) >= MaxJulianDay {
		return t
	}

	result, err := c.ceil(t, dt, typ)
	if err != nil {
		c.warn("timex.Ceil", t, typ, err)
		return t
	}
	return result
}

// down selects the rounding direction of ceiling boundaries
var down = math.Inf(-1)

// boundary converts an interval boundary to a timestamp. Beyond 2^53 ms not
// every boundary is representable; the nearest float is then moved one step
// towards dir if it fell on the wrong side of the boundary, which keeps floor
// results at or after and ceil results at or before the exact boundary.
// Zone adjusted boundaries that occur twice resolve relative to t: floors
// take the latest occurrence at or before t, ceilings the earliest at or
// after t.
func (c Calendar) boundary(dt DateTime, t Timestamp, dir float64) (Timestamp, error) {
	jd, err := JulianDay(dt.Date)
	if err != nil {
		return 0, err
	}
	if c.zoned(jd) && dt.TimeOfDay.Valid() {
		return c.zonedBoundary(localMsecs(jd, dt.TimeOfDay.Msecs()), t, dir), nil
	}

	ts, err := c.FromCalendar(dt)
	if err != nil || math.Abs(float64(ts)) < 1<<53 {
		return ts, err
	}
	back, err := c.ToCalendar(ts)
	if err != nil {
		return 0, err
	}
	if cmp := back.Compare(dt); (dir > 0 && cmp < 0) || (dir < 0 && cmp > 0) {
		ts = Timestamp(math.Nextafter(float64(ts), dir))
	}
	return ts, nil
}

// zonedBoundary picks the occurrence of a local boundary that matches the
// rounding direction and rounds it to a float on the same side
func (c Calendar) zonedBoundary(local int64, t Timestamp, dir float64) Timestamp {
	first, last := c.localInstants(local)
	utc := first
	switch {
	case dir > 0 && float64(last) <= float64(t):
		utc = last
	case dir < 0 && float64(first) < float64(t):
		utc = last
	}

	ts := float64(utc)
	if (dir > 0 && int64(ts) < utc) || (dir < 0 && int64(ts) > utc) {
		ts = math.Nextafter(ts, dir)
	}
	return Timestamp(ts)
}

// floorFields truncates dt to the start of its interval of type typ
func (c Calendar) floorFields(dt DateTime, typ IntervalType) (DateTime, error) {
	switch typ {
	case Second:
		dt.Millisecond = 0
	case Minute:
		dt.Millisecond, dt.Second = 0, 0
	case Hour:
		dt.Millisecond, dt.Second, dt.Minute = 0, 0, 0
	case Day:
		dt.TimeOfDay = TimeOfDay{}
	case Week:
		date, err := dt.Date.AddDays(-c.Week.daysSinceStart(dt.Date.Weekday()))
		if err != nil {
			return DateTime{}, err
		}
		dt = DateTime{Date: date}
	case Month:
		dt = DateTime{Date: Date{Year: dt.Year, Month: dt.Month, Day: 1}}
	case Year:
		dt = DateTime{Date: Date{Year: dt.Year, Month: time.January, Day: 1}}
	}
	return dt, nil
}

func (c Calendar) ceil(t Timestamp, dt DateTime, typ IntervalType) (Timestamp, error) {
	switch typ {
	case Second, Minute, Hour:
		return c.ceilClock(t, dt, typ)

	case Day:
		date, err := c.ceilDay(t, dt)
		if err != nil {
			return 0, err
		}
		return c.boundary(DateTime{Date: date}, t, down)

	case Week:
		date, err := c.ceilDay(t, dt)
		if err != nil {
			return 0, err
		}
		date, err = date.AddDays(c.Week.daysUntilStart(date.Weekday()))
		if err != nil {
			return 0, err
		}
		return c.boundary(DateTime{Date: date}, t, down)

	case Month:
		start := DateTime{Date: Date{Year: dt.Year, Month: dt.Month, Day: 1}}
		floor, err := c.boundary(start, t, down)
		if err != nil || floor >= t {
			return floor, err
		}
		next, err := start.Date.AddMonths(1)
		if err != nil {
			return 0, err
		}
		return c.boundary(DateTime{Date: next}, t, down)

	default:
		start := DateTime{Date: Date{Year: dt.Year, Month: time.January, Day: 1}}
		floor, err := c.boundary(start, t, down)
		if err != nil || floor >= t {
			return floor, err
		}
		year := dt.Year + 1
		if year == 0 {
			year = 1
		}
		return c.boundary(DateTime{Date: Date{Year: year, Month: time.January, Day: 1}}, t, down)
	}
}

// ceilClock rounds up to the next second, minute or hour boundary
func (c Calendar) ceilClock(t Timestamp, dt DateTime, typ IntervalType) (Timestamp, error) {
	start, err := c.floorFields(dt, typ)
	if err != nil {
		return 0, err
	}
	floor, err := c.boundary(start, t, down)
	if err != nil || floor == t {
		return floor, err
	}

	msecs := start.TimeOfDay.Msecs() + int64(typ.ApproxMsecs())
	date := start.Date
	if msecs >= MsecsPerDay {
		msecs -= MsecsPerDay
		if date, err = date.AddDays(1); err != nil {
			return 0, err
		}
	}
	next, err := c.boundary(DateTime{Date: date, TimeOfDay: timeOfDayFromMsecs(msecs)}, t, down)
	if err != nil {
		return 0, err
	}

	// In a repeated hour the second occurrence of start lies after t but
	// may still come after the first occurrence of next
	result := next
	if floor > t && floor < next {
		result = floor
	}
	return c.clockTransition(t, result, typ), nil
}

// clockTransition returns the zone offset change in (t, r) when clocks go
// back onto a boundary of typ, and r otherwise. Its local time belongs to
// neither the interval of t nor the following one.
func (c Calendar) clockTransition(t, r Timestamp, typ IntervalType) Timestamp {
	if c.Zone == nil || math.Abs(float64(t)) >= 1<<53 || math.Abs(float64(r)) >= 1<<53 {
		return r
	}
	lo, hi := int64(math.Floor(float64(t))), int64(r)
	if lo >= hi || c.Zone.OffsetAt(Timestamp(lo)) == c.Zone.OffsetAt(Timestamp(hi)) {
		return r
	}

	at := Timestamp(c.transition(lo, hi))
	if at < t || at >= r {
		return r
	}
	dt, err := c.ToCalendar(at)
	if err != nil || dt.TimeOfDay.Msecs()%int64(typ.ApproxMsecs()) != 0 {
		return r
	}
	return at
}

// ceilDay returns the date of the first midnight at or after t
func (c Calendar) ceilDay(t Timestamp, dt DateTime) (Date, error) {
	midnight, err := c.boundary(DateTime{Date: dt.Date}, t, down)
	if err != nil || midnight >= t {
		return dt.Date, err
	}
	return dt.Date.AddDays(1)
}
