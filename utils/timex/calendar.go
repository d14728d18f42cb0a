// File: calendar.go
// Title: Proleptic Gregorian Calendar Arithmetic
// Description: Implements the Date, TimeOfDay and DateTime value types and the
//              conversion between proleptic Gregorian dates and Julian day
//              numbers. Year 0 does not exist: year -1 is directly followed by
//              year 1.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with StartOf* helpers
// - 2026-10-19 v0.2.0: Replaced time.Time based helpers with Julian-day arithmetic
//                      covering the full 32-bit year range

package timex

import (
	"fmt"
	"time"

	mdwerror "github.com/msto63/timescale/core/error"
)

// Timestamp is a point in time as milliseconds since 1970-01-01T00:00:00 UTC.
// Fractional milliseconds are allowed but ignored by calendar conversion.
type Timestamp float64

// Date is a proleptic Gregorian calendar date
type Date struct {
	Year  int64
	Month time.Month
	Day   int
}

// TimeOfDay is a wall-clock time with millisecond resolution
type TimeOfDay struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// DateTime combines a calendar date with a wall-clock time
type DateTime struct {
	Date
	TimeOfDay
}

// IsLeapYear reports whether year is a leap year. Negative years are shifted
// by one so that -1, -5, -9 ... are leap years.
func IsLeapYear(year int64) bool {
	if year < 0 {
		year++
	}
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of month m in year
func DaysInMonth(year int64, m time.Month) int {
	switch m {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	case time.January, time.March, time.May, time.July,
		time.August, time.October, time.December:
		return 31
	default:
		return 0
	}
}

// Valid reports whether d names an existing calendar day
func (d Date) Valid() bool {
	if d.Year == 0 || d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return compareInt64(d.Year, o.Year)
	case d.Month != o.Month:
		return compareInt64(int64(d.Month), int64(o.Month))
	default:
		return compareInt64(int64(d.Day), int64(o.Day))
	}
}

// Weekday returns the day of the week of a valid date
func (d Date) Weekday() time.Weekday {
	return weekdayOf(julianDay(d))
}

// AddDays moves d by n days. The result must stay within the calendar bounds.
func (d Date) AddDays(n int64) (Date, error) {
	jd, err := JulianDay(d)
	if err != nil {
		return Date{}, err
	}
	if (n > 0 && jd > MaxJulianDay-n) || (n < 0 && jd < MinJulianDay-n) {
		return Date{}, rangeOverflow("timex.AddDays", "date out of range").
			WithDetail("date", d.String()).
			WithDetail("days", n)
	}
	return DateFromJulianDay(jd + n), nil
}

// AddMonths moves d by n months, skipping year 0. The day is clamped to the
// length of the target month, so Jan 31 plus one month is Feb 28 or 29.
func (d Date) AddMonths(n int64) (Date, error) {
	if !d.Valid() {
		return Date{}, invalidDate("timex.AddMonths", d)
	}

	// Work on a zero-based month index over astronomical years
	year := d.Year
	if year < 0 {
		year++
	}
	if year > maxYearMagnitude || year < -maxYearMagnitude ||
		n > maxYearMagnitude || n < -maxYearMagnitude {
		return Date{}, rangeOverflow("timex.AddMonths", "month shift out of range").
			WithDetail("date", d.String()).
			WithDetail("months", n)
	}
	index := year*12 + int64(d.Month-time.January) + n
	year = floorDiv(index, 12)
	month := time.Month(floorMod(index, 12)) + time.January
	if year <= 0 {
		year--
	}

	result := Date{Year: year, Month: month, Day: d.Day}
	if limit := DaysInMonth(year, month); result.Day > limit {
		result.Day = limit
	}
	if _, err := JulianDay(result); err != nil {
		return Date{}, err
	}
	return result, nil
}

// String formats d as [-]YYYY-MM-DD
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, int(d.Month), d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Valid reports whether t is a wall-clock time within a single day
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60 &&
		t.Millisecond >= 0 && t.Millisecond < 1000
}

// Msecs returns the milliseconds elapsed since midnight
func (t TimeOfDay) Msecs() int64 {
	return int64(t.Hour)*msecsPerHour + int64(t.Minute)*msecsPerMinute +
		int64(t.Second)*msecsPerSecond + int64(t.Millisecond)
}

// String formats t as HH:MM:SS.mmm
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Millisecond)
}

// timeOfDayFromMsecs splits milliseconds since midnight into clock fields
func timeOfDayFromMsecs(ms int64) TimeOfDay {
	return TimeOfDay{
		Hour:        int(ms / msecsPerHour),
		Minute:      int(ms % msecsPerHour / msecsPerMinute),
		Second:      int(ms % msecsPerMinute / msecsPerSecond),
		Millisecond: int(ms % msecsPerSecond),
	}
}

// Valid reports whether both the date and the time of dt are valid
func (dt DateTime) Valid() bool {
	return dt.Date.Valid() && dt.TimeOfDay.Valid()
}

// Compare returns -1, 0 or +1 depending on whether dt is before, equal to or
// after o
func (dt DateTime) Compare(o DateTime) int {
	if cmp := dt.Date.Compare(o.Date); cmp != 0 {
		return cmp
	}
	return compareInt64(dt.TimeOfDay.Msecs(), o.TimeOfDay.Msecs())
}

// String formats dt as [-]YYYY-MM-DDTHH:MM:SS.mmm
func (dt DateTime) String() string {
	return dt.Date.String() + "T" + dt.TimeOfDay.String()
}

// JulianDay returns the Julian day number of d. Invalid dates fail with
// INVALID_CALENDAR_VALUE, dates outside the calendar bounds with RANGE_OVERFLOW.
func JulianDay(d Date) (int64, error) {
	if !d.Valid() {
		return 0, invalidDate("timex.JulianDay", d)
	}
	if d.Year > maxYearMagnitude || d.Year < -maxYearMagnitude {
		return 0, rangeOverflow("timex.JulianDay", "year out of range").
			WithDetail("date", d.String())
	}
	jd := julianDay(d)
	if !InBounds(jd) {
		return 0, rangeOverflow("timex.JulianDay", "date out of range").
			WithDetail("date", d.String()).
			WithDetail("julian_day", jd)
	}
	return jd, nil
}

// julianDay converts a valid date whose year magnitude is bounded by
// maxYearMagnitude
func julianDay(d Date) int64 {
	y := d.Year
	if y < 0 {
		y++
	}
	m := int64(d.Month)

	// m1 is -1 for January and February, which are counted as months 11 and 12
	// of the previous year
	var m1 int64
	if m <= 2 {
		m1 = -1
	}
	m2 := (367 * (m - 2 - 12*m1)) / 12
	y1 := floorDiv(4900+y+m1, 100)

	return floorDiv(1461*(y+4800+m1), 4) + m2 - floorDiv(3*y1, 4) + int64(d.Day) - 32075
}

// DateFromJulianDay returns the calendar date of jd. The result is only
// meaningful for InBounds(jd).
func DateFromJulianDay(jd int64) Date {
	a := jd + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)

	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)

	day := e - floorDiv(153*m+2, 5) + 1
	month := m + 3 - 12*floorDiv(m, 10)
	year := 100*b + d - 4800 + floorDiv(m, 10)

	if year <= 0 {
		year--
	}

	return Date{Year: year, Month: time.Month(month), Day: int(day)}
}

// weekdayOf returns the day of the week of a Julian day; day 0 was a Monday
func weekdayOf(jd int64) time.Weekday {
	return time.Weekday((floorMod(jd, 7) + 1) % 7)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func rangeOverflow(operation, message string) *mdwerror.Error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeRangeOverflow).
		WithOperation(operation)
}

func invalidDate(operation string, d Date) *mdwerror.Error {
	return mdwerror.New("invalid calendar date").
		WithCode(mdwerror.CodeInvalidCalendarValue).
		WithOperation(operation).
		WithDetail("year", d.Year).
		WithDetail("month", int(d.Month)).
		WithDetail("day", d.Day)
}
