// File: calendar_test.go
// Title: Calendar Arithmetic Tests
// Description: Tests Julian-day conversion, leap years, date validation and
//              date arithmetic across the year 0 gap and the calendar bounds.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Julian-day and extended year tests

package timex

import (
	"testing"
	"time"

	mdwerror "github.com/msto63/timescale/core/error"
)

// ===============================
// Julian Day Tests
// ===============================

func TestJulianDay(t *testing.T) {
	testCases := []struct {
		name     string
		date     Date
		expected int64
	}{
		{"Unix epoch", Date{1970, time.January, 1}, 2440588},
		{"J2000", Date{2000, time.January, 1}, 2451545},
		{"Leap day 2000", Date{2000, time.February, 29}, 2451604},
		{"After 1900 February", Date{1900, time.March, 1}, 2415080},
		{"First day AD", Date{1, time.January, 1}, 1721426},
		{"Last day BC", Date{-1, time.December, 31}, 1721425},
		{"First day 1 BC", Date{-1, time.January, 1}, 1721060},
		{"Ides of March", Date{-44, time.March, 15}, 1705428},
		{"Julian day zero", Date{-4714, time.November, 24}, 0},
		{"Minimum date", Date{-2147483648, time.January, 1}, MinJulianDay},
		{"Maximum date", Date{2147483647, time.December, 31}, MaxJulianDay},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			jd, err := JulianDay(tc.date)
			if err != nil {
				t.Fatalf("JulianDay(%s) unexpected error: %v", tc.date, err)
			}
			if jd != tc.expected {
				t.Errorf("JulianDay(%s) = %d, want %d", tc.date, jd, tc.expected)
			}

			if back := DateFromJulianDay(jd); back != tc.date {
				t.Errorf("DateFromJulianDay(%d) = %s, want %s", jd, back, tc.date)
			}
		})
	}
}

func TestJulianDayErrors(t *testing.T) {
	testCases := []struct {
		name string
		date Date
		code mdwerror.Code
	}{
		{"Year zero", Date{0, time.January, 1}, mdwerror.CodeInvalidCalendarValue},
		{"Month 13", Date{2021, 13, 1}, mdwerror.CodeInvalidCalendarValue},
		{"February 30", Date{2021, time.February, 30}, mdwerror.CodeInvalidCalendarValue},
		{"February 29 non leap", Date{1900, time.February, 29}, mdwerror.CodeInvalidCalendarValue},
		{"Day zero", Date{2021, time.March, 0}, mdwerror.CodeInvalidCalendarValue},
		{"After maximum", Date{2147483648, time.January, 1}, mdwerror.CodeRangeOverflow},
		{"Before minimum", Date{-2147483649, time.December, 31}, mdwerror.CodeRangeOverflow},
		{"Huge year", Date{1 << 62, time.January, 1}, mdwerror.CodeRangeOverflow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := JulianDay(tc.date)
			if err == nil {
				t.Fatalf("JulianDay(%s) expected error, got nil", tc.date)
			}
			if !mdwerror.HasCode(err, tc.code) {
				t.Errorf("JulianDay(%s) error code = %s, want %s", tc.date, mdwerror.GetCode(err), tc.code)
			}
		})
	}
}

func TestDateFromJulianDayNoYearZero(t *testing.T) {
	// Walk across the BC/AD transition day by day
	for jd := int64(1721426 - 400); jd <= 1721426+400; jd++ {
		d := DateFromJulianDay(jd)
		if d.Year == 0 {
			t.Fatalf("DateFromJulianDay(%d) produced year 0", jd)
		}
		if !d.Valid() {
			t.Fatalf("DateFromJulianDay(%d) produced invalid date %s", jd, d)
		}
		if back := julianDay(d); back != jd {
			t.Fatalf("julianDay(%s) = %d, want %d", d, back, jd)
		}
	}
}

func TestBounds(t *testing.T) {
	if got := MinDate(); got != (Date{-2147483648, time.January, 1}) {
		t.Errorf("MinDate() = %s", got)
	}
	if got := MaxDate(); got != (Date{2147483647, time.December, 31}) {
		t.Errorf("MaxDate() = %s", got)
	}
	if !InBounds(MinJulianDay) || !InBounds(MaxJulianDay) {
		t.Error("InBounds should include both bounds")
	}
	if InBounds(MinJulianDay-1) || InBounds(MaxJulianDay+1) {
		t.Error("InBounds should exclude days outside the bounds")
	}
}

// ===============================
// Date Tests
// ===============================

func TestIsLeapYear(t *testing.T) {
	testCases := []struct {
		year     int64
		expected bool
	}{
		{2000, true},
		{2024, true},
		{1900, false},
		{2021, false},
		{-1, true},
		{-5, true},
		{-4, false},
		{-101, false},
		{-401, true},
	}

	for _, tc := range testCases {
		if got := IsLeapYear(tc.year); got != tc.expected {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tc.year, got, tc.expected)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2020, time.February); got != 29 {
		t.Errorf("DaysInMonth(2020, February) = %d, want 29", got)
	}
	if got := DaysInMonth(2021, time.February); got != 28 {
		t.Errorf("DaysInMonth(2021, February) = %d, want 28", got)
	}
	if got := DaysInMonth(2021, time.April); got != 30 {
		t.Errorf("DaysInMonth(2021, April) = %d, want 30", got)
	}
	if got := DaysInMonth(2021, 13); got != 0 {
		t.Errorf("DaysInMonth(2021, 13) = %d, want 0", got)
	}
}

func TestDateWeekday(t *testing.T) {
	testCases := []struct {
		date     Date
		expected time.Weekday
	}{
		{Date{1970, time.January, 1}, time.Thursday},
		{Date{2021, time.January, 1}, time.Friday},
		{Date{2021, time.June, 15}, time.Tuesday},
		{Date{1, time.January, 1}, time.Monday},
		{Date{-1, time.December, 31}, time.Sunday},
		{Date{-2147483648, time.January, 1}, time.Thursday},
		{Date{2147483647, time.December, 31}, time.Tuesday},
	}

	for _, tc := range testCases {
		if got := tc.date.Weekday(); got != tc.expected {
			t.Errorf("%s.Weekday() = %s, want %s", tc.date, got, tc.expected)
		}
	}
}

func TestDateAddDays(t *testing.T) {
	d, err := Date{-1, time.December, 31}.AddDays(1)
	if err != nil || d != (Date{1, time.January, 1}) {
		t.Errorf("AddDays across year 0 = %s, %v", d, err)
	}

	if _, err := MaxDate().AddDays(1); !mdwerror.HasCode(err, mdwerror.CodeRangeOverflow) {
		t.Errorf("MaxDate().AddDays(1) error = %v, want RANGE_OVERFLOW", err)
	}
	if _, err := MinDate().AddDays(-1); !mdwerror.HasCode(err, mdwerror.CodeRangeOverflow) {
		t.Errorf("MinDate().AddDays(-1) error = %v, want RANGE_OVERFLOW", err)
	}
}

func TestDateAddMonths(t *testing.T) {
	testCases := []struct {
		name     string
		date     Date
		months   int64
		expected Date
	}{
		{"Clamp to February", Date{2021, time.January, 31}, 1, Date{2021, time.February, 28}},
		{"Clamp to leap February", Date{2020, time.January, 31}, 1, Date{2020, time.February, 29}},
		{"Into AD", Date{-1, time.December, 15}, 1, Date{1, time.January, 15}},
		{"Into BC", Date{1, time.January, 15}, -1, Date{-1, time.December, 15}},
		{"Backwards over a year", Date{2021, time.March, 31}, -13, Date{2020, time.February, 29}},
		{"Zero", Date{2021, time.June, 15}, 0, Date{2021, time.June, 15}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.date.AddMonths(tc.months)
			if err != nil {
				t.Fatalf("AddMonths unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("%s.AddMonths(%d) = %s, want %s", tc.date, tc.months, got, tc.expected)
			}
		})
	}

	if _, err := MaxDate().AddMonths(1); !mdwerror.HasCode(err, mdwerror.CodeRangeOverflow) {
		t.Errorf("MaxDate().AddMonths(1) error = %v, want RANGE_OVERFLOW", err)
	}
}

func TestDateCompare(t *testing.T) {
	a := Date{-1, time.December, 31}
	b := Date{1, time.January, 1}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare(%s, %s) inconsistent", a, b)
	}
}

func TestDateTimeString(t *testing.T) {
	dt := DateTime{Date: Date{-44, time.March, 15}}
	if got := dt.String(); got != "-0044-03-15T00:00:00.000" {
		t.Errorf("String() = %q", got)
	}

	dt = DateTime{Date{2021, time.June, 15}, TimeOfDay{13, 45, 30, 250}}
	if got := dt.String(); got != "2021-06-15T13:45:30.250" {
		t.Errorf("String() = %q", got)
	}
}
