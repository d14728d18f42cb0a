// File: week.go
// Title: Week Rule
// Description: Defines the week configuration (first day of the week and ISO
//              numbering) and computes the start date of week 0 of a year.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with Monday based StartOfWeek
// - 2026-10-19 v0.2.0: Configurable first day of week and ISO numbering

package timex

import (
	"strings"
	"time"

	mdwerror "github.com/msto63/timescale/core/error"
)

// WeekConfig describes how weeks are laid out in a locale
type WeekConfig struct {
	// FirstDay is the day a week starts on
	FirstDay time.Weekday

	// ISONumbering selects ISO-8601 week numbering, where week 1 is the
	// week containing the first Thursday of the year
	ISONumbering bool
}

// DefaultWeekConfig returns the ISO-8601 layout: weeks start on Monday
func DefaultWeekConfig() WeekConfig {
	return WeekConfig{FirstDay: time.Monday, ISONumbering: true}
}

// USWeekConfig returns the layout used in the United States: weeks start on
// Sunday and are not numbered by ISO rules
func USWeekConfig() WeekConfig {
	return WeekConfig{FirstDay: time.Sunday, ISONumbering: false}
}

// Valid reports whether FirstDay is a weekday
func (w WeekConfig) Valid() bool {
	return w.FirstDay >= time.Sunday && w.FirstDay <= time.Saturday
}

// daysSinceStart returns how many days wd lies after the first day of its week
func (w WeekConfig) daysSinceStart(wd time.Weekday) int64 {
	return floorMod(int64(wd)-int64(w.FirstDay), 7)
}

// daysUntilStart returns how many days lie between wd and the next first day
// of a week, zero if wd is a first day
func (w WeekConfig) daysUntilStart(wd time.Weekday) int64 {
	return floorMod(int64(w.FirstDay)-int64(wd), 7)
}

// WeekStart returns the start date of week 0 of year: the first day of the
// week on or before January 1st. With ISO numbering the start moves one week
// forward when the Thursday of that week already belongs to the next year.
func (c Calendar) WeekStart(year int64) (Date, error) {
	if !c.Week.Valid() {
		return Date{}, mdwerror.New("invalid first day of week").
			WithCode(mdwerror.CodeInvalidCalendarValue).
			WithOperation("timex.WeekStart").
			WithDetail("first_day", int(c.Week.FirstDay))
	}

	jan1 := Date{Year: year, Month: time.January, Day: 1}
	jd, err := JulianDay(jan1)
	if err != nil {
		return Date{}, err
	}

	start := jd - c.Week.daysSinceStart(weekdayOf(jd))
	// The Thursday of a week starting on or before January 1st is January
	// 7th at the latest, so it never lands in the following year and week 0
	// starts on the same day with or without ISO numbering. The check keeps
	// the documented week 0 rule in one place.
	if c.Week.ISONumbering {
		toThursday := floorMod(int64(time.Thursday)-int64(c.Week.FirstDay), 7)
		if DateFromJulianDay(start+toThursday).Year > year {
			start += 7
		}
	}

	if !InBounds(start) {
		return Date{}, rangeOverflow("timex.WeekStart", "week start out of range").
			WithDetail("year", year)
	}
	return DateFromJulianDay(start), nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses a weekday name or its three letter abbreviation,
// case-insensitively
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if wd, ok := weekdayNames[name]; ok {
		return wd, nil
	}
	if len(name) == 3 {
		for full, wd := range weekdayNames {
			if strings.HasPrefix(full, name) {
				return wd, nil
			}
		}
	}
	return time.Sunday, mdwerror.New("unknown weekday").
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("timex.ParseWeekday").
		WithDetail("value", s)
}
