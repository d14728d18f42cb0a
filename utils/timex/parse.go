// File: parse.go
// Title: Timestamp Parsing
// Description: Parses timestamps given either as epoch milliseconds or as
//              calendar date-times with arbitrary (also negative) years.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Parse with a list of time.Time layouts
// - 2026-10-19 v0.2.0: Extended years and epoch milliseconds

package timex

import (
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/timescale/core/error"
)

// ParseTimestamp parses s as epoch milliseconds ("1609459200000", "-1.5e12")
// or as a calendar date-time in c's zone. Date-times have the form
// [-]Y-MM-DD, optionally followed by 'T' or a space and HH:MM[:SS[.mmm]].
// Years may have any number of digits; year 0 is rejected.
func (c Calendar) ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, parseError(s, "empty input")
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Timestamp(f), nil
	}

	dt, err := ParseDateTime(s)
	if err != nil {
		return 0, err
	}
	return c.FromCalendar(dt)
}

// ParseDateTime parses the calendar form accepted by ParseTimestamp without
// converting it to a timestamp
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)

	datePart, timePart := s, ""
	if i := strings.IndexAny(s, "T "); i >= 0 {
		datePart, timePart = s[:i], strings.TrimSpace(s[i+1:])
	}

	date, err := parseDate(datePart)
	if err != nil {
		return DateTime{}, err
	}

	var tod TimeOfDay
	if timePart != "" {
		if tod, err = parseTimeOfDay(timePart); err != nil {
			return DateTime{}, err
		}
	}

	dt := DateTime{Date: date, TimeOfDay: tod}
	if !dt.Valid() {
		return DateTime{}, mdwerror.New("invalid calendar value").
			WithCode(mdwerror.CodeInvalidCalendarValue).
			WithOperation("timex.ParseDateTime").
			WithDetail("input", s)
	}
	return dt, nil
}

func parseDate(s string) (Date, error) {
	negative := strings.HasPrefix(s, "-")
	fields := strings.Split(strings.TrimPrefix(s, "-"), "-")
	if len(fields) != 3 {
		return Date{}, parseError(s, "expected [-]Y-MM-DD")
	}

	year, err := parseDigits(fields[0], 1, 19)
	if err != nil {
		return Date{}, parseError(s, "invalid year")
	}
	month, err := parseDigits(fields[1], 1, 2)
	if err != nil {
		return Date{}, parseError(s, "invalid month")
	}
	day, err := parseDigits(fields[2], 1, 2)
	if err != nil {
		return Date{}, parseError(s, "invalid day")
	}

	if negative {
		year = -year
	}
	return Date{Year: year, Month: time.Month(month), Day: int(day)}, nil
}

func parseTimeOfDay(s string) (TimeOfDay, error) {
	clock, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		clock, frac = s[:i], s[i+1:]
	}

	fields := strings.Split(clock, ":")
	if len(fields) < 2 || len(fields) > 3 || (frac != "" && len(fields) != 3) {
		return TimeOfDay{}, parseError(s, "expected HH:MM[:SS[.mmm]]")
	}

	values := make([]int64, 4)
	for i, f := range fields {
		v, err := parseDigits(f, 2, 2)
		if err != nil {
			return TimeOfDay{}, parseError(s, "invalid clock field")
		}
		values[i] = v
	}
	if frac != "" {
		v, err := parseDigits(frac, 1, 3)
		if err != nil {
			return TimeOfDay{}, parseError(s, "invalid milliseconds")
		}
		// ".5" means 500 ms
		for n := len(frac); n < 3; n++ {
			v *= 10
		}
		values[3] = v
	}

	return TimeOfDay{
		Hour:        int(values[0]),
		Minute:      int(values[1]),
		Second:      int(values[2]),
		Millisecond: int(values[3]),
	}, nil
}

// parseDigits parses an unsigned decimal with a digit count in [minLen, maxLen]
func parseDigits(s string, minLen, maxLen int) (int64, error) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, strconv.ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseInt(s, 10, 64)
}

func parseError(input, reason string) *mdwerror.Error {
	return mdwerror.New("cannot parse timestamp: "+reason).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("timex.ParseTimestamp").
		WithDetail("input", input)
}
