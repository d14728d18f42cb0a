// File: format.go
// Title: Format Selector
// Description: Maps interval types to label patterns and renders calendar
//              date-times with them.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import (
	"fmt"
	"strings"
)

// Pattern is a label pattern. Recognized placeholders are yyyy, MMM, ddd,
// dd, hh, mm, ss and zzz; everything else is copied verbatim.
type Pattern string

const (
	PatternYear        Pattern = "yyyy"
	PatternMonth       Pattern = "MMM yyyy"
	PatternDay         Pattern = "ddd dd MMM yyyy"
	PatternMinute      Pattern = "hh:mm\nddd dd MMM yyyy"
	PatternSecond      Pattern = "hh:mm:ss\nddd dd MMM yyyy"
	PatternMillisecond Pattern = "hh:mm:ss:zzz\nddd dd MMM yyyy"
)

// FormatFor returns the label pattern for an interval type. Week shares the
// Day pattern and Hour the Minute pattern; unknown types get the most
// precise pattern.
func FormatFor(typ IntervalType) Pattern {
	switch typ {
	case Year:
		return PatternYear
	case Month:
		return PatternMonth
	case Week, Day:
		return PatternDay
	case Hour, Minute:
		return PatternMinute
	case Second:
		return PatternSecond
	default:
		return PatternMillisecond
	}
}

var placeholders = []string{"yyyy", "MMM", "ddd", "dd", "hh", "mm", "ss", "zzz"}

// Render formats dt with pattern p using English month and weekday names
func (p Pattern) Render(dt DateTime) string {
	var b strings.Builder
	s := string(p)
	for len(s) > 0 {
		matched := false
		for _, ph := range placeholders {
			if strings.HasPrefix(s, ph) {
				b.WriteString(renderField(ph, dt))
				s = s[len(ph):]
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(s[0])
			s = s[1:]
		}
	}
	return b.String()
}

func renderField(ph string, dt DateTime) string {
	switch ph {
	case "yyyy":
		if dt.Year < 0 {
			return fmt.Sprintf("-%04d", -dt.Year)
		}
		return fmt.Sprintf("%04d", dt.Year)
	case "MMM":
		return dt.Month.String()[:3]
	case "ddd":
		return dt.Date.Weekday().String()[:3]
	case "dd":
		return fmt.Sprintf("%02d", dt.Day)
	case "hh":
		return fmt.Sprintf("%02d", dt.Hour)
	case "mm":
		return fmt.Sprintf("%02d", dt.Minute)
	case "ss":
		return fmt.Sprintf("%02d", dt.Second)
	default:
		return fmt.Sprintf("%03d", dt.Millisecond)
	}
}

// Label renders t with the pattern selected for typ. Timestamps outside the
// calendar range are rendered as raw milliseconds.
func (c Calendar) Label(t Timestamp, typ IntervalType) string {
	dt, err := c.ToCalendar(t)
	if err != nil {
		return fmt.Sprintf("%g ms", float64(t))
	}
	return FormatFor(typ).Render(dt)
}
