// File: format_test.go
// Title: Format Selector Tests
// Description: Tests pattern selection per interval type and label rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial test implementation

package timex

import (
	"strings"
	"testing"
	"time"
)

func TestFormatFor(t *testing.T) {
	testCases := []struct {
		typ      IntervalType
		expected Pattern
	}{
		{Year, "yyyy"},
		{Month, "MMM yyyy"},
		{Week, "ddd dd MMM yyyy"},
		{Day, "ddd dd MMM yyyy"},
		{Hour, "hh:mm\nddd dd MMM yyyy"},
		{Minute, "hh:mm\nddd dd MMM yyyy"},
		{Second, "hh:mm:ss\nddd dd MMM yyyy"},
		{Millisecond, "hh:mm:ss:zzz\nddd dd MMM yyyy"},
		{IntervalType(-1), "hh:mm:ss:zzz\nddd dd MMM yyyy"},
	}

	for _, tc := range testCases {
		t.Run(tc.typ.String(), func(t *testing.T) {
			if got := FormatFor(tc.typ); got != tc.expected {
				t.Errorf("FormatFor(%s) = %q, want %q", tc.typ, got, tc.expected)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	cal := New()

	testCases := []struct {
		typ      IntervalType
		expected string
	}{
		{Year, "2021"},
		{Month, "Jun 2021"},
		{Day, "Tue 15 Jun 2021"},
		{Hour, "13:45\nTue 15 Jun 2021"},
		{Second, "13:45:30\nTue 15 Jun 2021"},
		{Millisecond, "13:45:30:250\nTue 15 Jun 2021"},
	}

	for _, tc := range testCases {
		t.Run(tc.typ.String(), func(t *testing.T) {
			if got := cal.Label(sampleTimestamp, tc.typ); got != tc.expected {
				t.Errorf("Label(%s) = %q, want %q", tc.typ, got, tc.expected)
			}
		})
	}
}

func TestPatternRender(t *testing.T) {
	dt := DateTime{Date: Date{-44, time.March, 15}}
	if got := PatternDay.Render(dt); got != "Fri 15 Mar -0044" {
		t.Errorf("Render = %q", got)
	}

	custom := Pattern("[yyyy/dd] at hh")
	if got := custom.Render(DateTime{Date{2021, time.June, 15}, TimeOfDay{Hour: 7}}); got != "[2021/15] at 07" {
		t.Errorf("Render custom = %q", got)
	}
}

func TestLabelOutOfRange(t *testing.T) {
	got := New().Label(noonOf(MaxJulianDay+1), Day)
	if !strings.HasSuffix(got, " ms") {
		t.Errorf("Label(out of range) = %q, want raw milliseconds", got)
	}
}
