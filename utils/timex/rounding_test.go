// File: rounding_test.go
// Title: Interval Rounding Tests
// Description: Tests Floor and Ceil for every interval type, the ordering and
//              idempotence properties, behavior at the calendar bounds and
//              concurrent use.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: StartOf* tests
// - 2026-10-19 v0.2.0: Floor/Ceil tests for all interval types
// - 2026-10-19 v0.2.1: Repeated and skipped local hours

package timex

import (
	"bytes"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	mdwlog "github.com/msto63/timescale/core/log"
)

// 2021-06-15T13:45:30.250Z, a Tuesday
const sampleTimestamp Timestamp = 1623764730250

func TestFloor(t *testing.T) {
	testCases := []struct {
		name     string
		cal      Calendar
		typ      IntervalType
		expected Timestamp
	}{
		{"Millisecond", New(), Millisecond, sampleTimestamp},
		{"Second", New(), Second, 1623764730000},
		{"Minute", New(), Minute, 1623764700000},
		{"Hour", New(), Hour, 1623762000000},
		{"Day", New(), Day, 1623715200000},
		{"Week Monday", New(), Week, 1623628800000},
		{"Week Sunday", New().WithWeek(USWeekConfig()), Week, 1623542400000},
		{"Week Tuesday", New().WithWeek(WeekConfig{FirstDay: time.Tuesday}), Week, 1623715200000},
		{"Month", New(), Month, 1622505600000},
		{"Year", New(), Year, 1609459200000},
		{"Unknown type", New(), IntervalType(42), sampleTimestamp},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cal.Floor(sampleTimestamp, tc.typ); got != tc.expected {
				t.Errorf("Floor(%v, %s) = %v, want %v", sampleTimestamp, tc.typ, got, tc.expected)
			}
		})
	}
}

func TestCeil(t *testing.T) {
	testCases := []struct {
		name     string
		cal      Calendar
		typ      IntervalType
		expected Timestamp
	}{
		{"Millisecond", New(), Millisecond, sampleTimestamp},
		{"Second", New(), Second, 1623764731000},
		{"Minute", New(), Minute, 1623764760000},
		{"Hour", New(), Hour, 1623765600000},
		{"Day", New(), Day, 1623801600000},
		{"Week Monday", New(), Week, 1624233600000},
		{"Week Sunday", New().WithWeek(USWeekConfig()), Week, 1624147200000},
		{"Week Wednesday", New().WithWeek(WeekConfig{FirstDay: time.Wednesday}), Week, 1623801600000},
		{"Month", New(), Month, 1625097600000},
		{"Year", New(), Year, 1640995200000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cal.Ceil(sampleTimestamp, tc.typ); got != tc.expected {
				t.Errorf("Ceil(%v, %s) = %v, want %v", sampleTimestamp, tc.typ, got, tc.expected)
			}
		})
	}
}

func TestRoundingAlignedInput(t *testing.T) {
	cal := New()
	newYear := Timestamp(1609459200000) // 2021-01-01, a Friday

	for _, typ := range []IntervalType{Second, Minute, Hour, Day, Month, Year} {
		if got := cal.Floor(newYear, typ); got != newYear {
			t.Errorf("Floor(new year, %s) = %v, want unchanged", typ, got)
		}
		if got := cal.Ceil(newYear, typ); got != newYear {
			t.Errorf("Ceil(new year, %s) = %v, want unchanged", typ, got)
		}
	}

	// Friday midnight is not a week boundary for Monday weeks
	if got := cal.Ceil(newYear, Week); got != 1609718400000 {
		t.Errorf("Ceil(new year, Week) = %v, want 2021-01-04", got)
	}
	if got := cal.Floor(newYear, Week); got != 1609113600000 {
		t.Errorf("Floor(new year, Week) = %v, want 2020-12-28", got)
	}
}

func TestCeilCarries(t *testing.T) {
	cal := New()
	lastSecond := Timestamp(1640995199000) + 500 // 2021-12-31T23:59:59.500

	for _, typ := range []IntervalType{Second, Minute, Hour, Day, Month, Year} {
		if got := cal.Ceil(lastSecond, typ); got != 1640995200000 {
			t.Errorf("Ceil(23:59:59.500, %s) = %v, want 2022-01-01", typ, got)
		}
	}
}

func TestCeilFractionalMillisecond(t *testing.T) {
	cal := New()
	ts := Timestamp(1609459200000.5)

	if got := cal.Ceil(ts, Second); got != 1609459201000 {
		t.Errorf("Ceil(Second) = %v, want 1609459201000", got)
	}
	if got := cal.Ceil(ts, Year); got != 1640995200000 {
		t.Errorf("Ceil(Year) = %v, want 1640995200000", got)
	}
}

func TestRoundingAroundYearZero(t *testing.T) {
	cal := New()
	ts := Timestamp(-62154086400000) // -0001-06-01

	if got := cal.Floor(ts, Year); got != -62167219200000 {
		t.Errorf("Floor(-0001-06-01, Year) = %v, want -0001-01-01", got)
	}
	if got := cal.Ceil(ts, Year); got != -62135596800000 {
		t.Errorf("Ceil(-0001-06-01, Year) = %v, want 0001-01-01", got)
	}

	dec := Timestamp(-62135683200000 + 1) // -0001-12-31T00:00:00.001
	if got := cal.Ceil(dec, Month); got != -62135596800000 {
		t.Errorf("Ceil(-0001-12-31, Month) = %v, want 0001-01-01", got)
	}
}

func TestRoundingBounds(t *testing.T) {
	cal := New()
	maxDay := noonOf(MaxJulianDay)
	minDay := noonOf(MinJulianDay)

	for _, typ := range IntervalTypes() {
		if got := cal.Ceil(maxDay, typ); got != maxDay {
			t.Errorf("Ceil(max day, %s) = %v, want unchanged", typ, got)
		}
		if got := cal.Floor(minDay, typ); got != minDay {
			t.Errorf("Floor(min day, %s) = %v, want unchanged", typ, got)
		}
	}

	// The year after the maximum year does not exist
	lastYear := noonOf(MaxJulianDay - 100)
	if got := cal.Ceil(lastYear, Year); got != lastYear {
		t.Errorf("Ceil(last year, Year) = %v, want unchanged", got)
	}

	// Floor inside the maximum day still works
	if got := cal.Floor(maxDay, Day); got != Timestamp(float64(MaxJulianDay-JulianDayOfEpoch)*MsecsPerDay) {
		t.Errorf("Floor(max day, Day) = %v", got)
	}
}

func TestRoundingOutOfRangeLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatJSON,
		Output: &buf,
	})
	cal := New().WithLogger(logger)

	ts := noonOf(MaxJulianDay + 10)
	if got := cal.Ceil(ts, Day); got != ts {
		t.Errorf("Ceil(out of range) = %v, want unchanged", got)
	}

	out := buf.String()
	if !strings.Contains(out, "calendar conversion failed") {
		t.Errorf("expected warning, got %q", out)
	}
	if !strings.Contains(out, "timex.Ceil") {
		t.Errorf("expected operation field, got %q", out)
	}
}

func TestRoundingProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	calendars := map[string]Calendar{
		"ISO":   New(),
		"US":    New().WithWeek(USWeekConfig()),
		"Fixed": New().WithZone(FixedZone(9 * msecsPerHour)),
	}

	for name, cal := range calendars {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				var ts Timestamp
				if i%2 == 0 {
					ts = Timestamp(rng.Int63n(1<<46) - 1<<45)
				} else {
					jd := MinJulianDay + 1000 + rng.Int63n(MaxJulianDay-MinJulianDay-2000)
					ts = timestampOf(jd, rng.Int63n(MsecsPerDay))
				}

				for _, typ := range IntervalTypes() {
					floor := cal.Floor(ts, typ)
					ceil := cal.Ceil(ts, typ)

					if floor > ts || ceil < ts {
						t.Fatalf("%s: floor %v <= %v <= ceil %v violated", typ, floor, ts, ceil)
					}
					if again := cal.Floor(floor, typ); again != floor {
						t.Fatalf("%s: Floor not idempotent for %v: %v != %v", typ, ts, again, floor)
					}
					if again := cal.Ceil(ceil, typ); again != ceil {
						t.Fatalf("%s: Ceil not idempotent for %v: %v != %v", typ, ts, again, ceil)
					}

					for _, r := range []Timestamp{floor, ceil} {
						dt, err := cal.ToCalendar(r)
						if err != nil {
							t.Fatalf("%s: result %v not convertible: %v", typ, r, err)
						}
						if dt.Year == 0 {
							t.Fatalf("%s: result %v lies in year 0", typ, r)
						}
					}
				}
			}
		})
	}
}

// utcMillis returns the timestamp of a UTC wall-clock time
func utcMillis(year int, month time.Month, day, hour, minute, sec, msec int) Timestamp {
	return Timestamp(time.Date(year, month, day, hour, minute, sec, msec*int(time.Millisecond), time.UTC).UnixMilli())
}

func TestRoundingRepeatedLocalHour(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("time zone database not available: %v", err)
	}
	cal := New().WithZone(LocationZone(berlin))

	// 2021-10-31 switches from CEST to CET at 01:00 UTC, so the local hour
	// 02:00 to 03:00 is shown twice
	first := utcMillis(2021, time.October, 31, 0, 30, 15, 500)  // 02:30:15.500 CEST
	second := utcMillis(2021, time.October, 31, 1, 30, 15, 500) // 02:30:15.500 CET

	testCases := []struct {
		name  string
		t     Timestamp
		typ   IntervalType
		floor Timestamp
		ceil  Timestamp
	}{
		{"Second first pass", first, Second, utcMillis(2021, time.October, 31, 0, 30, 15, 0), utcMillis(2021, time.October, 31, 0, 30, 16, 0)},
		{"Minute first pass", first, Minute, utcMillis(2021, time.October, 31, 0, 30, 0, 0), utcMillis(2021, time.October, 31, 0, 31, 0, 0)},
		{"Hour first pass", first, Hour, utcMillis(2021, time.October, 31, 0, 0, 0, 0), utcMillis(2021, time.October, 31, 1, 0, 0, 0)},
		{"Day first pass", first, Day, utcMillis(2021, time.October, 30, 22, 0, 0, 0), utcMillis(2021, time.October, 31, 23, 0, 0, 0)},
		{"Second second pass", second, Second, utcMillis(2021, time.October, 31, 1, 30, 15, 0), utcMillis(2021, time.October, 31, 1, 30, 16, 0)},
		{"Minute second pass", second, Minute, utcMillis(2021, time.October, 31, 1, 30, 0, 0), utcMillis(2021, time.October, 31, 1, 31, 0, 0)},
		{"Hour second pass", second, Hour, utcMillis(2021, time.October, 31, 1, 0, 0, 0), utcMillis(2021, time.October, 31, 2, 0, 0, 0)},
		{"Second before switch", utcMillis(2021, time.October, 31, 0, 59, 59, 500), Second, utcMillis(2021, time.October, 31, 0, 59, 59, 0), utcMillis(2021, time.October, 31, 1, 0, 0, 0)},
		{"Minute before switch", utcMillis(2021, time.October, 31, 0, 59, 30, 0), Minute, utcMillis(2021, time.October, 31, 0, 59, 0, 0), utcMillis(2021, time.October, 31, 1, 0, 0, 0)},
		{"Day second pass", second, Day, utcMillis(2021, time.October, 30, 22, 0, 0, 0), utcMillis(2021, time.October, 31, 23, 0, 0, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			floor := cal.Floor(tc.t, tc.typ)
			ceil := cal.Ceil(tc.t, tc.typ)
			if floor != tc.floor {
				t.Errorf("Floor() = %v, want %v", floor, tc.floor)
			}
			if ceil != tc.ceil {
				t.Errorf("Ceil() = %v, want %v", ceil, tc.ceil)
			}
			if floor > tc.t || tc.t > ceil {
				t.Errorf("floor %v <= t %v <= ceil %v does not hold", floor, tc.t, ceil)
			}
			if again := cal.Floor(floor, tc.typ); again != floor {
				t.Errorf("Floor() not idempotent: %v -> %v", floor, again)
			}
			if again := cal.Ceil(ceil, tc.typ); again != ceil {
				t.Errorf("Ceil() not idempotent: %v -> %v", ceil, again)
			}
		})
	}

	// Samples on the hours of the repeated interval are hour aligned
	samples := []Timestamp{
		utcMillis(2021, time.October, 31, 0, 0, 0, 0),
		utcMillis(2021, time.October, 31, 1, 0, 0, 0),
		utcMillis(2021, time.October, 31, 2, 0, 0, 0),
	}
	if got := cal.Classify(samples); got != Hour {
		t.Errorf("Classify() = %v, want %v", got, Hour)
	}
}

func TestRoundingSkippedLocalHour(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("time zone database not available: %v", err)
	}
	cal := New().WithZone(LocationZone(berlin))

	// 2021-03-28 switches from CET to CEST at 01:00 UTC; local 02:00 to
	// 03:00 does not exist
	switchover := utcMillis(2021, time.March, 28, 1, 0, 0, 0)
	before := utcMillis(2021, time.March, 28, 0, 30, 0, 0) // 01:30 CET

	if got := cal.Ceil(before, Hour); got != switchover {
		t.Errorf("Ceil(Hour) = %v, want %v", got, switchover)
	}
	if got := cal.Floor(switchover, Hour); got != switchover {
		t.Errorf("Floor(Hour) = %v, want %v", got, switchover)
	}

	skipped := DateTime{
		Date:      Date{Year: 2021, Month: time.March, Day: 28},
		TimeOfDay: TimeOfDay{Hour: 2, Minute: 30},
	}
	got, err := cal.FromCalendar(skipped)
	if err != nil {
		t.Fatalf("FromCalendar() failed: %v", err)
	}
	if got != switchover {
		t.Errorf("FromCalendar(%v) = %v, want %v", skipped, got, switchover)
	}
}

func TestRoundingConcurrent(t *testing.T) {
	cal := New()
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if got := cal.Floor(sampleTimestamp, Hour); got != 1623762000000 {
					t.Errorf("concurrent Floor = %v", got)
					return
				}
				if got := cal.Ceil(sampleTimestamp, Week); got != 1624233600000 {
					t.Errorf("concurrent Ceil = %v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
