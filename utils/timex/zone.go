// File: zone.go
// Title: Time Zone Offsets
// Description: Defines the Zone abstraction used to shift calendar fields from
//              UTC to local wall-clock time, with UTC, fixed-offset and
//              time.Location backed implementations.
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
	"math"
	"time"
)

// Zone reports the offset of local wall-clock time from UTC
type Zone interface {
	// OffsetAt returns the offset in milliseconds east of UTC in effect at
	// the UTC instant utc
	OffsetAt(utc Timestamp) int64

	// String returns a human readable zone name
	String() string
}

type utcZone struct{}

func (utcZone) OffsetAt(Timestamp) int64 { return 0 }
func (utcZone) String() string           { return "UTC" }

// UTC is the zero-offset zone
var UTC Zone = utcZone{}

type fixedZone struct {
	offset int64
}

// FixedZone returns a zone with a constant offset in milliseconds east of UTC
func FixedZone(offsetMsecs int64) Zone {
	return fixedZone{offset: offsetMsecs}
}

func (z fixedZone) OffsetAt(Timestamp) int64 { return z.offset }

func (z fixedZone) String() string {
	sign := '+'
	off := z.offset
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, off/msecsPerHour, off%msecsPerHour/msecsPerMinute)
}

type locationZone struct {
	loc *time.Location
}

// LocationZone adapts a time.Location, including its daylight saving rules
func LocationZone(loc *time.Location) Zone {
	if loc == nil {
		return UTC
	}
	return locationZone{loc: loc}
}

func (z locationZone) OffsetAt(utc Timestamp) int64 {
	f := math.Floor(float64(utc))
	if math.IsNaN(f) || f > math.MaxInt64/2 || f < math.MinInt64/2 {
		return 0
	}
	_, offset := time.UnixMilli(int64(f)).In(z.loc).Zone()
	return int64(offset) * msecsPerSecond
}

func (z locationZone) String() string {
	return z.loc.String()
}

// zoneDayRange reports whether jd lies in the day range where zone offsets
// are applied; outside of it calendar fields are always UTC
func zoneDayRange(jd int64) bool {
	return jd >= 0 && jd < math.MaxInt32
}
