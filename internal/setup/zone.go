// File: zone.go
// Title: Zone Resolution
// Description: Resolves zone names and fixed UTC offsets to timex zones.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package setup

import (
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/timescale/core/error"
	"github.com/msto63/timescale/utils/timex"
)

// ParseZone accepts "" or "UTC" (UTC), "local" (the system zone), a fixed
// offset such as "+02:00", "-0530" or "UTC+01:00", and IANA names like
// "Europe/Berlin"
func ParseZone(name string) (timex.Zone, error) {
	s := strings.TrimSpace(name)
	switch {
	case s == "" || strings.EqualFold(s, "UTC") || s == "Z":
		return timex.UTC, nil
	case strings.EqualFold(s, "local"):
		return timex.LocationZone(time.Local), nil
	}

	offset := strings.TrimPrefix(strings.TrimPrefix(s, "UTC"), "GMT")
	if strings.HasPrefix(offset, "+") || strings.HasPrefix(offset, "-") {
		msecs, err := parseOffset(offset)
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid UTC offset").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("setup.ParseZone").
				WithDetail("zone", name)
		}
		return timex.FixedZone(msecs), nil
	}

	loc, err := time.LoadLocation(s)
	if err != nil {
		return nil, mdwerror.Wrap(err, "unknown time zone").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("setup.ParseZone").
			WithDetail("zone", name)
	}
	return timex.LocationZone(loc), nil
}

// parseOffset parses ±HH:MM, ±HHMM or ±HH into milliseconds east of UTC
func parseOffset(s string) (int64, error) {
	sign := int64(1)
	if s[0] == '-' {
		sign = -1
	}
	digits := strings.ReplaceAll(s[1:], ":", "")

	var hours, minutes int64
	var err error
	switch len(digits) {
	case 2:
		hours, err = strconv.ParseInt(digits, 10, 64)
	case 4:
		hours, err = strconv.ParseInt(digits[:2], 10, 64)
		if err == nil {
			minutes, err = strconv.ParseInt(digits[2:], 10, 64)
		}
	default:
		return 0, strconv.ErrSyntax
	}
	if err != nil {
		return 0, err
	}
	if hours > 14 || minutes > 59 {
		return 0, strconv.ErrRange
	}

	return sign * (hours*3600000 + minutes*60000), nil
}
