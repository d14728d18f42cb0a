// File: locale.go
// Title: Locale Detection and Week Layout
// Description: Parses locale tags and Accept-Language lists and derives the
//              week layout (first day of the week, ISO numbering) of a locale
//              from its region.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2026-10-19 v0.2.0: BCP 47 parsing via x/text, week layout per region

package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	mdwerror "github.com/msto63/timescale/core/error"
	"github.com/msto63/timescale/utils/timex"
)

// Regions whose weeks do not start on Monday (CLDR week data)
var (
	sundayFirstRegions = regionSet(
		"AG", "AS", "BD", "BR", "BS", "BT", "BW", "BZ", "CA", "CN", "CO", "DM",
		"DO", "ET", "GT", "GU", "HK", "HN", "ID", "IL", "IN", "JM", "JP", "KE",
		"KH", "KR", "LA", "MH", "MM", "MO", "MT", "MX", "MZ", "NI", "NP", "PA",
		"PE", "PH", "PK", "PR", "PT", "PY", "SA", "SG", "SV", "TH", "TT", "TW",
		"UM", "US", "VE", "VI", "WS", "YE", "ZA", "ZW",
	)
	saturdayFirstRegions = regionSet(
		"AE", "AF", "BH", "DJ", "DZ", "EG", "IQ", "IR", "JO", "KW", "LY", "OM",
		"QA", "SD", "SY",
	)
	fridayFirstRegions = regionSet("MV")
)

func regionSet(codes ...string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, code := range codes {
		set[code] = true
	}
	return set
}

// ParseLocale parses a BCP 47 tag. POSIX style separators ("de_DE") and
// encodings ("de_DE.UTF-8") are accepted.
func ParseLocale(locale string) (language.Tag, error) {
	s := strings.TrimSpace(locale)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || strings.EqualFold(s, "C") || strings.EqualFold(s, "POSIX") {
		return language.Und, mdwerror.New("locale cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("i18n.ParseLocale").
			WithDetail("locale", locale)
	}

	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, mdwerror.Wrap(err, "invalid locale").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("i18n.ParseLocale").
			WithDetail("locale", locale)
	}
	return tag, nil
}

// Region returns the two letter region of tag. A missing region is inferred
// from the language, so "de" yields "DE" and "en" yields "US".
func Region(tag language.Tag) string {
	region, _ := tag.Region()
	return region.String()
}

// FirstDayOfWeek returns the day weeks start on in tag's region
func FirstDayOfWeek(tag language.Tag) time.Weekday {
	region := Region(tag)
	switch {
	case sundayFirstRegions[region]:
		return time.Sunday
	case saturdayFirstRegions[region]:
		return time.Saturday
	case fridayFirstRegions[region]:
		return time.Friday
	default:
		return time.Monday
	}
}

// WeekConfigFor returns the week layout of tag. ISO numbering is used
// everywhere except in the United States.
func WeekConfigFor(tag language.Tag) timex.WeekConfig {
	return timex.WeekConfig{
		FirstDay:     FirstDayOfWeek(tag),
		ISONumbering: Region(tag) != "US",
	}
}

// WeekConfigForLocale parses locale and returns its week layout
func WeekConfigForLocale(locale string) (timex.WeekConfig, error) {
	tag, err := ParseLocale(locale)
	if err != nil {
		return timex.DefaultWeekConfig(), err
	}
	return WeekConfigFor(tag), nil
}

// DetectLocale returns the preferred tag of an Accept-Language list such as
// "de-CH, de;q=0.9, en;q=0.8". An empty or unparsable list yields language.Und
// and false.
func DetectLocale(acceptLanguage string) (language.Tag, bool) {
	if strings.TrimSpace(acceptLanguage) == "" {
		return language.Und, false
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.Und, false
	}
	return tags[0], true
}

// DetectWeekConfig returns the week layout of the preferred locale of an
// Accept-Language list, falling back to timex.DefaultWeekConfig
func DetectWeekConfig(acceptLanguage string) timex.WeekConfig {
	tag, ok := DetectLocale(acceptLanguage)
	if !ok {
		return timex.DefaultWeekConfig()
	}
	return WeekConfigFor(tag)
}

// DisplayName returns the English name of tag, e.g. "Swiss High German"
func DisplayName(tag language.Tag) string {
	if name := display.Tags(language.English).Name(tag); name != "" {
		return name
	}
	return tag.String()
}

// RegionName returns the English name of tag's region
func RegionName(tag language.Tag) string {
	region, _ := tag.Region()
	if name := display.Regions(language.English).Name(region); name != "" {
		return name
	}
	return region.String()
}
