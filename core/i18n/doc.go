// Package i18n provides locale handling for timescale.
//
// Package: i18n
// Title: Locale Detection and Week Layout
// Description: Parses BCP 47 locale tags and HTTP Accept-Language lists with
//              golang.org/x/text/language and maps locales to their week
//              layout. The result is an explicit timex.WeekConfig; nothing in
//              this package reads or stores a process-wide current locale.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with translation manager
// - 2026-10-19 v0.2.0: Reduced to locale parsing and week layout
//
// Usage:
//
//	week, err := i18n.WeekConfigForLocale("de_DE.UTF-8")
//	cal := timex.New().WithWeek(week)
//
//	week = i18n.DetectWeekConfig(r.Header.Get("Accept-Language"))
package i18n
