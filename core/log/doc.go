// Package log provides structured logging for timescale.
//
// Package: log
// Title: Structured Logging Framework
// Description: Implements a small structured logger with levels, persistent context
//              fields, a correlation id and interchangeable JSON, text, console and
//              logfmt formatters. The engine logs recoverable range overflows through
//              it; the CLI configures it from the config file and flags.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Deterministic field order, dropped async writer and timers
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatText).
//		WithField("component", "timex")
//
//	logger.Warn("julian day out of range", log.Fields{"julian_day": jd})
//	logger.LogError(err)
package log
