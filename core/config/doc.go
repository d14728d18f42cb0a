// Package config provides configuration loading for timescale.
//
// Package: config
// Title: Configuration Management
// Description: Loads TOML or YAML configuration files, discovers them in the
//              usual locations and exposes their values through dot-notation
//              getters. Environment variables override file values when an
//              environment prefix is set.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Trimmed to loading, discovery and validation
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("timescale.toml", config.LoadOptions{
//		Format:    config.FormatAuto,
//		EnvPrefix: "TIMESCALE",
//	})
//	if err != nil {
//		return err
//	}
//
//	firstDay := cfg.GetString("week.first_day", "monday")
//
// With the prefix above TIMESCALE_WEEK_FIRST_DAY overrides week.first_day.
package config
