// File: setup.go
// Title: Runtime Setup
// Description: Builds the calendar and logger used by the timescale command
//              from the configuration file, environment overrides and command
//              line flags. Flags win over the environment, the environment
//              wins over the file.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package setup

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/msto63/timescale/core/config"
	mdwerror "github.com/msto63/timescale/core/error"
	"github.com/msto63/timescale/core/i18n"
	mdwlog "github.com/msto63/timescale/core/log"
	"github.com/msto63/timescale/utils/timex"
)

// AppName is used for config discovery and as environment prefix
const AppName = "timescale"

// Options carries the command line overrides. Empty strings and nil
// pointers mean "not given".
type Options struct {
	ConfigFile string
	Locale     string
	FirstDay   string
	ISO        *bool
	Zone       string
	LogLevel   string
	LogFormat  string
	Verbose    bool

	// LogOutput defaults to os.Stderr
	LogOutput io.Writer
}

// Environment is the fully resolved runtime of one command invocation
type Environment struct {
	Config   *config.Config
	Calendar timex.Calendar
	Logger   *mdwlog.Logger
	RunID    string
}

// configRules guards the keys the setup reads
var configRules = config.ValidationRules{
	"week.first_day":     {OneOf: []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sun", "mon", "tue", "wed", "thu", "fri", "sat"}},
	"week.iso_numbering": {Type: "bool"},
	"zone.offset":        {Pattern: `^[+-]\d{2}:?\d{2}$`},
	"log.level":          {OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "off"}},
	"log.format":         {OneOf: []string{"json", "text", "console", "logfmt"}},
}

// Build loads the configuration and resolves calendar and logger
func Build(opts Options) (*Environment, error) {
	cfg, err := LoadConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	return BuildFromConfig(cfg, opts)
}

// BuildFromConfig resolves calendar and logger from an already loaded
// configuration
func BuildFromConfig(cfg *config.Config, opts Options) (*Environment, error) {
	if err := cfg.Validate(configRules).Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger, err := NewLogger(cfg, opts, runID)
	if err != nil {
		return nil, err
	}

	week, err := ResolveWeek(cfg, opts)
	if err != nil {
		return nil, err
	}

	zoneName := firstNonEmpty(opts.Zone, cfg.GetString("zone.name"), cfg.GetString("zone.offset"))
	zone, err := ParseZone(zoneName)
	if err != nil {
		return nil, err
	}

	logger.Debug("runtime resolved", mdwlog.Fields{
		"config":        cfg.FilePath(),
		"first_day":     week.FirstDay.String(),
		"iso_numbering": week.ISONumbering,
		"zone":          zone.String(),
	})

	return &Environment{
		Config:   cfg,
		Calendar: timex.New().WithWeek(week).WithZone(zone).WithLogger(logger),
		Logger:   logger,
		RunID:    runID,
	}, nil
}

// LoadConfig loads path, or discovers a timescale.toml/.yaml in the usual
// locations when path is empty. A missing discovered file is not an error.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Discover(config.DefaultDiscoveryOptions(AppName))
	}
	return config.LoadWithOptions(path, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: strings.ToUpper(AppName),
	})
}

// ResolveWeek derives the week layout. A locale sets both fields; explicit
// first_day and iso_numbering values override it.
func ResolveWeek(cfg *config.Config, opts Options) (timex.WeekConfig, error) {
	week := timex.DefaultWeekConfig()

	if locale := firstNonEmpty(opts.Locale, cfg.GetString("week.locale")); locale != "" {
		w, err := i18n.WeekConfigForLocale(locale)
		if err != nil {
			return week, err
		}
		week = w
	}

	if firstDay := firstNonEmpty(opts.FirstDay, cfg.GetString("week.first_day")); firstDay != "" {
		wd, err := timex.ParseWeekday(firstDay)
		if err != nil {
			return week, err
		}
		week.FirstDay = wd
	}

	switch {
	case opts.ISO != nil:
		week.ISONumbering = *opts.ISO
	case cfg.Has("week.iso_numbering"):
		week.ISONumbering = cfg.GetBool("week.iso_numbering")
	}

	return week, nil
}

// NewLogger creates the command logger. --verbose lowers the level to debug
// unless a level was given explicitly; level "off" discards everything.
func NewLogger(cfg *config.Config, opts Options, runID string) (*mdwlog.Logger, error) {
	levelName := firstNonEmpty(opts.LogLevel, cfg.GetString("log.level"))
	if levelName == "" {
		levelName = "warn"
		if opts.Verbose {
			levelName = "debug"
		}
	}
	if strings.EqualFold(levelName, "off") {
		return mdwlog.Discard(), nil
	}
	level, err := mdwlog.ParseLevel(levelName)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("setup.NewLogger").
			WithDetail("level", levelName)
	}

	formatName := firstNonEmpty(opts.LogFormat, cfg.GetString("log.format"), "text")
	format, err := mdwlog.ParseFormat(formatName)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("setup.NewLogger").
			WithDetail("format", formatName)
	}

	output := opts.LogOutput
	if output == nil {
		output = os.Stderr
	}

	return mdwlog.New().
		WithName(AppName).
		WithLevel(level).
		WithFormat(format).
		WithOutput(output).
		WithCorrelationID(runID), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
