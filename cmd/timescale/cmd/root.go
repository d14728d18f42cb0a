// File: root.go
// Title: timescale Root Command
// Description: Defines the root command, the persistent flags shared by all
//              subcommands and the runtime resolution from flags and config.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/timescale/core/log"
	"github.com/msto63/timescale/internal/setup"
	"github.com/msto63/timescale/utils/timex"
)

var (
	cfgFile   string
	locale    string
	firstDay  string
	iso       bool
	zone      string
	logLevel  string
	logFormat string
	verbose   bool
	raw       bool
)

var rootCmd = &cobra.Command{
	Use:   "timescale",
	Short: "timescale - calendar interval arithmetic",
	Long: `timescale rounds timestamps to calendar interval boundaries over the
full proleptic Gregorian range of years -2147483648 to 2147483647.

Timestamps are milliseconds since 1970-01-01T00:00:00Z or calendar
dates of the form [-]YYYY-MM-DD[THH:MM[:SS[.mmm]]] in the configured zone.

Commands:
  floor      - round down to the start of an interval
  ceil       - round up to the next interval boundary
  convert    - show the calendar fields of a timestamp
  classify   - find the coarsest interval shared by all timestamps
  weekstart  - first day of the first week of a year
  label      - render an axis label for a timestamp`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: discovered timescale.toml/.yaml)")
	flags.StringVar(&locale, "locale", "", "locale deciding the week rule, e.g. en-US or de_DE.UTF-8")
	flags.StringVar(&firstDay, "first-day", "", "first day of the week (monday ... sunday)")
	flags.BoolVar(&iso, "iso", true, "use ISO-8601 week numbering")
	flags.StringVar(&zone, "zone", "", "time zone: UTC, local, +HH:MM or an IANA name")
	flags.StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (text, json, logfmt)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&raw, "raw", false, "print bare values without styling")
}

// buildEnv resolves config, calendar and logger for cmd. The ISO flag only
// overrides the configuration when it was given explicitly.
func buildEnv(cmd *cobra.Command) (*setup.Environment, error) {
	opts := setup.Options{
		ConfigFile: cfgFile,
		Locale:     locale,
		FirstDay:   firstDay,
		Zone:       zone,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		Verbose:    verbose,
		LogOutput:  cmd.ErrOrStderr(),
	}
	if cmd.Flags().Changed("iso") {
		value := iso
		opts.ISO = &value
	}
	env, err := setup.Build(opts)
	if err != nil {
		return nil, err
	}
	env.Logger = env.Logger.WithField("command", cmd.Name())
	env.Calendar = env.Calendar.WithLogger(env.Logger)
	return env, nil
}

// parseTimestamps parses every argument with the calendar of env. Failures
// are logged with the severity carried by the error.
func parseTimestamps(env *setup.Environment, args []string) ([]timex.Timestamp, error) {
	out := make([]timex.Timestamp, 0, len(args))
	for _, arg := range args {
		t, err := env.Calendar.ParseTimestamp(arg)
		if err != nil {
			env.Logger.LogError(err)
			return nil, err
		}
		env.Logger.Trace("parsed timestamp", mdwlog.Fields{"input": arg, "timestamp": float64(t)})
		out = append(out, t)
	}
	return out, nil
}

func printError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, errorStyle.Render("error: "+err.Error()))
}
