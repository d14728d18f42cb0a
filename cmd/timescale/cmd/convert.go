// File: convert.go
// Title: convert Command
// Description: Shows the calendar fields, Julian day and week start of
//              timestamps or calendar dates
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/timescale/core/log"
	"github.com/msto63/timescale/utils/timex"
)

var convertCmd = &cobra.Command{
	Use:   "convert <timestamp|date>...",
	Short: "Convert between timestamps and calendar fields",
	Example: `  timescale convert 0
  timescale convert --zone Europe/Berlin 2021-03-28T03:00`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	env, err := buildEnv(cmd)
	if err != nil {
		return err
	}
	stamps, err := parseTimestamps(env, args)
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout())
	for i, t := range stamps {
		dt, err := env.Calendar.ToCalendar(t)
		if err != nil {
			env.Logger.ErrorWithErr("cannot convert timestamp", err, mdwlog.Field("input", args[i]))
			return err
		}
		p.title(args[i])
		p.field("timestamp", formatTimestamp(t), false)
		p.field("calendar", dt.String(), true)
		p.field("weekday", dt.Weekday().String(), false)
		if env.Calendar.Zone != nil {
			p.field("zone", env.Calendar.Zone.String(), false)
		}
		if jd, err := timex.JulianDay(dt.Date); err == nil {
			p.field("julian day", strconv.FormatInt(jd, 10), false)
		}
	}
	return nil
}
