// File: round.go
// Title: floor and ceil Commands
// Description: Rounds timestamps down or up to calendar interval boundaries
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/timescale/core/log"
	"github.com/msto63/timescale/utils/timex"
)

var (
	floorUnit string
	ceilUnit  string
)

var floorCmd = &cobra.Command{
	Use:   "floor <timestamp>...",
	Short: "Round timestamps down to the start of an interval",
	Example: `  timescale floor --unit week 1623764730250
  timescale floor --unit month 2021-06-15T13:45`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRound(cmd, args, floorUnit, timex.Calendar.Floor)
	},
}

var ceilCmd = &cobra.Command{
	Use:   "ceil <timestamp>...",
	Short: "Round timestamps up to the next interval boundary",
	Example: `  timescale ceil --unit day 1623764730250
  timescale ceil --unit year -- -44-03-15`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRound(cmd, args, ceilUnit, timex.Calendar.Ceil)
	},
}

func init() {
	floorCmd.Flags().StringVarP(&floorUnit, "unit", "u", "day", "interval type (ms, second, minute, hour, day, week, month, year)")
	ceilCmd.Flags().StringVarP(&ceilUnit, "unit", "u", "day", "interval type (ms, second, minute, hour, day, week, month, year)")
	rootCmd.AddCommand(floorCmd, ceilCmd)
}

func runRound(cmd *cobra.Command, args []string, unit string,
	round func(timex.Calendar, timex.Timestamp, timex.IntervalType) timex.Timestamp) error {
	typ, err := timex.ParseIntervalType(unit)
	if err != nil {
		return err
	}
	env, err := buildEnv(cmd)
	if err != nil {
		return err
	}
	stamps, err := parseTimestamps(env, args)
	if err != nil {
		return err
	}

	logger := env.Logger.WithFields(mdwlog.Fields{
		"interval": typ.String(),
		"zone":     env.Calendar.Zone.String(),
	})
	p := newPrinter(cmd.OutOrStdout())
	for i, t := range stamps {
		result := round(env.Calendar, t, typ)
		if logger.IsLevelEnabled(mdwlog.LevelDebug) {
			logger.Debug("rounded timestamp", mdwlog.Fields{
				"input":    float64(t),
				"result":   float64(result),
				"calendar": describe(env.Calendar, result),
			})
		}
		p.title(args[i])
		p.field("interval", typ.String(), false)
		p.field("timestamp", formatTimestamp(result), true)
		p.field("calendar", describe(env.Calendar, result), false)
	}
	return nil
}
