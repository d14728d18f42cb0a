// File: weekstart.go
// Title: weekstart Command
// Description: Prints the first day of the first week of calendar years
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

	mdwerror "github.com/msto63/timescale/core/error"
)

var weekstartCmd = &cobra.Command{
	Use:   "weekstart <year>...",
	Short: "Print the first day of the first week of a year",
	Example: `  timescale weekstart 2021
  timescale weekstart --locale en-US 2021 2022`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWeekstart,
}

func init() {
	rootCmd.AddCommand(weekstartCmd)
}

func runWeekstart(cmd *cobra.Command, args []string) error {
	env, err := buildEnv(cmd)
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout())
	week := env.Calendar.Week
	for _, arg := range args {
		year, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return mdwerror.Wrap(err, "invalid year").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("weekstart").
				WithDetail("input", arg)
		}
		start, err := env.Calendar.WeekStart(year)
		if err != nil {
			return err
		}
		p.title(arg)
		p.field("first day", week.FirstDay.String(), false)
		p.field("iso", strconv.FormatBool(week.ISONumbering), false)
		p.field("week start", start.String(), true)
		p.field("weekday", start.Weekday().String(), false)
	}
	return nil
}
