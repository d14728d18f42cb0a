// File: label.go
// Title: label Command
// Description: Renders axis labels for timestamps at a given interval type
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

	"github.com/msto63/timescale/utils/timex"
)

var labelUnit string

var labelCmd = &cobra.Command{
	Use:   "label <timestamp>...",
	Short: "Render axis labels for timestamps",
	Long: `Renders the label an axis would show for each timestamp. Without --unit
the interval type is classified from all given timestamps.`,
	Example: `  timescale label --unit minute 1623764730250
  timescale label 2021-01-01 2021-02-01`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLabel,
}

func init() {
	labelCmd.Flags().StringVarP(&labelUnit, "unit", "u", "", "interval type (default: classified from the timestamps)")
	rootCmd.AddCommand(labelCmd)
}

func runLabel(cmd *cobra.Command, args []string) error {
	env, err := buildEnv(cmd)
	if err != nil {
		return err
	}
	stamps, err := parseTimestamps(env, args)
	if err != nil {
		return err
	}

	var typ timex.IntervalType
	if labelUnit == "" {
		typ = env.Calendar.Classify(stamps)
	} else if typ, err = timex.ParseIntervalType(labelUnit); err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout())
	p.title(typ.String())
	for _, t := range stamps {
		p.block(env.Calendar.Label(t, typ))
	}
	return nil
}
