// File: classify.go
// Title: classify Command
// Description: Reports the coarsest interval type on whose boundaries all
//              given timestamps lie, together with the matching label pattern
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

	"github.com/msto63/timescale/utils/timex"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <timestamp>...",
	Short: "Find the coarsest interval shared by all timestamps",
	Example: `  timescale classify 2021-01-01 2021-02-01 2021-03-01
  timescale classify 1623715200000 1623801600000`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	env, err := buildEnv(cmd)
	if err != nil {
		return err
	}
	stamps, err := parseTimestamps(env, args)
	if err != nil {
		return err
	}

	typ := env.Calendar.Classify(stamps)

	p := newPrinter(cmd.OutOrStdout())
	p.title("classification")
	p.field("samples", strconv.Itoa(len(stamps)), false)
	p.field("interval", typ.String(), true)
	p.field("pattern", string(timex.FormatFor(typ)), false)
	return nil
}
