// File: main.go
// Title: timescale Command Entry Point
// Description: Starts the timescale command line tool
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package main

import (
	"os"

	"github.com/msto63/timescale/cmd/timescale/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
