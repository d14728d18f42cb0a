// File: styles.go
// Title: Output Styles
// Description: Terminal styles and the key/value printer shared by all
//              subcommands
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
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/timescale/utils/timex"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorValue   = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	keyStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorValue)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	labelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// printer writes either styled key/value blocks or bare values
type printer struct {
	w   io.Writer
	raw bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, raw: raw}
}

// title starts a new block; raw output has no titles
func (p *printer) title(s string) {
	if p.raw {
		return
	}
	fmt.Fprintln(p.w, titleStyle.Render(s))
}

// field prints one key/value pair; raw output prints the value only when
// primary is set
func (p *printer) field(key, value string, primary bool) {
	if p.raw {
		if primary {
			fmt.Fprintln(p.w, value)
		}
		return
	}
	fmt.Fprintln(p.w, lipgloss.JoinHorizontal(lipgloss.Top,
		keyStyle.Render(key), valueStyle.Render(value)))
}

// block renders a multi-line value such as an axis label
func (p *printer) block(value string) {
	if p.raw {
		fmt.Fprintln(p.w, value)
		return
	}
	fmt.Fprintln(p.w, labelStyle.Render(value))
}

func formatTimestamp(t timex.Timestamp) string {
	return strconv.FormatFloat(float64(t), 'f', -1, 64)
}

// describe renders t as calendar date time in the zone of c, or the
// conversion error
func describe(c timex.Calendar, t timex.Timestamp) string {
	dt, err := c.ToCalendar(t)
	if err != nil {
		return err.Error()
	}
	return dt.String() + " " + dt.Weekday().String()[:3]
}
