package main

import (
	"github.com/fatih/color"

	"github.com/rsilva/zxcvbn"
)

// scoreColor returns the fatih/color style for a Score, replacing the
// hand-rolled ANSI escape constants a simpler CLI might reach for.
func scoreColor(s zxcvbn.Score) *color.Color {
	switch s {
	case zxcvbn.VeryWeak:
		return color.New(color.FgRed, color.Bold)
	case zxcvbn.Weak:
		return color.New(color.FgRed)
	case zxcvbn.Medium:
		return color.New(color.FgYellow)
	case zxcvbn.Strong:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}

// scoreMeter builds a visual score bar out of meterSegments segments,
// filling one segment more than the Score's numeric value.
//
//	[████░░░░░░] strong
const meterSegments = 10

func scoreMeter(s zxcvbn.Score, useColor bool) string {
	filled := int(s) + 1
	if filled > meterSegments {
		filled = meterSegments
	}
	empty := meterSegments - filled

	bar := ""
	for i := 0; i < filled; i++ {
		bar += "█"
	}
	for i := 0; i < empty; i++ {
		bar += "░"
	}

	if !useColor {
		return "[" + bar + "] " + s.String()
	}
	c := scoreColor(s)
	c.EnableColor()
	return c.Sprintf("[%s] %s", bar, s.String())
}

func colorize(s string, useColor bool, c *color.Color) string {
	if !useColor {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}
