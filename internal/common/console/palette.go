// Package console holds the colors shared by the interactive session and
// the search report.
package console

import "github.com/fatih/color"

// Palette holds the colors used on the console.
type Palette struct {
	Heading *color.Color
	Success *color.Color
	Warning *color.Color
	Failure *color.Color
}

// NewPalette returns the console colors, all disabled when enabled is false.
func NewPalette(enabled bool) Palette {
	p := Palette{
		Heading: color.New(color.FgCyan, color.Bold),
		Success: color.New(color.FgGreen),
		Warning: color.New(color.FgYellow, color.Bold),
		Failure: color.New(color.FgRed),
	}
	if !enabled {
		for _, c := range []*color.Color{p.Heading, p.Success, p.Warning, p.Failure} {
			c.DisableColor()
		}
	}
	return p
}
