package graph

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Chart color palette
const (
	ColorBorder        = lipgloss.Color("#2A2A4A")
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")
	ColorAccent        = lipgloss.Color("#FF2E97")
	ColorError         = lipgloss.Color("#FF0055")
)

// Base styles for the graph view
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	AxisLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	AxisMaxStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Bold(true)

	SummaryNameStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	ErrorOverlayStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Background(ColorError).
				Padding(0, 1)
)

// seriesPalette is the true-color cycle assigned to sub-metrics in
// tracking order.
var seriesPalette = []lipgloss.Color{
	lipgloss.Color("#00FFFF"), // neon cyan
	lipgloss.Color("#39FF14"), // neon green
	lipgloss.Color("#FF2E97"), // neon pink
	lipgloss.Color("#FFAA00"), // electric amber
	lipgloss.Color("#BF40FF"), // neon purple
	lipgloss.Color("#2E9BFF"), // electric blue
	lipgloss.Color("#FFF200"), // bright yellow
	lipgloss.Color("#FF5E2E"), // hot orange
}

// ansiPalette is the fallback cycle for terminals without true-color
// support.
var ansiPalette = []lipgloss.Color{
	lipgloss.Color("6"),  // cyan
	lipgloss.Color("2"),  // green
	lipgloss.Color("5"),  // magenta
	lipgloss.Color("3"),  // yellow
	lipgloss.Color("4"),  // blue
	lipgloss.Color("1"),  // red
	lipgloss.Color("14"), // bright cyan
	lipgloss.Color("10"), // bright green
}

// SeriesColor returns the color for the i-th tracked sub-metric, cycling
// the palette appropriate to the terminal's color support.
func SeriesColor(i int) lipgloss.Color {
	palette := seriesPalette
	if termenv.ColorProfile() == termenv.ANSI || termenv.ColorProfile() == termenv.Ascii {
		palette = ansiPalette
	}
	return palette[i%len(palette)]
}
