package graph

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gsys/gsys/internal/series"
)

// Braille character rendering for high-resolution terminal charts.
//
// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '⠀'

// brailleDots maps row/column to the bit offset for braille pattern
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right)
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// Dataset is one plotted line: a named series of time/value samples
// drawn in a single color.
type Dataset struct {
	Name   string
	Color  lipgloss.Color
	Points []series.Sample
}

// RenderXY plots the datasets as braille lines inside a width x height
// character cell area. Samples are mapped against the explicit axis
// bounds rather than the data extent, so the view scrolls and scales
// exactly as the bounds move. Points outside the bounds are skipped.
func RenderXY(datasets []Dataset, xb, yb [2]float64, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	dotsWide := width * 2
	dotsHigh := height * 4

	grid := make([][]rune, height)
	colors := make([][]int, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		colors[i] = make([]int, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
			colors[i][j] = -1
		}
	}

	plot := func(dsIdx, dotX, dotY int) {
		if dotX < 0 || dotX >= dotsWide || dotY < 0 || dotY >= dotsHigh {
			return
		}
		charCol := dotX / 2
		subCol := dotX % 2
		// dotY counts up from the bottom edge
		row := height - 1 - dotY/4
		subRow := 3 - dotY%4
		grid[row][charCol] |= rune(1 << brailleDots[subRow][subCol])
		colors[row][charCol] = dsIdx
	}

	for dsIdx, ds := range datasets {
		var prevX, prevY int
		havePrev := false
		for _, p := range ds.Points {
			dotX, dotY, ok := project(p, xb, yb, dotsWide, dotsHigh)
			if !ok {
				havePrev = false
				continue
			}
			if havePrev {
				drawSegment(prevX, prevY, dotX, dotY, func(x, y int) {
					plot(dsIdx, x, y)
				})
			} else {
				plot(dsIdx, dotX, dotY)
			}
			prevX, prevY = dotX, dotY
			havePrev = true
		}
	}

	styles := make([]lipgloss.Style, len(datasets))
	for i, ds := range datasets {
		styles[i] = lipgloss.NewStyle().Foreground(ds.Color)
	}

	var lines []string
	for r, row := range grid {
		var b strings.Builder
		for c, char := range row {
			if idx := colors[r][c]; idx >= 0 {
				b.WriteString(styles[idx].Render(string(char)))
			} else {
				b.WriteRune(char)
			}
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}

// project maps a sample onto dot coordinates within the given bounds.
// The y dot coordinate counts up from the bottom edge.
func project(p series.Sample, xb, yb [2]float64, dotsWide, dotsHigh int) (int, int, bool) {
	xSpan := xb[1] - xb[0]
	ySpan := yb[1] - yb[0]
	if xSpan <= 0 || ySpan <= 0 {
		return 0, 0, false
	}
	fx := (p.Time - xb[0]) / xSpan
	fy := (p.Value - yb[0]) / ySpan
	if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
		return 0, 0, false
	}
	dotX := int(fx * float64(dotsWide-1))
	dotY := int(fy * float64(dotsHigh-1))
	return dotX, dotY, true
}

// drawSegment rasterizes the dot-grid line from (x0,y0) to (x1,y1)
// using Bresenham's algorithm.
func drawSegment(x0, y0, x1, y1 int, put func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		put(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
