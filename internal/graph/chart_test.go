package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsys/gsys/internal/series"
)

func countLitCells(chart string) int {
	lit := 0
	for _, r := range chart {
		if r > brailleBase && r <= brailleBase+0xFF {
			lit++
		}
	}
	return lit
}

func TestRenderXYEmptyInput(t *testing.T) {
	assert.Equal(t, "", RenderXY(nil, [2]float64{0, 30}, [2]float64{0, 100}, 0, 4))
	assert.Equal(t, "", RenderXY(nil, [2]float64{0, 30}, [2]float64{0, 100}, 10, 0))

	chart := RenderXY(nil, [2]float64{0, 30}, [2]float64{0, 100}, 10, 4)
	lines := strings.Split(chart, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, 0, countLitCells(chart))
}

func TestRenderXYPlotsLine(t *testing.T) {
	ds := []Dataset{{
		Name: "test",
		Points: []series.Sample{
			{Time: 0, Value: 0},
			{Time: 15, Value: 50},
			{Time: 30, Value: 100},
		},
	}}

	chart := RenderXY(ds, [2]float64{0, 30}, [2]float64{0, 100}, 20, 6)
	lines := strings.Split(chart, "\n")
	require.Len(t, lines, 6)

	// a diagonal touches every character column
	assert.Greater(t, countLitCells(chart), 15)
}

func TestRenderXYSkipsOutOfBoundsPoints(t *testing.T) {
	ds := []Dataset{{
		Name: "test",
		Points: []series.Sample{
			{Time: -5, Value: 50},
			{Time: 100, Value: 50},
			{Time: 15, Value: 500},
		},
	}}

	chart := RenderXY(ds, [2]float64{0, 30}, [2]float64{0, 100}, 10, 4)
	assert.Equal(t, 0, countLitCells(chart))
}

func TestRenderXYDegenerateBounds(t *testing.T) {
	ds := []Dataset{{
		Name:   "test",
		Points: []series.Sample{{Time: 5, Value: 5}},
	}}

	// zero y span cannot be projected
	chart := RenderXY(ds, [2]float64{0, 30}, [2]float64{5, 5}, 10, 4)
	assert.Equal(t, 0, countLitCells(chart))
}

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		sample series.Sample
		wantX  int
		wantY  int
		wantOK bool
	}{
		{"origin", series.Sample{Time: 0, Value: 0}, 0, 0, true},
		{"top right", series.Sample{Time: 30, Value: 100}, 19, 15, true},
		{"center", series.Sample{Time: 15, Value: 50}, 9, 7, true},
		{"left of window", series.Sample{Time: -1, Value: 50}, 0, 0, false},
		{"above window", series.Sample{Time: 15, Value: 101}, 0, 0, false},
	}

	xb := [2]float64{0, 30}
	yb := [2]float64{0, 100}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := project(tt.sample, xb, yb, 20, 16)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantX, x)
				assert.Equal(t, tt.wantY, y)
			}
		})
	}
}

func TestDatasetColorsAssignedPerTrace(t *testing.T) {
	a := SeriesColor(0)
	b := SeriesColor(1)
	assert.NotEqual(t, a, b)
	// the palette cycles
	assert.Equal(t, a, SeriesColor(len(seriesPalette)))
}
