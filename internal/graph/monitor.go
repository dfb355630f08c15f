package graph

import "math"

// Monitor owns the axis bounds and elapsed-time clock for one graph
// widget: a fixed-width scrolling x-window and a y-range that only ever
// widens, so the chart does not jitter as readings fluctuate.
type Monitor struct {
	xWidth  float64
	xOffset float64
	yMin    float64
	yMax    float64
	elapsed float64
}

// NewMonitor creates a monitor with an x-window of the given width in
// seconds, starting at zero. The y-range starts inverted (min above max)
// so the first observed value initializes both bounds.
func NewMonitor(xWidth float64) *Monitor {
	return &Monitor{
		xWidth: xWidth,
		yMin:   math.MaxFloat64,
		yMax:   0,
	}
}

// AddTime accumulates the measured wall-clock delta since the previous
// tick. Ticks are variable-rate; the widget measures real elapsed time
// rather than assuming a fixed step.
func (m *Monitor) AddTime(delta float64) {
	m.elapsed += delta
}

// Elapsed returns the accumulated widget time in seconds. It is the
// x-coordinate of the next appended sample.
func (m *Monitor) Elapsed() float64 {
	return m.elapsed
}

// ExtendYBounds widens the y-range to include v. Bounds never narrow.
func (m *Monitor) ExtendYBounds(v float64) {
	if v < m.yMin {
		m.yMin = v
	}
	if v > m.yMax {
		m.yMax = v
	}
}

// MaybeScroll reports whether elapsed time has passed the right edge of
// the visible window. The caller performs the coordinated eviction and
// then calls ShiftXAxis with the measured gap.
func (m *Monitor) MaybeScroll() bool {
	return m.elapsed > m.xOffset+m.xWidth
}

// ShiftXAxis advances the window by delta, the gap between the evicted
// sample's time and the new earliest sample's time. The window width is
// untouched, keeping the visible span constant across scrolls.
func (m *Monitor) ShiftXAxis(delta float64) {
	m.xOffset += delta
}

// X returns the visible x-axis bounds.
func (m *Monitor) X() [2]float64 {
	return [2]float64{m.xOffset, m.xOffset + m.xWidth}
}

// Y returns the y-axis bounds. Before any value has been observed the
// range is the inverted sentinel; callers render an empty chart then.
func (m *Monitor) Y() [2]float64 {
	return [2]float64{m.yMin, m.yMax}
}

// YMin returns the lower y bound.
func (m *Monitor) YMin() float64 { return m.yMin }

// YMax returns the upper y bound.
func (m *Monitor) YMax() float64 { return m.yMax }
