package graph

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gsys/gsys/internal/errors"
	"github.com/gsys/gsys/internal/events"
	"github.com/gsys/gsys/internal/logger"
	"github.com/gsys/gsys/internal/series"
	"github.com/gsys/gsys/internal/term"
)

// Widget is one live chart view. Update polls the underlying metric and
// appends to its series; Render produces a full frame for the given
// terminal size.
type Widget interface {
	Update(ctx context.Context) error
	Render(width, height int) string
}

// trace is one tracked sub-metric inside a widget.
type trace struct {
	name  string
	color lipgloss.Color
	data  *series.Series
	last  float64
}

// widgetCore holds the state shared by every category widget: the
// tracked traces, the axis monitor, and the tick clock. Category
// widgets embed it and implement polling on top.
type widgetCore struct {
	title    string
	monitor  *Monitor
	traces   []*trace
	formatY  func(float64) string
	lastTick time.Time

	// yPad is added to every value when widening the y bounds, keeping
	// headroom between the plotted line and the frame edge.
	yPad float64

	// now is swappable for tests
	now func() time.Time
}

func newWidgetCore(title string, window float64, formatY func(float64) string) *widgetCore {
	return &widgetCore{
		title:   title,
		monitor: NewMonitor(window),
		formatY: formatY,
		now:     time.Now,
	}
}

func (c *widgetCore) addTrace(name string, color lipgloss.Color) *trace {
	t := &trace{name: name, color: color, data: series.New()}
	c.traces = append(c.traces, t)
	return t
}

// beginTick advances the elapsed clock and returns the timestamp to
// stamp this tick's samples with, plus the wall time since the last
// tick for rate calculations.
func (c *widgetCore) beginTick() (elapsed, delta float64) {
	now := c.now()
	if !c.lastTick.IsZero() {
		delta = now.Sub(c.lastTick).Seconds()
		c.monitor.AddTime(delta)
	}
	c.lastTick = now
	return c.monitor.Elapsed(), delta
}

// appendSample records a value on a trace at the given elapsed time and
// widens the y bounds to keep it visible. Both bounds see the padded
// value, so a widget with headroom keeps its floor headroom-high too.
func (c *widgetCore) appendSample(t *trace, elapsed, value float64) {
	t.data.Add(elapsed, value)
	t.last = value
	c.monitor.ExtendYBounds(value + c.yPad)
}

// maybeEvict drops the oldest sample from every trace once the elapsed
// clock has run past the visible window, shifting the x axis by the
// gap the eviction opened. At most one sample per trace is dropped per
// tick so the window drains as gradually as it filled. A trace born
// after scrolling began keeps all its samples until the window start
// overtakes its earliest one; evicting it in lockstep would drain a
// series that is still entirely inside the window.
func (c *widgetCore) maybeEvict() {
	if !c.monitor.MaybeScroll() || len(c.traces) == 0 {
		return
	}
	removed, ok := c.traces[0].data.PopOldest()
	if !ok {
		return
	}
	if first, ok := c.traces[0].data.First(); ok {
		c.monitor.ShiftXAxis(first.Time - removed.Time)
	}
	windowStart := c.monitor.X()[0]
	for _, t := range c.traces[1:] {
		if first, ok := t.data.First(); ok && first.Time >= windowStart {
			continue
		}
		t.data.PopOldest()
	}
}

func (c *widgetCore) datasets() []Dataset {
	ds := make([]Dataset, len(c.traces))
	for i, t := range c.traces {
		ds[i] = Dataset{Name: t.name, Color: t.color, Points: t.data.Points()}
	}
	return ds
}

// Render composes the full frame: title, quartile-labelled chart, x
// axis, and a per-trace summary strip at the bottom.
func (c *widgetCore) Render(width, height int) string {
	if width < 20 || height < 8 {
		return TitleStyle.Render(c.title)
	}

	yLabels := c.yAxisLabels()
	labelWidth := 0
	for _, l := range yLabels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	summaryLines := (len(c.traces) + 1) / 2
	if summaryLines < 1 {
		summaryLines = 1
	}
	chartHeight := height - 2 - summaryLines // title + x axis
	if chartHeight < 4 {
		chartHeight = 4
	}
	chartWidth := width - labelWidth - 1
	if chartWidth < 10 {
		chartWidth = 10
	}

	chart := RenderXY(c.datasets(), c.monitor.X(), c.monitor.Y(), chartWidth, chartHeight)
	chartLines := strings.Split(chart, "\n")

	var b strings.Builder
	b.WriteString(TitleStyle.Render(c.title))
	b.WriteString("\n")

	for i, line := range chartLines {
		label := quartileLabel(yLabels, i, chartHeight)
		b.WriteString(AxisLabelStyle.Render(fmt.Sprintf("%*s", labelWidth, label)))
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(c.xAxisLine(labelWidth+1, chartWidth))
	b.WriteString("\n")
	b.WriteString(c.summary(width))
	return b.String()
}

// yAxisLabels returns the quartile labels from max down to min.
func (c *widgetCore) yAxisLabels() []string {
	lo, hi := c.monitor.YMin(), c.monitor.YMax()
	if lo > hi {
		// no samples yet
		lo, hi = 0, 0
	}
	span := hi - lo
	labels := make([]string, 5)
	for i := 0; i < 5; i++ {
		labels[i] = c.formatY(hi - span*float64(i)/4)
	}
	return labels
}

// quartileLabel picks the label to print beside chart row `row`, if the
// row sits on a quartile boundary.
func quartileLabel(labels []string, row, chartHeight int) string {
	if chartHeight < 2 {
		return ""
	}
	for i, l := range labels {
		if row == i*(chartHeight-1)/4 {
			return l
		}
	}
	return ""
}

func (c *widgetCore) xAxisLine(indent, chartWidth int) string {
	x := c.monitor.X()
	left := FormatSeconds(x[0])
	right := FormatSeconds(x[1])
	gap := chartWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", indent) +
		AxisLabelStyle.Render(left+strings.Repeat(" ", gap)+right)
}

// summary renders the bottom strip with the latest value per trace.
func (c *widgetCore) summary(width int) string {
	var parts []string
	for _, t := range c.traces {
		v := SummaryNameStyle.Render(t.name+" ") +
			lipgloss.NewStyle().Foreground(t.color).Render(c.formatY(t.last))
		parts = append(parts, v)
	}
	line := strings.Join(parts, "  ")
	if lipgloss.Width(line) > width {
		// two columns per line when the strip overflows
		var lines []string
		for i := 0; i < len(parts); i += 2 {
			end := i + 2
			if end > len(parts) {
				end = len(parts)
			}
			lines = append(lines, strings.Join(parts[i:end], "  "))
		}
		line = strings.Join(lines, "\n")
	}
	return line
}

// Run drives a widget against the real terminal: raw mode with the
// alternate screen, a tick/input event bus, and the draw loop. It
// returns when the exit key is pressed or the bus fails.
func Run(ctx context.Context, w Widget, cfg events.Config, log logger.Logger) error {
	screen, err := term.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer screen.Close()

	bus := events.NewBus(cfg, term.NewKeyDecoder(os.Stdin))
	defer bus.Close()

	// first frame carries data instead of an empty chart
	if err := w.Update(ctx); err != nil {
		log.Warn("initial poll failed: %v", err)
	}

	draw := func(frame string) { screen.Draw(frame) }
	return runLoop(ctx, w, bus, cfg.ExitKey, screen.Size, draw, log)
}

// runLoop is the event loop proper, separated from terminal acquisition
// so tests can drive it with fakes. A poll failure is shown as an
// overlay on the next frame and cleared by the next successful poll;
// only a dead event bus terminates the loop with an error.
func runLoop(
	ctx context.Context,
	w Widget,
	bus *events.Bus,
	exitKey term.Key,
	size func() (int, int),
	draw func(string),
	log logger.Logger,
) error {
	var overlay string
	for {
		width, height := size()
		frame := w.Render(width, height)
		if overlay != "" {
			frame = ErrorOverlayStyle.Render(overlay) + "\n" + frame
		}
		draw(frame)

		ev, err := bus.Next()
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrRender,
				"event stream terminated",
				"The input or timer source stopped unexpectedly; check the terminal")
		}

		switch e := ev.(type) {
		case events.InputEvent:
			if e.Key == exitKey {
				log.Debug("exit key pressed")
				return nil
			}
		case events.TickEvent:
			if err := w.Update(ctx); err != nil {
				overlay = err.Error()
				log.Warn("poll failed: %v", err)
			} else {
				overlay = ""
			}
		}
	}
}
