package graph

import (
	"context"

	"github.com/gsys/gsys/internal/errors"
	"github.com/gsys/gsys/internal/probe"
)

// MemoryWidget graphs used, cached, and free physical memory in bytes.
type MemoryWidget struct {
	*widgetCore
	used   *trace
	cached *trace
	free   *trace
	poll   func(ctx context.Context) (probe.MemoryReading, error)
}

func NewMemoryWidget(window float64) *MemoryWidget {
	core := newWidgetCore("memory", window, FormatBytes)
	return &MemoryWidget{
		widgetCore: core,
		used:       core.addTrace("used", SeriesColor(0)),
		cached:     core.addTrace("cached", SeriesColor(1)),
		free:       core.addTrace("free", SeriesColor(2)),
		poll:       probe.MemorySample,
	}
}

func (w *MemoryWidget) Update(ctx context.Context) error {
	r, err := w.poll(ctx)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrProbe,
			"reading memory usage failed",
			"Check that /proc is mounted and readable")
	}

	elapsed, _ := w.beginTick()
	w.appendSample(w.used, elapsed, float64(r.Used))
	w.appendSample(w.cached, elapsed, float64(r.Cached))
	w.appendSample(w.free, elapsed, float64(r.Free))
	w.maybeEvict()
	return nil
}
