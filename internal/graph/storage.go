package graph

import (
	"context"

	"github.com/gsys/gsys/internal/errors"
	"github.com/gsys/gsys/internal/probe"
)

// StorageWidget graphs read and write rates per block device in bytes
// per second, derived from cumulative counter deltas.
type StorageWidget struct {
	*widgetCore
	reads  map[string]*trace
	writes map[string]*trace
	prev   map[string]probe.DeviceIO
	poll   func(ctx context.Context) ([]probe.DeviceIO, error)
}

func NewStorageWidget(window float64) *StorageWidget {
	return &StorageWidget{
		widgetCore: newWidgetCore("storage throughput", window, FormatRate),
		reads:      make(map[string]*trace),
		writes:     make(map[string]*trace),
		prev:       make(map[string]probe.DeviceIO),
		poll:       probe.DeviceCounters,
	}
}

func (w *StorageWidget) Update(ctx context.Context) error {
	devices, err := w.poll(ctx)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrProbe,
			"reading device IO counters failed",
			"Block device statistics may require elevated privileges")
	}

	elapsed, delta := w.beginTick()
	for _, d := range devices {
		rd, ok := w.reads[d.Name]
		if !ok {
			rd = w.addTrace(d.Name+" read", SeriesColor(len(w.traces)))
			w.reads[d.Name] = rd
			w.writes[d.Name] = w.addTrace(d.Name+" write", SeriesColor(len(w.traces)))
		}
		wr := w.writes[d.Name]

		var readRate, writeRate float64
		if prev, seen := w.prev[d.Name]; seen && delta > 0 {
			readRate = counterRate(prev.ReadBytes, d.ReadBytes, delta)
			writeRate = counterRate(prev.WriteBytes, d.WriteBytes, delta)
		}
		w.prev[d.Name] = d

		w.appendSample(rd, elapsed, readRate)
		w.appendSample(wr, elapsed, writeRate)
	}
	w.maybeEvict()
	return nil
}
