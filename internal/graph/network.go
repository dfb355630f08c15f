package graph

import (
	"context"

	"github.com/gsys/gsys/internal/errors"
	"github.com/gsys/gsys/internal/probe"
)

// NetworkWidget graphs receive and transmit rates per interface in
// bytes per second, derived from cumulative counter deltas.
type NetworkWidget struct {
	*widgetCore
	rx   map[string]*trace
	tx   map[string]*trace
	prev map[string]probe.InterfaceInfo
	poll func(ctx context.Context) ([]probe.InterfaceInfo, error)
}

func NewNetworkWidget(window float64) *NetworkWidget {
	return &NetworkWidget{
		widgetCore: newWidgetCore("network throughput", window, FormatRate),
		rx:         make(map[string]*trace),
		tx:         make(map[string]*trace),
		prev:       make(map[string]probe.InterfaceInfo),
		poll:       probe.InterfaceCounters,
	}
}

func (w *NetworkWidget) Update(ctx context.Context) error {
	counters, err := w.poll(ctx)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrProbe,
			"reading interface counters failed",
			"No usable network interfaces were found")
	}

	elapsed, delta := w.beginTick()
	for _, c := range counters {
		rx, ok := w.rx[c.Name]
		if !ok {
			rx = w.addTrace(c.Name+" rx", SeriesColor(len(w.traces)))
			w.rx[c.Name] = rx
			w.tx[c.Name] = w.addTrace(c.Name+" tx", SeriesColor(len(w.traces)))
		}
		tx := w.tx[c.Name]

		var rxRate, txRate float64
		if prev, seen := w.prev[c.Name]; seen && delta > 0 {
			rxRate = counterRate(prev.BytesRecv, c.BytesRecv, delta)
			txRate = counterRate(prev.BytesSent, c.BytesSent, delta)
		}
		w.prev[c.Name] = c

		w.appendSample(rx, elapsed, rxRate)
		w.appendSample(tx, elapsed, txRate)
	}
	w.maybeEvict()
	return nil
}

// counterRate converts a cumulative counter delta into a per-second
// rate. A counter that moved backwards has wrapped or reset, so the
// rate for that interval is reported as zero.
func counterRate(prev, cur uint64, seconds float64) float64 {
	if cur < prev || seconds <= 0 {
		return 0
	}
	return float64(cur-prev) / seconds
}
