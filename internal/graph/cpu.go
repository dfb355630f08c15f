package graph

import (
	"context"
	"fmt"

	"github.com/gsys/gsys/internal/errors"
	"github.com/gsys/gsys/internal/probe"
)

// freqHeadroom keeps the top of the frame clear above the highest
// observed core frequency, in Hz.
const freqHeadroom = 100_000

// CPUWidget graphs the clock frequency of every logical core.
type CPUWidget struct {
	*widgetCore
	poll func(ctx context.Context) ([]probe.CoreFreq, error)
}

func NewCPUWidget(window float64) *CPUWidget {
	core := newWidgetCore("cpu core frequency", window, FormatHz)
	core.yPad = freqHeadroom
	return &CPUWidget{
		widgetCore: core,
		poll:       probe.CoreFrequencies,
	}
}

func (w *CPUWidget) Update(ctx context.Context) error {
	freqs, err := w.poll(ctx)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrProbe,
			"reading core frequencies failed",
			"Frequency data may be unavailable on this platform")
	}

	elapsed, _ := w.beginTick()
	for i, f := range freqs {
		if i >= len(w.traces) {
			w.addTrace(fmt.Sprintf("core%d", f.ID), SeriesColor(i))
		}
		w.appendSample(w.traces[i], elapsed, f.Hz)
	}
	w.maybeEvict()
	return nil
}
