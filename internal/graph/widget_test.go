package graph

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/gsys/gsys/internal/errors"
	"github.com/gsys/gsys/internal/events"
	"github.com/gsys/gsys/internal/logger"
	"github.com/gsys/gsys/internal/probe"
	"github.com/gsys/gsys/internal/term"
)

// steppingClock returns a now func that advances one second per call.
func steppingClock() func() time.Time {
	t := time.Unix(1000, 0)
	return func() time.Time {
		cur := t
		t = t.Add(time.Second)
		return cur
	}
}

func newTestMemoryWidget(window float64) *MemoryWidget {
	w := NewMemoryWidget(window)
	w.now = steppingClock()
	w.poll = func(ctx context.Context) (probe.MemoryReading, error) {
		return probe.MemoryReading{Used: 1 << 30, Cached: 1 << 29, Free: 1 << 28}, nil
	}
	return w
}

func TestWidgetEvictionKeepsTracesInLockstep(t *testing.T) {
	w := newTestMemoryWidget(30)
	ctx := context.Background()

	for i := 0; i < 36; i++ {
		require.NoError(t, w.Update(ctx))
	}

	// ticks land at elapsed 0..35; everything older than the 30 second
	// window has been dropped one sample per tick
	for _, tr := range w.traces {
		assert.Equal(t, 31, tr.data.Len(), "trace %s", tr.name)
		first, ok := tr.data.First()
		require.True(t, ok)
		assert.InDelta(t, 5.0, first.Time, 1e-9, "trace %s", tr.name)
	}

	x := w.monitor.X()
	assert.InDelta(t, 30.0, x[1]-x[0], 1e-9)
	assert.InDelta(t, 5.0, x[0], 1e-9)
}

func TestWidgetPollFailureLeavesSeriesIntact(t *testing.T) {
	w := newTestMemoryWidget(30)
	ctx := context.Background()

	require.NoError(t, w.Update(ctx))
	require.NoError(t, w.Update(ctx))

	w.poll = func(ctx context.Context) (probe.MemoryReading, error) {
		return probe.MemoryReading{}, fmt.Errorf("sampler offline")
	}

	err := w.Update(ctx)
	require.Error(t, err)
	assert.True(t, gerrors.IsCode(err, gerrors.ErrProbe))
	assert.Contains(t, err.Error(), "memory")

	for _, tr := range w.traces {
		assert.Equal(t, 2, tr.data.Len())
	}
	assert.InDelta(t, 1.0, w.monitor.Elapsed(), 1e-9)
}

func TestWidgetFrozenClockDropsDuplicateTimestamps(t *testing.T) {
	w := newTestMemoryWidget(30)
	fixed := time.Unix(1000, 0)
	w.now = func() time.Time { return fixed }
	ctx := context.Background()

	require.NoError(t, w.Update(ctx))
	require.NoError(t, w.Update(ctx))

	for _, tr := range w.traces {
		assert.Equal(t, 1, tr.data.Len())
	}
}

func TestWidgetRenderIncludesTitleAndSummary(t *testing.T) {
	w := newTestMemoryWidget(30)
	require.NoError(t, w.Update(context.Background()))

	frame := w.Render(80, 24)
	assert.Contains(t, frame, "memory")
	assert.Contains(t, frame, "used")
	assert.Contains(t, frame, "1.0 GiB")
}

func TestWidgetRenderTinyTerminalFallsBackToTitle(t *testing.T) {
	w := newTestMemoryWidget(30)
	frame := w.Render(10, 3)
	assert.Contains(t, frame, "memory")
	assert.NotContains(t, frame, "\n")
}

// scriptedKeys feeds keys from a channel; a closed channel reads as EOF.
type scriptedKeys struct {
	keys chan term.Key
}

func (s *scriptedKeys) ReadKey() (term.Key, error) {
	k, ok := <-s.keys
	if !ok {
		return term.Key{}, io.EOF
	}
	return k, nil
}

type flakyWidget struct {
	updates int
	failOn  int
}

func (f *flakyWidget) Update(ctx context.Context) error {
	f.updates++
	if f.updates == f.failOn {
		return fmt.Errorf("sampler offline")
	}
	return nil
}

func (f *flakyWidget) Render(width, height int) string { return "frame" }

func TestRunLoopExitKeyTerminates(t *testing.T) {
	keys := &scriptedKeys{keys: make(chan term.Key, 1)}
	cfg := events.DefaultConfig().WithTickRate(time.Hour)
	bus := events.NewBus(cfg, keys)
	defer bus.Close()

	keys.keys <- term.Key{Type: term.KeyRune, Rune: 'q'}

	draws := 0
	draw := func(string) { draws++ }
	size := func() (int, int) { return 80, 24 }

	err := runLoop(context.Background(), &flakyWidget{}, bus, term.Key{Type: term.KeyRune, Rune: 'q'}, size, draw, logger.Noop())
	assert.NoError(t, err)
	assert.Equal(t, 1, draws)
}

func TestRunLoopOverlaysPollErrorThenClears(t *testing.T) {
	keys := &scriptedKeys{keys: make(chan term.Key, 1)}
	cfg := events.DefaultConfig().WithTickRate(10 * time.Millisecond)
	bus := events.NewBus(cfg, keys)
	defer bus.Close()

	w := &flakyWidget{failOn: 1}
	var frames []string
	draw := func(f string) {
		frames = append(frames, f)
		if len(frames) == 3 {
			keys.keys <- term.Key{Type: term.KeyRune, Rune: 'q'}
		}
	}
	size := func() (int, int) { return 80, 24 }

	err := runLoop(context.Background(), w, bus, term.Key{Type: term.KeyRune, Rune: 'q'}, size, draw, logger.Noop())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(frames), 3)

	assert.NotContains(t, frames[0], "sampler offline")
	assert.Contains(t, frames[1], "sampler offline")
	assert.NotContains(t, frames[2], "sampler offline")
}

func TestRunLoopDeadBusIsFatal(t *testing.T) {
	cfg := events.DefaultConfig().WithTickRate(time.Hour)
	bus := events.NewBus(cfg, nil)
	bus.Close()

	draw := func(string) {}
	size := func() (int, int) { return 80, 24 }

	err := runLoop(context.Background(), &flakyWidget{}, bus, term.Key{Type: term.KeyRune, Rune: 'q'}, size, draw, logger.Noop())
	require.Error(t, err)
	assert.True(t, gerrors.IsCode(err, gerrors.ErrRender))
}
