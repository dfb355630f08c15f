// Package events merges the two event producers that drive the graphing
// mode, a blocking key reader and a periodic ticker, into one ordered
// channel with a single blocking consumer. The channel is the only
// synchronization primitive in the whole render pipeline: widget state
// never crosses a goroutine boundary.
package events

import (
	"sync"
	"time"

	"github.com/gsys/gsys/internal/errors"
	"github.com/gsys/gsys/internal/term"
)

// DefaultTickRate is the tick interval used when none is configured.
const DefaultTickRate = 250 * time.Millisecond

// Event is one of the two inputs the render loop reacts to.
type Event interface {
	event()
}

// InputEvent carries a single decoded key press. All keys are forwarded;
// deciding whether a key is the exit key is the consumer's job.
type InputEvent struct {
	Key term.Key
}

// TickEvent signals one poll/update/render cycle.
type TickEvent struct {
	At time.Time
}

func (InputEvent) event() {}
func (TickEvent) event()  {}

// Config holds the immutable event-loop settings.
type Config struct {
	ExitKey      term.Key
	TickInterval time.Duration

	// StopOnExitKey makes the input producer terminate itself after
	// forwarding the exit key. The consumer still interprets the key;
	// this only stops the producer from reading further input.
	StopOnExitKey bool
}

// DefaultConfig returns the stock configuration: quit on 'q', tick every
// DefaultTickRate.
func DefaultConfig() Config {
	return Config{
		ExitKey:      term.Key{Type: term.KeyRune, Rune: 'q'},
		TickInterval: DefaultTickRate,
	}
}

// WithTickRate returns a copy of the config with the given interval,
// keeping the default when d is zero or negative.
func (c Config) WithTickRate(d time.Duration) Config {
	if d > 0 {
		c.TickInterval = d
	}
	return c
}

// KeyReader is the blocking source of key presses, satisfied by
// term.KeyDecoder and by test fakes.
type KeyReader interface {
	ReadKey() (term.Key, error)
}

// Bus fans two producer goroutines into one consumer. Events are
// delivered strictly in arrival order with no priority between kinds.
type Bus struct {
	ch        chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewBus starts the input-reader and ticker goroutines and returns the
// consuming end. Passing a nil keys reader starts only the ticker, which
// the non-interactive callers rely on.
func NewBus(cfg Config, keys KeyReader) *Bus {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickRate
	}

	b := &Bus{
		ch:   make(chan Event, 8),
		done: make(chan struct{}),
	}

	var producers sync.WaitGroup

	if keys != nil {
		producers.Add(1)
		go func() {
			defer producers.Done()
			for {
				key, err := keys.ReadKey()
				if err != nil {
					// Input stream ended; the ticker keeps the loop alive.
					return
				}
				if !b.send(InputEvent{Key: key}) {
					return
				}
				if cfg.StopOnExitKey && key == cfg.ExitKey {
					return
				}
			}
		}()
	}

	producers.Add(1)
	go func() {
		defer producers.Done()
		for {
			select {
			case <-time.After(cfg.TickInterval):
			case <-b.done:
				return
			}
			if !b.send(TickEvent{At: time.Now()}) {
				return
			}
		}
	}()

	// Close the delivery channel once every producer is gone so the
	// consumer can tell "no more events, ever" from "none yet".
	go func() {
		producers.Wait()
		close(b.ch)
	}()

	return b
}

// send delivers an event unless the consumer has detached. Reports false
// when the producer should stop.
func (b *Bus) send(ev Event) bool {
	select {
	case b.ch <- ev:
		return true
	case <-b.done:
		return false
	}
}

// Next blocks until an event is available and returns events strictly in
// arrival order. It fails once all producers are gone and the channel has
// drained, which the render loop treats as fatal.
func (b *Bus) Next() (Event, error) {
	ev, ok := <-b.ch
	if !ok {
		return nil, errors.New(errors.ErrRender,
			"Event channel closed: all event producers have exited",
			"")
	}
	return ev, nil
}

// Close detaches the consumer. Producers observe the closed done channel
// on their next send and exit silently; they are never joined, matching
// the abandon-on-exit shutdown model.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
}
