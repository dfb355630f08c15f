// Package series implements the bounded, time-ordered sample buffer that
// backs every plotted sub-metric. A Series has no implicit size limit;
// scrolling eviction is driven by the owning widget so that all series in
// one chart stay the same length.
package series

// Sample is a single (time, value) data point. Time is seconds elapsed
// since the owning widget started.
type Sample struct {
	Time  float64
	Value float64
}

// Series is an append-only sliding-window buffer of samples, strictly
// ascending by time. It is not safe for concurrent use; each series is
// owned and mutated by a single goroutine.
type Series struct {
	samples []Sample
}

// New creates an empty series.
func New() *Series {
	return &Series{}
}

// Add appends a sample. Appends must be monotonic: a sample whose time is
// not greater than the last appended time is dropped and Add reports false.
func (s *Series) Add(time, value float64) bool {
	if n := len(s.samples); n > 0 && time <= s.samples[n-1].Time {
		return false
	}
	s.samples = append(s.samples, Sample{Time: time, Value: value})
	return true
}

// PopOldest removes and returns the earliest sample.
// Reports false when the series is empty.
func (s *Series) PopOldest() (Sample, bool) {
	if len(s.samples) == 0 {
		return Sample{}, false
	}
	oldest := s.samples[0]
	s.samples = s.samples[1:]
	return oldest, true
}

// First returns the earliest sample without removing it.
func (s *Series) First() (Sample, bool) {
	if len(s.samples) == 0 {
		return Sample{}, false
	}
	return s.samples[0], true
}

// Last returns the most recently appended sample.
func (s *Series) Last() (Sample, bool) {
	if len(s.samples) == 0 {
		return Sample{}, false
	}
	return s.samples[len(s.samples)-1], true
}

// Len returns the number of retained samples.
func (s *Series) Len() int {
	return len(s.samples)
}

// Points returns a copy of the retained samples in time order, for
// rendering. The copy keeps the renderer read-only with respect to the
// live buffer.
func (s *Series) Points() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}
