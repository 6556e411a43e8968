package stopwatch

import (
	"github.com/noodlebox/stopwatch/internal/nanos"
	"github.com/noodlebox/stopwatch/realtime"
)

// Start returns a new stopwatch on the real monotonic clock, already running.
func Start() Stopwatch[realtime.Instant] {
	return NewStarted[realtime.Instant](realtime.NewClock())
}

// Stopwatch accumulates the time spent between calls to Start and Stop. The
// zero value has no clock and is not usable; create one with New, NewStarted
// or the package-level Start.
type Stopwatch[I Instant[I]] struct {
	clock   Clock[I]
	elapsed Duration

	// Start of the current segment, valid only while running.
	since   I
	running bool
}

// New returns a stopped stopwatch with nothing elapsed. Passing a clock
// other than [realtime.Clock] selects an alternate Instant implementation.
func New[I Instant[I]](clock Clock[I]) Stopwatch[I] {
	return Stopwatch[I]{clock: clock}
}

// NewStarted returns a stopwatch with nothing elapsed that is already
// running.
func NewStarted[I Instant[I]](clock Clock[I]) Stopwatch[I] {
	return Stopwatch[I]{
		clock:   clock,
		since:   clock.Now(),
		running: true,
	}
}

// Start starts the stopwatch.
//
// Starting a stopwatch that is already running resets the current segment:
// the time since the previous Start is dropped, not accumulated.
func (s *Stopwatch[I]) Start() {
	s.since = s.clock.Now()
	s.running = true
}

// Stop stops the stopwatch, adding the current segment to the elapsed time.
//
// Stopping a stopwatch that is not running has no effect.
func (s *Stopwatch[I]) Stop() {
	if !s.running {
		return
	}
	s.elapsed = accumulate(s.elapsed, s.clock.Now().SaturatingDurationSince(s.since))
	s.running = false
	var zero I
	s.since = zero
}

// Finish stops the stopwatch and returns the total time elapsed. The
// stopwatch should not be used afterwards.
func (s *Stopwatch[I]) Finish() Duration {
	s.Stop()
	return s.elapsed
}

// Running reports whether a segment is in progress.
func (s *Stopwatch[I]) Running() bool {
	return s.running
}

// Elapsed returns the time accumulated so far, including the segment in
// progress, without stopping the stopwatch.
func (s *Stopwatch[I]) Elapsed() Duration {
	if !s.running {
		return s.elapsed
	}
	return accumulate(s.elapsed, s.clock.Now().SaturatingDurationSince(s.since))
}

// accumulate adds two non-negative durations, pinning at the largest
// representable Duration.
func accumulate(total, d Duration) Duration {
	sum, ok := nanos.Add(int64(total), int64(d))
	if !ok {
		return nanos.Max
	}
	return Duration(sum)
}
