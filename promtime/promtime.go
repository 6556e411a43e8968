// Package promtime feeds stopwatch results into Prometheus observers. A
// [Timer] behaves like [prometheus.Timer] except that it can be paused, so
// time spent waiting on something that should not count can be left out.
package promtime

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/noodlebox/stopwatch"
	"github.com/noodlebox/stopwatch/realtime"
)

// Timer times a single event and reports it, in seconds, to an Observer.
// Like the Stopwatch it wraps, a Timer is meant for a single goroutine.
type Timer[I stopwatch.Instant[I]] struct {
	sw       stopwatch.Stopwatch[I]
	observer prometheus.Observer
}

// NewTimer returns a running Timer on the real clock that reports to o.
func NewTimer(o prometheus.Observer) *Timer[realtime.Instant] {
	return NewTimerClock[realtime.Instant](realtime.NewClock(), o)
}

// NewTimerClock returns a running Timer driven by clock that reports to o.
func NewTimerClock[I stopwatch.Instant[I]](clock stopwatch.Clock[I], o prometheus.Observer) *Timer[I] {
	return &Timer[I]{
		sw:       stopwatch.NewStarted(clock),
		observer: o,
	}
}

// Pause stops the clock on the Timer. Pausing a paused Timer has no effect.
func (t *Timer[I]) Pause() {
	t.sw.Stop()
}

// Resume restarts the clock on a paused Timer. Resuming a running Timer has
// no effect.
func (t *Timer[I]) Resume() {
	if !t.sw.Running() {
		t.sw.Start()
	}
}

// ObserveDuration stops the Timer, reports the total time it ran to the
// Observer and returns it. A nil Observer is allowed; the total is still
// returned. The Timer should not be used afterwards.
func (t *Timer[I]) ObserveDuration() stopwatch.Duration {
	d := t.sw.Finish()
	if t.observer != nil {
		t.observer.Observe(d.Seconds())
	}
	return d
}
