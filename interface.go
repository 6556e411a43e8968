package stopwatch

import (
	"time"
)

type Duration = time.Duration

const (
	Nanosecond  = time.Nanosecond
	Microsecond = time.Microsecond
	Millisecond = time.Millisecond
	Second      = time.Second
	Minute      = time.Minute
	Hour        = time.Hour
)

// Clock[I] is the minimal API for a monotonic clock producing instants of
// type I. Both `realtime.Clock` and `*steppedtime.Clock` satisfy it.
type Clock[I Instant[I]] interface {
	// Now returns the current instant. It cannot fail.
	Now() I
}

// An Instant is an opaque point in monotonic time as marked by the Clock
// that generated it. Instants from different clocks must not be mixed.
type Instant[I any] interface {
	comparable

	// CheckedAdd returns the instant shifted forward by d, or false if the
	// result is out of range.
	CheckedAdd(d Duration) (I, bool)
	// CheckedSub returns the instant shifted backward by d, or false if the
	// result is out of range.
	CheckedSub(d Duration) (I, bool)
	// SaturatingDurationSince returns the time elapsed from earlier. It
	// returns zero when earlier is in fact later, never a negative value.
	SaturatingDurationSince(earlier I) Duration
}
