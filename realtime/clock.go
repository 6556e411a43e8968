package realtime

import (
	"time"

	"github.com/noodlebox/stopwatch/internal/nanos"
)

// See [time.Duration].
type Duration = time.Duration

// Duration constants.
const (
	Nanosecond  = time.Nanosecond
	Microsecond = time.Microsecond
	Millisecond = time.Millisecond
	Second      = time.Second
	Minute      = time.Minute
	Hour        = time.Hour
)

// epoch is an arbitrary t0. Only its monotonic reading is ever used.
var epoch = time.Now()

// Instant is a point on the monotonic clock, stored as the offset from a
// fixed, unknowable epoch. The zero value is that epoch.
type Instant struct {
	ns int64
}

// CheckedAdd returns i+d, or false if the result is not representable.
func (i Instant) CheckedAdd(d Duration) (Instant, bool) {
	ns, ok := nanos.Add(i.ns, int64(d))
	return Instant{ns}, ok
}

// CheckedSub returns i-d, or false if the result is not representable.
func (i Instant) CheckedSub(d Duration) (Instant, bool) {
	ns, ok := nanos.Sub(i.ns, int64(d))
	return Instant{ns}, ok
}

// SaturatingDurationSince returns the duration elapsed from earlier to i. If
// earlier is after i, it returns zero.
func (i Instant) SaturatingDurationSince(earlier Instant) Duration {
	return Duration(nanos.SaturatingSince(i.ns, earlier.ns))
}

// After reports whether the instant i is after u.
func (i Instant) After(u Instant) bool {
	return i.ns > u.ns
}

// Before reports whether the instant i is before u.
func (i Instant) Before(u Instant) bool {
	return i.ns < u.ns
}

// Compare compares the instant i with u. If i is before u, it returns -1; if
// i is after u, it returns +1; if they're the same, it returns 0.
func (i Instant) Compare(u Instant) int {
	switch {
	case i.ns < u.ns:
		return -1
	case i.ns > u.ns:
		return 1
	}
	return 0
}

// Equal reports whether i and u represent the same instant.
func (i Instant) Equal(u Instant) bool {
	return i.ns == u.ns
}

// Clock reads the monotonic clock. Its methods are thread-safe and Clock
// objects may be copied freely. The zero-value of a Clock is perfectly valid.
type Clock struct{}

// NewClock returns a new Clock.
func NewClock() Clock {
	return Clock{}
}

// Now returns the current instant.
func (Clock) Now() Instant {
	return Instant{int64(time.Since(epoch))}
}

// Since returns the time elapsed since i. It is shorthand for
// clock.Now().SaturatingDurationSince(i).
func (c Clock) Since(i Instant) Duration {
	return c.Now().SaturatingDurationSince(i)
}
