package steppedtime

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

// Time represents the number of nanoseconds since the start of the clock.
type Time int64

// Add returns the time t+d. Overflow wraps; see [Time.CheckedAdd].
func (t Time) Add(d Duration) Time {
	return t + Time(d)
}

// Sub returns the duration t-u, which may be negative.
func (t Time) Sub(u Time) Duration {
	return Duration(t - u)
}

// CheckedAdd returns t+d, or false if the result is not representable.
func (t Time) CheckedAdd(d Duration) (Time, bool) {
	ns, ok := nanos.Add(int64(t), int64(d))
	return Time(ns), ok
}

// CheckedSub returns t-d, or false if the result is not representable.
func (t Time) CheckedSub(d Duration) (Time, bool) {
	ns, ok := nanos.Sub(int64(t), int64(d))
	return Time(ns), ok
}

// SaturatingDurationSince returns t-earlier, or zero if earlier is after t.
func (t Time) SaturatingDurationSince(earlier Time) Duration {
	return Duration(nanos.SaturatingSince(int64(t), int64(earlier)))
}

// After reports whether the time instant t is after u.
func (t Time) After(u Time) bool {
	return t > u
}

// Before reports whether the time instant t is before u.
func (t Time) Before(u Time) bool {
	return t < u
}

// Compare compares the time instant t with u. If t is before u, it returns
// -1; if t is after u, it returns +1; if they're the same, it returns 0.
func (t Time) Compare(u Time) int {
	switch {
	case t < u:
		return -1
	case t > u:
		return 1
	}
	return 0
}

// Equal reports whether t and u represent the same time instant.
func (t Time) Equal(u Time) bool {
	return t == u
}

// IsZero reports whether t represents the zero time instant, the start of the clock.
func (t Time) IsZero() bool {
	return t == 0
}
