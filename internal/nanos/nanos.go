// Package nanos holds the int64 nanosecond arithmetic shared by the instant
// types of this module.
package nanos

import (
	"math"
)

// Max is the largest representable span, in nanoseconds.
const Max = math.MaxInt64

// Add returns a+b, or false if the sum overflows int64.
func Add(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// Sub returns a-b, or false if the difference overflows int64.
func Sub(a, b int64) (int64, bool) {
	s := a - b
	if (b > 0 && s > a) || (b < 0 && s < a) {
		return 0, false
	}
	return s, true
}

// SaturatingSince returns t-earlier clamped to [0, Max].
func SaturatingSince(t, earlier int64) int64 {
	if t <= earlier {
		return 0
	}
	d, ok := Sub(t, earlier)
	if !ok {
		return Max
	}
	return d
}
