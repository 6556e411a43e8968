package stopwatch

import (
	"github.com/pkg/errors"
)

// ErrOutOfRange is returned when shifting an instant would leave the range
// its clock can represent.
var ErrOutOfRange = errors.New("instant out of range")

// Deadline returns the instant d from now on clock.
func Deadline[I Instant[I]](clock Clock[I], d Duration) (I, error) {
	at, ok := clock.Now().CheckedAdd(d)
	if !ok {
		return at, errors.Wrapf(ErrOutOfRange, "deadline %v from now", d)
	}
	return at, nil
}

// Ago returns the instant d before now on clock.
func Ago[I Instant[I]](clock Clock[I], d Duration) (I, error) {
	at, ok := clock.Now().CheckedSub(d)
	if !ok {
		return at, errors.Wrapf(ErrOutOfRange, "instant %v ago", d)
	}
	return at, nil
}
