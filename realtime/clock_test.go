package realtime_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/noodlebox/stopwatch/realtime"
)

// A clock instance for use in other tests
var clock Clock

func init() {
	clock = NewClock()
}

func TestNowDoesNotGoBackwards(t *testing.T) {
	prev := clock.Now()
	for i := 0; i < 1000; i++ {
		now := clock.Now()
		require.False(t, now.Before(prev), "monotonic clock went backwards")
		prev = now
	}
}

func TestSince(t *testing.T) {
	start := clock.Now()
	for clock.Since(start) < Millisecond {
	}
	assert.GreaterOrEqual(t, clock.Since(start), Millisecond)
}

func TestCheckedAddSub(t *testing.T) {
	now := clock.Now()

	later, ok := now.CheckedAdd(Second)
	require.True(t, ok)
	assert.True(t, later.After(now))
	assert.Equal(t, Second, later.SaturatingDurationSince(now))

	back, ok := later.CheckedSub(Second)
	require.True(t, ok)
	assert.True(t, back.Equal(now))
	assert.Equal(t, 0, back.Compare(now))

	earlier, ok := now.CheckedAdd(-Second)
	require.True(t, ok)
	assert.Equal(t, -1, earlier.Compare(now))
	assert.Equal(t, 1, now.Compare(earlier))
}

func TestCheckedOverflow(t *testing.T) {
	var i Instant

	hi, ok := i.CheckedAdd(Duration(math.MaxInt64))
	require.True(t, ok)
	_, ok = hi.CheckedAdd(Nanosecond)
	assert.False(t, ok)

	lo, ok := i.CheckedSub(Duration(math.MaxInt64))
	require.True(t, ok)
	_, ok = lo.CheckedSub(2 * Nanosecond)
	assert.False(t, ok)
}

func TestSaturatingDurationSince(t *testing.T) {
	now := clock.Now()
	later, ok := now.CheckedAdd(Hour)
	require.True(t, ok)

	assert.Equal(t, Hour, later.SaturatingDurationSince(now))
	assert.Equal(t, Duration(0), now.SaturatingDurationSince(later))
	assert.Equal(t, Duration(0), now.SaturatingDurationSince(now))

	var zero Instant
	hi, _ := zero.CheckedAdd(Duration(math.MaxInt64))
	lo, _ := zero.CheckedSub(Duration(math.MaxInt64))
	assert.Equal(t, Duration(math.MaxInt64), hi.SaturatingDurationSince(lo))
}
