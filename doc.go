// Package stopwatch accumulates elapsed time across any number of start and
// stop cycles. A [Stopwatch] is generic over the [Instant] type of the
// [Clock] that drives it, so the real monotonic clock from the
// [github.com/noodlebox/stopwatch/realtime] package can be swapped for a
// deterministic one such as [github.com/noodlebox/stopwatch/steppedtime] in
// tests.
//
// A Stopwatch is a plain value owned by a single goroutine. It does no
// locking of its own.
package stopwatch
