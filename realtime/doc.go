// Package realtime binds the stopwatch Instant capability to the process
// monotonic clock. Instants are read through the monotonic reading that
// [time.Now] carries, so they are unaffected by changes to the wall clock.
// An [Instant] has no meaning outside of the process that produced it.
package realtime
