// Package logtime reports stopwatch results through logrus. Entries are
// emitted at debug level with the total carried in the [ElapsedField] field.
package logtime

import (
	"github.com/sirupsen/logrus"

	"github.com/noodlebox/stopwatch"
	"github.com/noodlebox/stopwatch/realtime"
)

// ElapsedField is the name of the field holding the elapsed Duration.
const ElapsedField = "elapsed"

// Track starts a stopwatch on the real clock. The returned function finishes
// it, logs msg to logger and returns the total, so timing a function body is
// a one-liner:
//
//	defer logtime.Track(log, "sync finished")()
//
// A nil logger logs to [logrus.StandardLogger].
func Track(logger logrus.FieldLogger, msg string) func() stopwatch.Duration {
	return TrackClock[realtime.Instant](realtime.NewClock(), logger, msg)
}

// TrackClock is like Track, with the stopwatch driven by clock.
func TrackClock[I stopwatch.Instant[I]](clock stopwatch.Clock[I], logger logrus.FieldLogger, msg string) func() stopwatch.Duration {
	sw := stopwatch.NewStarted(clock)
	return func() stopwatch.Duration {
		return Finish(&sw, logger, msg)
	}
}

// Finish finishes sw and logs its total to logger.
func Finish[I stopwatch.Instant[I]](sw *stopwatch.Stopwatch[I], logger logrus.FieldLogger, msg string) stopwatch.Duration {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	d := sw.Finish()
	logger.WithField(ElapsedField, d).Debug(msg)
	return d
}
