package pvector

import "github.com/rs/zerolog"

// tracer is the package-wide structural-sharing tracer. It defaults to a
// no-op logger, so it costs nothing for ordinary callers: the teacher
// repo carries no logging at all, but a published Go data-structure
// library in this corpus's style does, the way optakt/flow-dps wires
// zerolog through its storage and indexing layers and the way
// npillmayer/fp's persistent vector calls tracer().Debugf around the
// same kind of event (tail-to-root promotion, root growth/collapse).
var tracer = zerolog.Nop()

// SetLogger replaces the package-wide structural-sharing tracer. Pass
// zerolog.Nop() (the default) to silence it again. This is a debugging
// aid only; nothing in this package's correctness depends on whether a
// logger is installed.
func SetLogger(l zerolog.Logger) {
	tracer = l
}

func traceRootGrowth(oldShift, newShift, count int) {
	tracer.Debug().
		Int("old_shift", oldShift).
		Int("new_shift", newShift).
		Int("count", count).
		Msg("pvector: root grew one level")
}

func traceRootCollapse(oldShift, newShift, count int) {
	tracer.Debug().
		Int("old_shift", oldShift).
		Int("new_shift", newShift).
		Int("count", count).
		Msg("pvector: root collapsed one level")
}
