package service

import "sync/atomic"

// successGate collapses success observations from multiple channels into a
// single report. Whichever observer fires first wins; every later
// observation is absorbed.
type successGate struct {
	fired atomic.Bool
}

// TryFire reports true exactly once, for the first caller.
func (g *successGate) TryFire() bool {
	return g.fired.CompareAndSwap(false, true)
}

// Fired reports whether the gate has been consumed.
func (g *successGate) Fired() bool {
	return g.fired.Load()
}
