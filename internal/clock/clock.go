// Package clock provides an injectable time source so the demo's
// one-shot timers can be driven deterministically in tests.
//
// Production code uses Real(). Tests use Fake(), whose timers fire only
// when Advance is called, synchronously and in deadline order.
package clock

import "time"

// Clock abstracts the time operations the demo needs.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for d, then calls f. The returned Timer cancels
	// the pending call. If d <= 0, f runs immediately (in a new
	// goroutine for the real clock, synchronously for the fake).
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a scheduled one-shot callback.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the Timer from firing. Returns true if the call stops
// the timer, false if it already fired or was stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.stopFunc == nil {
		return false
	}
	return t.stopFunc()
}
