package demo

import (
	"context"
	"sync"
	"time"

	"vibedemo/internal/clock"

	"go.uber.org/zap"
)

// Dispatcher hands a timer callback to the goroutine that owns the
// Session. Clock callbacks never mutate state directly.
type Dispatcher func(fn func())

// inlineDispatch runs fn immediately. Only safe with a manualClock.
func inlineDispatch(fn func()) { fn() }

// manualClock is a clock whose callbacks fire inside Advance, on the
// goroutine that calls it.
type manualClock interface {
	Advance(d time.Duration)
}

type timerKind string

const (
	timerProvisioning   timerKind = "provisioning"
	timerAutoAdvance    timerKind = "auto-advance"
	timerAssistant      timerKind = "assistant"
	timerShareIndicator timerKind = "share-indicator"
)

type pendingTimer struct {
	kind  timerKind
	timer *clock.Timer
}

// timerTable tracks every outstanding one-shot by id. A callback runs
// only if its id is still registered when it reaches the owner, which
// makes cancellation race-free even if the clock already fired.
type timerTable struct {
	clock    clock.Clock
	dispatch Dispatcher
	log      *zap.Logger

	nextID  uint64
	pending map[uint64]*pendingTimer
}

func newTimerTable(c clock.Clock, d Dispatcher, log *zap.Logger) *timerTable {
	return &timerTable{
		clock:    c,
		dispatch: d,
		log:      log,
		pending:  make(map[uint64]*pendingTimer),
	}
}

func (t *timerTable) schedule(kind timerKind, d time.Duration, fire func()) uint64 {
	t.nextID++
	id := t.nextID
	entry := &pendingTimer{kind: kind}
	// Register before arming: the fake clock runs non-positive delays inline.
	t.pending[id] = entry
	entry.timer = t.clock.AfterFunc(d, func() {
		t.dispatch(func() { t.fire(id, fire) })
	})
	t.log.Debug("timer scheduled",
		zap.Uint64("id", id),
		zap.String("kind", string(kind)),
		zap.Duration("delay", d))
	return id
}

func (t *timerTable) fire(id uint64, fn func()) {
	entry, ok := t.pending[id]
	if !ok {
		t.log.Debug("stale timer ignored", zap.Uint64("id", id))
		return
	}
	delete(t.pending, id)
	t.log.Debug("timer fired", zap.Uint64("id", id), zap.String("kind", string(entry.kind)))
	fn()
}

// cancelKind stops every pending timer of the given kind.
func (t *timerTable) cancelKind(kind timerKind) int {
	n := 0
	for id, entry := range t.pending {
		if entry.kind == kind {
			entry.timer.Stop()
			delete(t.pending, id)
			n++
		}
	}
	return n
}

// cancelAll stops every pending timer.
func (t *timerTable) cancelAll() int {
	n := len(t.pending)
	for id, entry := range t.pending {
		entry.timer.Stop()
		delete(t.pending, id)
	}
	return n
}

func (t *timerTable) count() int { return len(t.pending) }

func (t *timerTable) countKind(kind timerKind) int {
	n := 0
	for _, entry := range t.pending {
		if entry.kind == kind {
			n++
		}
	}
	return n
}

// =============================================================================
// LOOP
// =============================================================================

// Loop serializes timer callbacks onto a single consumer. Hosts pass
// Loop.Dispatch to WithDispatcher and run the callbacks received from
// Next on the goroutine that owns the Session.
type Loop struct {
	ch        chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewLoop creates an open loop.
func NewLoop() *Loop {
	return &Loop{
		ch:   make(chan func()),
		done: make(chan struct{}),
	}
}

// Dispatch queues fn for the consumer. It blocks until the consumer
// takes it or the loop is closed, in which case fn is dropped.
func (l *Loop) Dispatch(fn func()) {
	select {
	case l.ch <- fn:
	case <-l.done:
	}
}

// Next returns the channel of queued callbacks.
func (l *Loop) Next() <-chan func() { return l.ch }

// Done is closed when the loop is closed.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Wait runs queued callbacks until cond returns true, ctx ends or the
// loop closes. cond is evaluated on the calling goroutine before each
// wait, so it may read Session state.
func (l *Loop) Wait(ctx context.Context, cond func() bool) error {
	for !cond() {
		select {
		case fn := <-l.ch:
			fn()
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		}
	}
	return nil
}

// Close releases any goroutine blocked in Dispatch. Safe to call twice.
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}
