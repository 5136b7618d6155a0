package oncegate

import (
	"sync"

	"go.uber.org/atomic"
)

// Gate is an object that performs an action exactly once and holds every
// caller back until that one action has fully returned. A completed gate is
// therefore always safe to act on: observing it done means the action's
// effects are visible.
//
// The zero value is a pending gate, ready for use. A Gate must not be copied
// after first use.
type Gate struct {
	// done is read on every call and is the hot path, so it sits first in
	// the struct. It flips to true only after the action has returned,
	// never before and never while the action is still running.
	done atomic.Bool
	mu   sync.Mutex
}

// New returns a pending Gate. It is equivalent to new(Gate); it exists so
// the owner creating the gate and the call sites sharing it stay explicit.
func New() *Gate {
	return &Gate{}
}

// Do calls the function f if and only if Do is being called for the first
// time for this gate. Every call to Do, including the ones that do not run
// f, returns only after the one action that did run has finished: callers
// that lose the race block for the full duration of the winner's f.
//
// Because no call returns before the action completes, f must not call Do
// on the same gate; that deadlocks. If Do is called with different
// functions, only the first one is ever run.
//
// If f panics, the gate is still marked complete. The panic propagates to
// the caller whose invocation ran f; callers that were blocked waiting
// return normally, and later calls do not run their function. The action
// is never retried after a failure.
func (g *Gate) Do(f func()) {
	// A bare CompareAndSwap on done would run f exactly once, but the
	// losers of the swap would return while the winner is still inside f.
	// Storing done before calling f is just as wrong: the fast path would
	// report completion for an action still in flight. Both break the
	// waiting guarantee, which is why the slow path takes the mutex and
	// done is stored only after f has returned.

	// fast path: a completed gate returns without touching the lock
	if g.done.Load() {
		return
	}
	g.doSlow(f)
}

// doSlow is kept out of Do so the fast path stays small enough to inline
// at call sites.
func (g *Gate) doSlow(f func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// slow path: re-check under the lock, since another caller may have
	// completed the action between the fast path read and Lock
	if !g.done.Load() {
		// deferred so the flag is set after f returns, on panic too,
		// and before the mutex is released
		defer g.done.Store(true)
		f()
	}
}

// Done reports whether the gate's action has run to completion. It never
// blocks and never takes the lock.
//
// While a goroutine is inside Do running the action, Done still reports
// false; the flag is set only once the action has returned. A true result
// is a completion guarantee, not merely a start guarantee.
func (g *Gate) Done() bool {
	return g.done.Load()
}
