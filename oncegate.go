// Package oncegate provides a gate that runs an action exactly once and
// makes every caller wait until that single run has finished.
//
// # Gate
//
// The Gate defined by this package is a stateful run-once primitive which can
// be created explicitly, passed around and shared by goroutines. On top of
// executing the action once it lets clients test whether the action has
// already completed through the Done method, which makes it useful wherever
// several goroutines need to agree on one-time work and later observe that
// it happened.
//
// Do keeps a strict completion contract. No call returns before the one run
// of the action has returned, and the done flag flips only after the action
// is finished. A panic inside the action reaches only the caller that ran
// it; everyone else proceeds normally. The action is never retried.
//
// Gate is concurrency safe and has well defined behavior for concurrent
// access. See the test cases.
package oncegate
