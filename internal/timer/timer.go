// Package timer implements the process-wide wall-clock described in
// spec §4.5: a clock that tracks elapsed search time and can be
// paused/resumed, used when the engine must block on a human prompt.
//
// The shape mirrors the teacher's internal/logging Timer (start time +
// Stop computing time.Since), generalized with an accumulator and a
// pause-depth counter so nested pauses collapse correctly (§4.5
// "nested pauses count... resume only re-enables the clock at depth 0").
package timer

import (
	"sync"
	"time"
)

// Clock is a pausable wall-clock. The zero value is not usable; use New.
type Clock struct {
	mu sync.Mutex

	running    bool
	runningAt  time.Time // set when running became true
	accumulated time.Duration
	pauseDepth int
}

// New returns a Clock that has not yet been started.
func New() *Clock {
	return &Clock{}
}

// Start begins accumulating elapsed time. Calling Start on an
// already-started clock is a no-op.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.runningAt = time.Now()
}

// Pause increments the pause-depth counter and, on the transition from
// depth 0, folds the currently-running span into the accumulator and
// stops the clock. Pauses nest: Pause/Pause/Resume leaves the clock
// still paused until a second Resume (§4.5).
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pauseDepth++
	if c.pauseDepth > 1 {
		return
	}
	if c.running {
		c.accumulated += time.Since(c.runningAt)
		c.running = false
	}
}

// Resume decrements the pause-depth counter and, only once it reaches 0,
// restarts accumulation from now.
func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pauseDepth == 0 {
		return
	}
	c.pauseDepth--
	if c.pauseDepth > 0 {
		return
	}
	c.running = true
	c.runningAt = time.Now()
}

// Elapsed returns the total time accumulated so far. It is safe to call
// from any goroutine; a call during a paused span returns a constant
// value until Resume (the "elapsed() during a paused span is constant"
// testable property of spec §8).
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return c.accumulated + time.Since(c.runningAt)
	}
	return c.accumulated
}

// Paused reports whether the clock is currently paused (pauseDepth > 0).
func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pauseDepth > 0
}

// Reset zeroes the clock back to its not-yet-started state, so a Clock
// shared by an Engine across repeated Search calls (§6) starts each
// search from zero rather than accumulating across runs.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.accumulated = 0
	c.pauseDepth = 0
}
