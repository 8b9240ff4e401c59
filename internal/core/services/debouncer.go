package services

import (
	"sync"
	"time"

	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
)

// Debouncer runs fn once the delay has passed since the last Schedule.
//
// Each Schedule cancels the pending timer and arms a new one. A generation
// counter drops any timer callback that raced with a later Schedule or
// Cancel, so at most one callback runs per quiet period.
type Debouncer struct {
	mu      sync.Mutex
	clock   driven.Clock
	delay   time.Duration
	fn      func()
	timer   driven.Timer
	gen     uint64
	stopped bool
}

// NewDebouncer creates a debouncer that calls fn after delay.
func NewDebouncer(clock driven.Clock, delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{clock: clock, delay: delay, fn: fn}
}

// Schedule cancels any pending call and arms a new one.
func (d *Debouncer) Schedule() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.cancelLocked()
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

// Stop cancels the pending call and makes every later Schedule a no-op.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

// Pending reports whether a call is armed.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) cancelLocked() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.fn()
}
