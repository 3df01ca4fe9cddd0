// Package debounce coalesces bursts of calls: every Trigger restarts the
// quiet period and fn runs once, after the last Trigger.
package debounce

import (
	"sync"
	"time"
)

// DefaultWait matches the search box quiet period.
const DefaultWait = 400 * time.Millisecond

type Debouncer struct {
	wait time.Duration
	fn   func()

	mu    sync.Mutex
	timer *time.Timer
}

func New(wait time.Duration, fn func()) *Debouncer {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Debouncer{wait: wait, fn: fn}
}

// Trigger (re)starts the quiet period.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		if d.timer != t {
			// superseded by a later Trigger
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.fn()
	})
	d.timer = t
}

// Flush runs fn now if a call is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	run := d.takePending()
	d.mu.Unlock()
	if run {
		d.fn()
	}
}

// takePending claims the pending call for the caller. A timer that already
// fired keeps its claim and its callback runs fn. d.mu must be held.
func (d *Debouncer) takePending() bool {
	if d.timer == nil || !d.timer.Stop() {
		return false
	}
	d.timer = nil
	return true
}

// Stop drops a pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
