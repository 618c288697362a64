// Package debounce provides a cancellable delay-and-collapse timer.
//
// A Debouncer holds at most one pending action. Scheduling a new action
// cancels the previous one, so a burst of triggers runs only the last.
package debounce

import (
	"sync"
	"time"
)

// Timer is a scheduled action that can be stopped before it fires.
type Timer interface {
	Stop() bool
}

// AfterFunc arms f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

// RealAfterFunc schedules on the runtime timer.
func RealAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer collapses repeated Schedule calls into one action.
type Debouncer struct {
	after AfterFunc

	mu    sync.Mutex
	timer Timer
	// seq identifies the live arm; a fired callback whose seq is stale is a no-op.
	seq uint64
}

// New creates a Debouncer. A nil after uses RealAfterFunc.
func New(after AfterFunc) *Debouncer {
	if after == nil {
		after = RealAfterFunc
	}
	return &Debouncer{after: after}
}

// Schedule cancels any pending action and arms action to run after delay.
func (d *Debouncer) Schedule(delay time.Duration, action func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.seq++
	seq := d.seq
	d.timer = d.after(delay, func() {
		d.mu.Lock()
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.seq++
		d.mu.Unlock()
		action()
	})
}

// CancelPending cancels the pending action without arming a new one.
func (d *Debouncer) CancelPending() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.seq++
}

// Pending reports whether an action is armed and has not fired.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
