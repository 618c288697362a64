package debounce

import (
	"sync"
	"time"
)

// ManualClock is an AfterFunc source whose timers fire only when told.
// It lets callers drive debounced code deterministically.
type ManualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	clock   *ManualClock
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// NewManualClock creates an empty ManualClock.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// AfterFunc implements AfterFunc.
func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Armed returns how many timers are neither stopped nor fired.
func (c *ManualClock) Armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// LastDelay returns the delay of the most recently armed timer.
func (c *ManualClock) LastDelay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.timers) == 0 {
		return 0
	}
	return c.timers[len(c.timers)-1].delay
}

// FireAll runs every armed timer on the calling goroutine, in arm order.
// It returns how many fired.
func (c *ManualClock) FireAll() int {
	c.mu.Lock()
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
	return len(due)
}
