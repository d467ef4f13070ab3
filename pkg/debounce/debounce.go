// Package debounce collapses bursts of calls into a single trailing invocation.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiescence period used when none is configured.
const DefaultWindow = 300 * time.Millisecond

// Debouncer forwards only the last value of a burst to its callback once no
// further calls arrive within the window. It holds at most one pending value.
type Debouncer[T any] struct {
	mu      sync.Mutex
	window  time.Duration
	clock   Clock
	fn      func(T)
	timer   Timer
	pending T
	armed   bool
	gen     uint64
}

// Option customises a Debouncer.
type Option func(*options)

type options struct {
	clock Clock
}

// WithClock swaps the scheduling clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// New constructs a Debouncer invoking fn after window of quiet.
func New[T any](window time.Duration, fn func(T), opts ...Option) *Debouncer[T] {
	if window <= 0 {
		window = DefaultWindow
	}
	o := options{clock: RealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Debouncer[T]{window: window, clock: o.clock, fn: fn}
}

// Call replaces any pending value with v and restarts the window.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.pending = v
	d.armed = true
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.window, func() { d.fire(gen) })
}

// Cancel drops the pending value without invoking the callback.
// It reports whether a value was pending.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	wasArmed := d.armed
	d.stopLocked()
	d.resetLocked()
	return wasArmed
}

// Flush invokes the callback immediately with the pending value, if any.
// It reports whether the callback ran.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return false
	}
	v := d.pending
	d.stopLocked()
	d.resetLocked()
	d.mu.Unlock()

	d.fn(v)
	return true
}

// Pending reports whether a value is waiting for the window to elapse.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

// Window returns the configured quiescence period.
func (d *Debouncer[T]) Window() time.Duration {
	return d.window
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	// a superseded timer may still fire if Stop lost the race
	if !d.armed || gen != d.gen {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.timer = nil
	d.resetLocked()
	d.mu.Unlock()

	d.fn(v)
}

func (d *Debouncer[T]) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer[T]) resetLocked() {
	var zero T
	d.pending = zero
	d.armed = false
	d.gen++
}
