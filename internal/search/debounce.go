package search

import (
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultDebounce is the idle window before a scheduled fetch fires
const DefaultDebounce = 500 * time.Millisecond

// Debouncer owns a single timer handle. Arming it stops whatever was armed
// before, so only the most recent schedule can fire.
//
// Debouncer is not safe for concurrent use; it is driven from the event loop.
// The armed callback runs on the clock's goroutine and receives the sequence
// number it was armed with, which the loop checks with Claim before acting.
type Debouncer struct {
	clock clock.Clock
	delay time.Duration
	timer *clock.Timer
	seq   uint64
	armed bool
}

// NewDebouncer creates a debouncer using clk for its timers
func NewDebouncer(clk clock.Clock, delay time.Duration) *Debouncer {
	if clk == nil {
		clk = clock.New()
	}
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{clock: clk, delay: delay}
}

// Delay returns the debounce window
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule cancels any pending timer and arms fn to run after the delay.
// It returns the sequence number passed to fn.
func (d *Debouncer) Schedule(fn func(seq uint64)) uint64 {
	d.stop()
	d.seq++
	d.armed = true
	seq := d.seq
	d.timer = d.clock.AfterFunc(d.delay, func() { fn(seq) })
	return seq
}

// Cancel stops the pending timer, if any. Callbacks that already fired but
// were not yet claimed become stale. Reports whether something was pending.
func (d *Debouncer) Cancel() bool {
	wasArmed := d.armed
	d.stop()
	if wasArmed {
		d.seq++
	}
	d.armed = false
	return wasArmed
}

// Claim consumes a fired callback. It returns false when seq was superseded
// or cancelled after the timer fired.
func (d *Debouncer) Claim(seq uint64) bool {
	if !d.armed || seq != d.seq {
		return false
	}
	d.armed = false
	d.timer = nil
	return true
}

// Pending reports whether a scheduled callback has not been claimed yet
func (d *Debouncer) Pending() bool {
	return d.armed
}

func (d *Debouncer) stop() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
