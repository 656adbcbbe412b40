package translate

import (
	"sync"
	"time"
)

// DetectDebounce is the quiet period after the last text change before a
// detection request is sent.
const DetectDebounce = 1500 * time.Millisecond

// debouncer runs a function after a quiet period. Re-scheduling cancels
// the previous instance, so at most one call is ever pending.
type debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

// Schedule arms the timer for fn, cancelling any pending call. fn runs on
// its own goroutine when the timer fires.
func (d *debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel stops any pending call.
func (d *debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// SetDelay changes the quiet period for subsequent schedules.
func (d *debouncer) SetDelay(delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.delay = delay
}
