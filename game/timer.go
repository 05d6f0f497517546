package game

import "time"

// Timer is a fixed-interval accumulator fed with frame deltas
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
	running  bool
}

func NewTimer(interval time.Duration) *Timer {
	return &Timer{interval: interval}
}

// Reset rearms the timer from zero
func (t *Timer) Reset() {
	t.elapsed = 0
	t.running = true
}

// Stop cancels the timer; Advance reports nothing until the next Reset
func (t *Timer) Stop() {
	t.elapsed = 0
	t.running = false
}

// Advance adds dt and returns how many intervals have elapsed since the
// previous call.
func (t *Timer) Advance(dt time.Duration) int {
	if !t.running || t.interval <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := int(t.elapsed / t.interval)
	t.elapsed -= time.Duration(n) * t.interval
	return n
}
