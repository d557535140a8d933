// Package timer provides the repeating frame timers used for spawning and the
// fire rate.
package timer

import "time"

// Timer is a repeating countdown advanced by frame deltas.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	finished int
}

// NewRepeating creates a timer that finishes every d.
func NewRepeating(d time.Duration) *Timer {
	return &Timer{duration: d}
}

// Tick advances the timer by delta and returns it for chaining.
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.finished = 0
	if t.duration <= 0 {
		t.finished = 1
		return t
	}

	t.elapsed += delta
	if t.elapsed >= t.duration {
		t.finished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
	}
	return t
}

// JustFinished reports whether the last Tick crossed at least one period.
func (t *Timer) JustFinished() bool {
	return t.finished > 0
}

// TimesFinished returns how many periods the last Tick crossed.
func (t *Timer) TimesFinished() int {
	return t.finished
}

// Elapsed returns the time accumulated toward the next period.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the period.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Reset sets the elapsed time back to zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = 0
}
