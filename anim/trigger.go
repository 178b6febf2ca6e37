package anim

import "time"

// Trigger paces a render loop at a fixed interval with drift
// correction: deadlines advance by whole intervals from the start
// time, so a slow frame shortens the following sleep instead of
// shifting the whole schedule. A loop that falls more than two
// intervals behind is re-anchored rather than made to burst.
type Trigger struct {
	interval time.Duration
	next     time.Time
}

// NewTrigger starts a trigger whose first deadline is one interval
// after now. Non-positive intervals are clamped to one millisecond.
func NewTrigger(interval time.Duration, now time.Time) *Trigger {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Trigger{interval: interval, next: now.Add(interval)}
}

// Interval returns the configured tick interval.
func (t *Trigger) Interval() time.Duration { return t.interval }

// Advance reports how long to sleep until the next deadline and how
// many ticks elapsed since the previous call. Zero ticks with a
// positive wait means the caller woke early.
func (t *Trigger) Advance(now time.Time) (wait time.Duration, ticks int) {
	maxBehind := 2 * t.interval
	for !now.Before(t.next) {
		t.next = t.next.Add(t.interval)
		ticks++
		if now.Sub(t.next) > maxBehind {
			t.next = now.Add(t.interval)
			break
		}
	}

	wait = t.next.Sub(now)
	if wait < 0 {
		wait = 0
	}
	return wait, ticks
}

// Wait sleeps until the next deadline and returns the elapsed tick
// count. The deadline slept to is consumed here, so a following
// Advance does not report the same boundary again.
func (t *Trigger) Wait() int {
	wait, ticks := t.Advance(time.Now())
	if wait > 0 {
		time.Sleep(wait)
	}
	if ticks == 0 {
		_, ticks = t.Advance(time.Now())
	}
	return ticks
}
