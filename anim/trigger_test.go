package anim

import (
	"testing"
	"time"
)

// TestTriggerOnSchedule verifies ticks and wait for a loop running on
// time
func TestTriggerOnSchedule(t *testing.T) {
	base := time.Unix(0, 0)
	interval := 100 * time.Millisecond
	tr := NewTrigger(interval, base)

	// Woken exactly at the first deadline
	wait, ticks := tr.Advance(base.Add(interval))
	if ticks != 1 {
		t.Errorf("Expected 1 tick, got %d", ticks)
	}
	if wait != interval {
		t.Errorf("Expected wait %v, got %v", interval, wait)
	}
}

// TestTriggerEarlyWake verifies an early wake reports zero ticks and
// the remaining wait
func TestTriggerEarlyWake(t *testing.T) {
	base := time.Unix(0, 0)
	tr := NewTrigger(100*time.Millisecond, base)

	wait, ticks := tr.Advance(base.Add(40 * time.Millisecond))
	if ticks != 0 {
		t.Errorf("Expected 0 ticks, got %d", ticks)
	}
	if wait != 60*time.Millisecond {
		t.Errorf("Expected 60ms wait, got %v", wait)
	}
}

// TestTriggerDriftCorrection verifies a slow frame shortens the next
// wait instead of shifting the schedule
func TestTriggerDriftCorrection(t *testing.T) {
	base := time.Unix(0, 0)
	interval := 100 * time.Millisecond
	tr := NewTrigger(interval, base)

	// Frame overran by 30ms past the first deadline
	wait, ticks := tr.Advance(base.Add(130 * time.Millisecond))
	if ticks != 1 {
		t.Errorf("Expected 1 tick, got %d", ticks)
	}
	if wait != 70*time.Millisecond {
		t.Errorf("Expected shortened 70ms wait, got %v", wait)
	}
}

// TestTriggerCatchUp verifies multiple missed deadlines report as
// multiple ticks
func TestTriggerCatchUp(t *testing.T) {
	base := time.Unix(0, 0)
	interval := 100 * time.Millisecond
	tr := NewTrigger(interval, base)

	_, ticks := tr.Advance(base.Add(250 * time.Millisecond))
	if ticks != 2 {
		t.Errorf("Expected 2 ticks, got %d", ticks)
	}
}

// TestTriggerReanchor verifies a loop far behind schedule is
// re-anchored rather than made to burst
func TestTriggerReanchor(t *testing.T) {
	base := time.Unix(0, 0)
	interval := 100 * time.Millisecond
	tr := NewTrigger(interval, base)

	now := base.Add(10 * time.Second)
	wait, _ := tr.Advance(now)
	if wait != interval {
		t.Errorf("Expected re-anchored full interval wait, got %v", wait)
	}

	// Next advance one interval later sees exactly one tick
	_, ticks := tr.Advance(now.Add(interval))
	if ticks != 1 {
		t.Errorf("Expected 1 tick after re-anchor, got %d", ticks)
	}
}

// TestTriggerWaitConsumesDeadline verifies a Wait call accounts for
// the boundary it slept to, so mixing Wait and Advance never reports
// one period as two ticks
func TestTriggerWaitConsumesDeadline(t *testing.T) {
	interval := 200 * time.Millisecond
	tr := NewTrigger(interval, time.Now())

	if ticks := tr.Wait(); ticks < 1 {
		t.Errorf("Expected Wait to report at least 1 tick, got %d", ticks)
	}

	// The deadline Wait slept to is consumed; an immediate Advance
	// sees no further boundary, only the remaining wait
	wait, ticks := tr.Advance(time.Now())
	if ticks != 0 {
		t.Errorf("Expected 0 ticks right after Wait, got %d", ticks)
	}
	if wait <= 0 || wait > interval {
		t.Errorf("Expected wait within (0, %v], got %v", interval, wait)
	}
}

// TestTriggerClampsInterval verifies non-positive intervals are
// rejected in favor of a minimal schedule
func TestTriggerClampsInterval(t *testing.T) {
	tr := NewTrigger(0, time.Unix(0, 0))
	if tr.Interval() <= 0 {
		t.Errorf("Expected positive interval, got %v", tr.Interval())
	}
}
