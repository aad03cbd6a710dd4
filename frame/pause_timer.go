package frame

import (
	"sync"
	"time"
)

// PauseAwareTimer measures elapsed time excluding spans where the host was paused
// The host reports its pause state once per rendered frame through Tick
type PauseAwareTimer struct {
	mu    sync.RWMutex
	clock Clock

	start      time.Time     // Timer epoch (clock time)
	paused     bool          // Pause state as of the last Tick
	pauseStart time.Time     // When the current pause began
	pausedFor  time.Duration // Cumulative completed pause duration
}

// NewPauseAwareTimer creates a running timer; a nil clock uses SystemClock
func NewPauseAwareTimer(clock Clock) *PauseAwareTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &PauseAwareTimer{clock: clock, start: clock.Now()}
}

// Tick records the host pause state; only transitions have an effect
func (t *PauseAwareTimer) Tick(paused bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if paused == t.paused {
		return
	}

	now := t.clock.Now()
	if paused {
		t.pauseStart = now
	} else {
		t.pausedFor += now.Sub(t.pauseStart)
		t.pauseStart = time.Time{}
	}
	t.paused = paused
}

// Time returns elapsed unpaused time since the timer was created
// While paused the value is frozen at the moment the pause began
func (t *PauseAwareTimer) Time() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	now := t.clock.Now()
	if t.paused {
		now = t.pauseStart
	}
	return now.Sub(t.start) - t.pausedFor
}

// IsPaused returns the pause state seen by the last Tick
func (t *PauseAwareTimer) IsPaused() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.paused
}

// PausedDuration returns cumulative pause time, including the current pause
func (t *PauseAwareTimer) PausedDuration() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	total := t.pausedFor
	if t.paused {
		total += t.clock.Now().Sub(t.pauseStart)
	}
	return total
}
