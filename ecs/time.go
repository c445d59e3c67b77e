package ecs

// Time is the virtual game clock. Gameplay systems read Delta, which is zero
// while the clock is paused; the real tick length keeps flowing in RealDelta.
type Time struct {
	delta     float64
	realDelta float64
	elapsed   float64
	paused    bool
}

// NewTime creates a running clock.
func NewTime() *Time {
	return &Time{}
}

// Advance moves the clock forward by one real tick of dt seconds.
func (t *Time) Advance(dt float64) {
	if t == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	t.realDelta = dt
	if t.paused {
		t.delta = 0
		return
	}
	t.delta = dt
	t.elapsed += dt
}

func (t *Time) Delta() float64 {
	if t == nil {
		return 0
	}
	return t.delta
}

func (t *Time) RealDelta() float64 {
	if t == nil {
		return 0
	}
	return t.realDelta
}

// Elapsed returns virtual seconds since start.
func (t *Time) Elapsed() float64 {
	if t == nil {
		return 0
	}
	return t.elapsed
}

func (t *Time) IsPaused() bool {
	return t != nil && t.paused
}

func (t *Time) Pause() {
	t.SetPaused(true)
}

func (t *Time) Unpause() {
	t.SetPaused(false)
}

func (t *Time) SetPaused(paused bool) {
	if t == nil {
		return
	}
	t.paused = paused
	if paused {
		t.delta = 0
	}
}
