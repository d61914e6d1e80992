package components

// TimerComponent is a non-repeating countdown.
// Used for the debris lifetime; it finishes exactly once.
type TimerComponent struct {
	Name        string  // e.g. "effect_lifetime"
	TargetTime  float64 // seconds
	CurrentTime float64 // seconds elapsed so far
	IsReady     bool    // set once CurrentTime reaches TargetTime
}

// NewTimer returns a timer that finishes after target seconds.
func NewTimer(name string, target float64) TimerComponent {
	return TimerComponent{Name: name, TargetTime: target}
}

// Tick advances the timer by deltaTime and reports whether it finished
// during this call. After finishing it stays ready and Tick returns false.
func (t *TimerComponent) Tick(deltaTime float64) bool {
	if t.IsReady {
		return false
	}
	t.CurrentTime += deltaTime
	if t.CurrentTime >= t.TargetTime {
		t.CurrentTime = t.TargetTime
		t.IsReady = true
		return true
	}
	return false
}

// Remaining returns the seconds left before the timer finishes.
func (t *TimerComponent) Remaining() float64 {
	return t.TargetTime - t.CurrentTime
}
