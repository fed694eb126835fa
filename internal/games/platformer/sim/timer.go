package sim

// Timer is an optional timestamp in level milliseconds. The zero value is
// unarmed, which is distinct from a timer armed at time zero.
type Timer struct {
	at    int64
	armed bool
}

// Start arms the timer at now, replacing any previous value.
func (t *Timer) Start(now int64) {
	t.at = now
	t.armed = true
}

// Clear disarms the timer.
func (t *Timer) Clear() {
	*t = Timer{}
}

// Armed reports whether the timer holds a timestamp.
func (t Timer) Armed() bool {
	return t.armed
}

// Elapsed returns milliseconds since the timer was armed, or 0 when unarmed.
func (t Timer) Elapsed(now int64) int64 {
	if !t.armed {
		return 0
	}
	return now - t.at
}

// Reached reports whether the timer is armed and at least d ms have passed.
func (t Timer) Reached(now, d int64) bool {
	return t.armed && now-t.at >= d
}

// ArmIfUnset arms an unarmed timer at now and reports whether it did so.
// Frame animations use it so the first update never counts as a full period.
func (t *Timer) ArmIfUnset(now int64) bool {
	if t.armed {
		return false
	}
	t.Start(now)
	return true
}
