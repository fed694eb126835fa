package sim

import "testing"

func TestTimer(t *testing.T) {
	var tm Timer
	if tm.Armed() {
		t.Error("zero Timer should be unarmed")
	}
	if tm.Elapsed(500) != 0 {
		t.Errorf("Elapsed on unarmed = %d, expected 0", tm.Elapsed(500))
	}
	if tm.Reached(500, 0) {
		t.Error("unarmed Timer should never be reached")
	}

	tm.Start(0)
	if !tm.Armed() {
		t.Error("Timer armed at zero should report armed")
	}
	tests := []struct {
		now      int64
		d        int64
		expected bool
	}{
		{0, 0, true},
		{499, 500, false},
		{500, 500, true},
		{501, 500, true},
	}
	for _, tt := range tests {
		if got := tm.Reached(tt.now, tt.d); got != tt.expected {
			t.Errorf("Reached(%d, %d) = %v, expected %v", tt.now, tt.d, got, tt.expected)
		}
	}

	tm.Clear()
	if tm.Armed() {
		t.Error("Clear should disarm the timer")
	}
}

func TestTimerArmIfUnset(t *testing.T) {
	var tm Timer
	if !tm.ArmIfUnset(100) {
		t.Error("first ArmIfUnset should arm")
	}
	if tm.ArmIfUnset(200) {
		t.Error("second ArmIfUnset should not re-arm")
	}
	if tm.Elapsed(250) != 150 {
		t.Errorf("Elapsed = %d, expected 150", tm.Elapsed(250))
	}
}
