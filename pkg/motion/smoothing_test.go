package motion

import (
	"math"
	"testing"
)

// TestExpSmoothNoOvershoot 指数平滑单调逼近且不过冲
func TestExpSmoothNoOvershoot(t *testing.T) {
	pos := 0.0
	prev := pos
	for i := 0; i < 200; i++ {
		pos = ExpSmooth(pos, 5, 0.1)
		if pos > 5 {
			t.Fatalf("overshoot at frame %d: %v", i, pos)
		}
		if pos < prev {
			t.Fatalf("not monotonic at frame %d: %v < %v", i, pos, prev)
		}
		prev = pos
	}
	if math.Abs(pos-5) > 0.01 {
		t.Errorf("after 200 frames: got %v, want ~5", pos)
	}
}

// TestPulse 脉冲缩放公式
func TestPulse(t *testing.T) {
	if got := Pulse(0, 0.1, 3); got != 1 {
		t.Errorf("Pulse(0): got %v, want 1", got)
	}
	peak := math.Pi / 6 // sin(3t) = 1
	if got := Pulse(peak, 0.1, 3); math.Abs(got-1.1) > 1e-9 {
		t.Errorf("Pulse(peak): got %v, want 1.1", got)
	}
}

// TestRingCycle 扩散环周期边界
func TestRingCycle(t *testing.T) {
	const period, growth = 1.5, 4.0

	for _, start := range []float64{0, 1.5, 3, 150} {
		scale, opacity := RingCycle(start, period, growth)
		if math.Abs(scale-1) > 1e-9 || math.Abs(opacity-1) > 1e-9 {
			t.Errorf("cycle start t=%v: got scale=%v opacity=%v, want 1, 1", start, scale, opacity)
		}
	}

	scale, opacity := RingCycle(period-1e-9, period, growth)
	if math.Abs(scale-(1+growth)) > 1e-6 {
		t.Errorf("cycle end scale: got %v, want ~%v", scale, 1+growth)
	}
	if math.Abs(opacity) > 1e-6 {
		t.Errorf("cycle end opacity: got %v, want ~0", opacity)
	}

	scale, opacity = RingCycle(0.75, period, growth)
	if math.Abs(scale-3) > 1e-9 || math.Abs(opacity-0.5) > 1e-9 {
		t.Errorf("half cycle: got scale=%v opacity=%v, want 3, 0.5", scale, opacity)
	}
}

// TestCyclePhaseNegative 负时间回绕到 [0, 1)
func TestCyclePhaseNegative(t *testing.T) {
	got := CyclePhase(-0.375, 1.5)
	if math.Abs(got-0.75) > 1e-9 {
		t.Errorf("CyclePhase(-0.375, 1.5): got %v, want 0.75", got)
	}
}
