package interaction

import (
	"math"
	"testing"
)

// TestPulseRigIdempotent 相同 (t, nx, ny) 和相同初始状态得到相同输出
func TestPulseRigIdempotent(t *testing.T) {
	a := NewPulseRig(DefaultPulseParams)
	a.GroupX, a.GroupY = 1.25, -0.5
	b := *a

	fa := a.Advance(2.3, 0.4, -0.7)
	fb := b.Advance(2.3, 0.4, -0.7)

	if fa != fb {
		t.Errorf("outputs differ: %+v vs %+v", fa, fb)
	}
	if a.GroupX != b.GroupX || a.GroupY != b.GroupY {
		t.Errorf("states differ: (%v,%v) vs (%v,%v)", a.GroupX, a.GroupY, b.GroupX, b.GroupY)
	}
}

// TestPulseRigLerp 装饰组每帧按 alpha 向目标靠近
func TestPulseRigLerp(t *testing.T) {
	r := NewPulseRig(DefaultPulseParams)
	f := r.Advance(0, 1, 1)

	if math.Abs(f.GroupX-0.5) > 1e-9 { // (5 - 0) * 0.1
		t.Errorf("GroupX: got %v, want 0.5", f.GroupX)
	}
	if math.Abs(f.GroupY-0.3) > 1e-9 { // (3 - 0) * 0.1
		t.Errorf("GroupY: got %v, want 0.3", f.GroupY)
	}

	for i := 0; i < 300; i++ {
		f = r.Advance(float64(i)/60, -1, -1)
	}
	if math.Abs(f.GroupX+5) > 0.01 || math.Abs(f.GroupY+3) > 0.01 {
		t.Errorf("group did not reach (-5,-3): (%v,%v)", f.GroupX, f.GroupY)
	}
}

// TestPulseRigRing 扩散环与脉冲只由时间决定
func TestPulseRigRing(t *testing.T) {
	r := NewPulseRig(DefaultPulseParams)

	f := r.Advance(3.0, 0, 0) // 3.0 mod 1.5 = 0
	if math.Abs(f.RingScale-1) > 1e-9 || math.Abs(f.RingOpacity-1) > 1e-9 {
		t.Errorf("cycle start: scale=%v opacity=%v", f.RingScale, f.RingOpacity)
	}
	if math.Abs(f.PulseScale-(1+0.1*math.Sin(9))) > 1e-9 {
		t.Errorf("PulseScale: got %v", f.PulseScale)
	}

	f = r.Advance(1.5-1e-9, 0, 0)
	if math.Abs(f.RingScale-5) > 1e-6 || f.RingOpacity > 1e-6 {
		t.Errorf("cycle end: scale=%v opacity=%v", f.RingScale, f.RingOpacity)
	}
}

// TestCubeRig 自转按 dt 累加，拖拽叠加
func TestCubeRig(t *testing.T) {
	c := NewCubeRig(DefaultCubeParams)
	var f CubeFrame
	for i := 0; i < 60; i++ {
		f = c.Advance(float64(i)/60, 1.0/60)
	}
	if math.Abs(f.Yaw-0.15) > 1e-9 {
		t.Errorf("Yaw after 1s: got %v, want 0.15", f.Yaw)
	}

	c.Orbit(100)
	f = c.Advance(1, 0)
	if math.Abs(f.Yaw-1.15) > 1e-9 {
		t.Errorf("Yaw after orbit: got %v, want 1.15", f.Yaw)
	}

	if len(Cubelets()) != 27 {
		t.Errorf("Cubelets: got %d, want 27", len(Cubelets()))
	}
	if math.Abs(DefaultCubeParams.HalfExtent()-1.47) > 1e-9 {
		t.Errorf("HalfExtent: got %v, want 1.47", DefaultCubeParams.HalfExtent())
	}
}
