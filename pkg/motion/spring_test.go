package motion

import (
	"errors"
	"math"
	"testing"
)

const frameDT = 1.0 / 60.0

var presets = map[string]SpringConfig{
	"cursor ring": CursorRingSpring,
	"preview":     PreviewSpring,
	"drawer":      DrawerSpringConfig,
	"no snapping": {Stiffness: 150, Damping: 25, Mass: 0.5},
}

// TestSpringConvergence 任意起点、固定目标，足够多帧后输出在 0.01 内贴合目标
func TestSpringConvergence(t *testing.T) {
	starts := [][2]float64{{0, 0}, {-2000, 1500}, {5000, -5000}, {0.5, 0.5}, {1920, 1080}}
	targets := [][2]float64{{0, 0}, {640, 360}, {-450, -125}, {1e-3, 3}}

	for name, cfg := range presets {
		for _, start := range starts {
			for _, target := range targets {
				var p SmoothedPosition
				p.Reset(start[0], start[1])
				for i := 0; i < 600; i++ {
					p.Step(cfg, target[0], target[1], frameDT)
				}
				if !p.Settled(target[0], target[1], 0.01) {
					t.Errorf("%s: start %v target %v: got (%.4f, %.4f) after 600 frames",
						name, start, target, p.X, p.Y)
				}
			}
		}
	}
}

// TestSpringNoDivergence 贴合后继续推进不会再次发散
func TestSpringNoDivergence(t *testing.T) {
	for name, cfg := range presets {
		var p SmoothedPosition
		p.Reset(3000, -3000)
		for i := 0; i < 2000; i++ {
			p.Step(cfg, 0, 0, frameDT)
			dist := math.Hypot(p.X, p.Y)
			if math.IsNaN(dist) || math.IsInf(dist, 0) {
				t.Fatalf("%s: diverged at frame %d", name, i)
			}
			if i >= 600 && dist >= 0.01 {
				t.Fatalf("%s: left the 0.01 band at frame %d (distance %v)", name, i, dist)
			}
		}
	}
}

// TestSpringContinuity 目标突变时输出不跳变
func TestSpringContinuity(t *testing.T) {
	for name, cfg := range presets {
		var p SmoothedPosition
		p.Reset(0, 0)
		p.Step(cfg, 1000, 0, frameDT)
		if p.X <= 0 || p.X >= 500 {
			t.Errorf("%s: first frame after a 1000px jump moved to %.2f, want (0, 500)", name, p.X)
		}
	}
}

// TestSpringRecurrence 单帧递推与公式一致
func TestSpringRecurrence(t *testing.T) {
	cfg := SpringConfig{Stiffness: 100, Damping: 20, Mass: 2}
	p := SmoothedPosition{X: 10, VelocityX: 5}
	p.Step(cfg, 30, 0, 0.1)

	accel := (100*(30-10) - 20*5) / 2.0
	wantVel := 5 + accel*0.1
	wantPos := 10 + wantVel*0.1
	if math.Abs(p.VelocityX-wantVel) > 1e-9 {
		t.Errorf("VelocityX: got %v, want %v", p.VelocityX, wantVel)
	}
	if math.Abs(p.X-wantPos) > 1e-9 {
		t.Errorf("X: got %v, want %v", p.X, wantPos)
	}
}

// TestSpringInstancesIndependent 两个实例互不影响
func TestSpringInstancesIndependent(t *testing.T) {
	var ring, preview SmoothedPosition
	ring.Step(CursorRingSpring, 100, 100, frameDT)
	before := preview
	ring.Step(CursorRingSpring, 200, 200, frameDT)
	if preview != before {
		t.Errorf("stepping one instance mutated another: %+v", preview)
	}
}

// TestDampingRatio 预设阻尼比非负，且数值符合预期
func TestDampingRatio(t *testing.T) {
	tests := []struct {
		name string
		cfg  SpringConfig
		want float64
	}{
		{"cursor ring", CursorRingSpring, 25 / (2 * math.Sqrt(75))},
		{"preview (critical)", PreviewSpring, 1},
		{"drawer", DrawerSpringConfig, 25 / (2 * math.Sqrt(200))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.DampingRatio()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DampingRatio: got %v, want %v", got, tt.want)
			}
			if err := tt.cfg.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

// TestSpringValidate 无效参数被拒绝
func TestSpringValidate(t *testing.T) {
	bad := []SpringConfig{
		{Stiffness: 0, Damping: 1, Mass: 1},
		{Stiffness: 1, Damping: 1, Mass: 0},
		{Stiffness: 1, Damping: -1, Mass: 1},
		{Stiffness: 1, Damping: 1, Mass: 1, RestDelta: -1},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidSpring) {
			t.Errorf("Validate(%+v): got %v, want ErrInvalidSpring", cfg, err)
		}
	}
}
