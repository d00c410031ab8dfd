package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3
		{"越界下限", -0.5, 0.0},
		{"越界上限", 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseInCubic 测试三次方缓入函数
func TestEaseInCubic(t *testing.T) {
	if got := EaseInCubic(0.5); math.Abs(got-0.125) > 0.001 {
		t.Errorf("EaseInCubic(0.5) = %v, 期望 0.125", got)
	}
	if got := EaseInCubic(1); got != 1 {
		t.Errorf("EaseInCubic(1) = %v, 期望 1", got)
	}
}

// TestEaseInOutCubicSymmetry 测试缓入缓出的对称性
func TestEaseInOutCubicSymmetry(t *testing.T) {
	for _, x := range []float64{0.1, 0.25, 0.4} {
		a := EaseInOutCubic(x)
		b := EaseInOutCubic(1 - x)
		if math.Abs(a+b-1) > 1e-9 {
			t.Errorf("EaseInOutCubic(%v)+EaseInOutCubic(%v) = %v, 期望 1", x, 1-x, a+b)
		}
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, 期望 12.5", got)
	}
	if got := Lerp(-1, 1, 0.5); got != 0 {
		t.Errorf("Lerp(-1, 1, 0.5) = %v, 期望 0", got)
	}
}
