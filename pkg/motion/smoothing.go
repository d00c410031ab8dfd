package motion

import "math"

// ExpSmooth 一阶指数平滑: pos += (target - pos) * alpha
// alpha ∈ (0, 1] 时结果单调逼近目标且不会越过目标
func ExpSmooth(pos, target, alpha float64) float64 {
	return pos + (target-pos)*alpha
}

// Pulse 脉冲缩放: 1 + amplitude * sin(t * frequency)
func Pulse(t, amplitude, frequency float64) float64 {
	return 1 + amplitude*math.Sin(t*frequency)
}

// CyclePhase 返回 t 在周期 period 内的归一化相位 ∈ [0, 1)
// 负时间按周期回绕到正区间
func CyclePhase(t, period float64) float64 {
	phase := math.Mod(t, period)
	if phase < 0 {
		phase += period
	}
	return phase / period
}

// RingCycle 扩散环的锯齿周期
//
//	scale   = 1 + phase * growth
//	opacity = 1 - phase
//
// 周期结束后立即从 scale=1、opacity=1 重新开始
func RingCycle(t, period, growth float64) (scale, opacity float64) {
	phase := CyclePhase(t, period)
	return 1 + phase*growth, 1 - phase
}
