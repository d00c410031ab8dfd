package interaction

import "github.com/decker502/portfolio/pkg/motion"

// PulseParams 联系页脉冲装饰参数
type PulseParams struct {
	// ScaleX / ScaleY 归一化指针坐标到世界坐标的缩放
	ScaleX float64 `yaml:"scaleX"`
	ScaleY float64 `yaml:"scaleY"`
	// Alpha 每帧指数平滑系数
	Alpha float64 `yaml:"alpha"`
	// Amplitude / Frequency 中心球脉冲
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	// RingPeriod / RingGrowth 扩散环周期（秒）和最大增长
	RingPeriod float64 `yaml:"ringPeriod"`
	RingGrowth float64 `yaml:"ringGrowth"`
}

// DefaultPulseParams 默认参数
var DefaultPulseParams = PulseParams{
	ScaleX:     5,
	ScaleY:     3,
	Alpha:      0.1,
	Amplitude:  0.1,
	Frequency:  3,
	RingPeriod: 1.5,
	RingGrowth: 4,
}

// PulseFrame 一帧的装饰变换输出
type PulseFrame struct {
	GroupX, GroupY float64
	PulseScale     float64
	RingScale      float64
	RingOpacity    float64
}

// PulseRig 脉冲装饰组
// 跨帧保存的唯一状态是装饰组位置，其余输出只由 (t, nx, ny) 决定
type PulseRig struct {
	Params         PulseParams
	GroupX, GroupY float64
}

// NewPulseRig 创建脉冲装饰组（位于原点）
func NewPulseRig(params PulseParams) *PulseRig {
	return &PulseRig{Params: params}
}

// Advance 推进一帧
//
// 参数：
//   - t: 挂载以来经过的时间（秒）
//   - nx, ny: 归一化指针坐标 ∈ [-1, 1]（y 向上为正）
func (r *PulseRig) Advance(t, nx, ny float64) PulseFrame {
	p := r.Params
	r.GroupX = motion.ExpSmooth(r.GroupX, nx*p.ScaleX, p.Alpha)
	r.GroupY = motion.ExpSmooth(r.GroupY, ny*p.ScaleY, p.Alpha)

	ringScale, ringOpacity := motion.RingCycle(t, p.RingPeriod, p.RingGrowth)
	return PulseFrame{
		GroupX:      r.GroupX,
		GroupY:      r.GroupY,
		PulseScale:  motion.Pulse(t, p.Amplitude, p.Frequency),
		RingScale:   ringScale,
		RingOpacity: ringOpacity,
	}
}
