package motion

import "github.com/decker502/portfolio/pkg/utils"

// Transition 淡入淡出 + 缩放过渡（悬停预览卡片使用）
//
// 进度 progress ∈ [0, 1]，按 duration 线性推进，输出经 EaseOutCubic 缓动：
//   - Opacity: 0 → 1
//   - Scale:   MinScale → 1
//
// 过渡可以在中途反向，不会跳变。
type Transition struct {
	Duration float64
	MinScale float64

	progress float64
	entering bool
}

// NewTransition 创建过渡（初始为完全隐藏）
func NewTransition(duration, minScale float64) Transition {
	return Transition{Duration: duration, MinScale: minScale}
}

// In 开始淡入
func (tr *Transition) In() {
	tr.entering = true
}

// Out 开始淡出
func (tr *Transition) Out() {
	tr.entering = false
}

// Update 推进过渡
func (tr *Transition) Update(dt float64) {
	if tr.Duration <= 0 {
		if tr.entering {
			tr.progress = 1
		} else {
			tr.progress = 0
		}
		return
	}
	step := dt / tr.Duration
	if tr.entering {
		tr.progress = utils.Clamp01(tr.progress + step)
	} else {
		tr.progress = utils.Clamp01(tr.progress - step)
	}
}

// Entering 是否处于淡入方向
func (tr Transition) Entering() bool {
	return tr.entering
}

// Visible 是否仍需绘制（淡入中、完全显示或尚未淡出完毕）
func (tr Transition) Visible() bool {
	return tr.entering || tr.progress > 0
}

// Progress 原始线性进度
func (tr Transition) Progress() float64 {
	return tr.progress
}

// Opacity 当前不透明度
func (tr Transition) Opacity() float64 {
	return utils.EaseOutCubic(tr.progress)
}

// Scale 当前缩放
func (tr Transition) Scale() float64 {
	return utils.Lerp(tr.MinScale, 1, utils.EaseOutCubic(tr.progress))
}
