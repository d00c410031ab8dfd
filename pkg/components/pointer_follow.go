package components

import "github.com/decker502/portfolio/pkg/motion"

// PointerFollowComponent 指针跟随组件
//
// 每帧以指针采样为目标推进弹簧，结果写回 PositionComponent。
// Passthrough 为 true 时不做平滑，直接使用采样位置（光标中心点）。
type PointerFollowComponent struct {
	// Spring 弹簧参数（Passthrough 时忽略）
	Spring motion.SpringConfig

	// Passthrough 直接跟随，不经过弹簧
	Passthrough bool

	// BiasX / BiasY 目标偏移（像素），叠加在采样位置上
	BiasX, BiasY float64

	// State 弹簧状态（每个实体独立）
	State motion.SmoothedPosition

	// Primed 是否已用第一次采样初始化
	Primed bool
}
