package components

import "github.com/decker502/portfolio/pkg/motion"

// HoverPreviewComponent 标记实体为悬停预览卡片（跟随指针的项目缩略图）
// 与 PositionComponent、PointerFollowComponent 配合使用，同一时间最多存在一个
type HoverPreviewComponent struct {
	// ImageID 当前显示的图片标识，悬停切换时原地替换
	ImageID string

	// Transition 淡入淡出 + 缩放过渡
	Transition motion.Transition

	// Width / Height 卡片尺寸（像素）
	Width, Height float64
}
