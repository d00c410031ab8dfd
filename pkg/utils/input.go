// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenPointer 是基于 ebiten 的指针输入源
// 实现 pointer.Source 接口，只读取鼠标（触摸设备不挂载指针跟随效果）
type EbitenPointer struct{}

// CursorPosition 返回当前鼠标位置（逻辑屏幕坐标）
func (EbitenPointer) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// IsPressed 返回鼠标左键是否按下
func (EbitenPointer) IsPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// HasActiveTouch 检查当前是否有活动的触摸
// 一旦出现过触摸，设备检测会把该设备视为触摸设备
func HasActiveTouch() bool {
	return len(ebiten.AppendTouchIDs(nil)) > 0
}

// IsJustClicked 检查鼠标左键是否刚刚按下
// 返回是否点击以及点击位置
func IsJustClicked() (bool, int, int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// IsJustReleased 检查鼠标左键是否刚刚释放
// 返回是否释放以及释放位置
func IsJustReleased() (bool, int, int) {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// ============================================================================
// 拖拽状态管理器 - 用于立方体的轨道旋转（OrbitControls 的水平拖拽）
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStatePressed 已按下但尚未超过死区（松开时视为点击）
	DragStatePressed
	// DragStateDragging 拖拽中（按住移动且超过死区）
	DragStateDragging
)

// DefaultDragDeadZone 拖拽死区（像素），小于该距离的按下-释放视为点击
const DefaultDragDeadZone = 4

// DragTracker 拖拽跟踪器
// 由调用方每帧喂入指针状态，不直接读取 ebiten，便于测试
type DragTracker struct {
	state          DragState
	startX, startY int
	lastX, lastY   int
	deadZone       int
}

// NewDragTracker 创建拖拽跟踪器
func NewDragTracker(deadZone int) *DragTracker {
	return &DragTracker{deadZone: deadZone}
}

// Update 根据当前指针状态更新拖拽
// 返回：
//   - dx: 本帧水平拖拽增量（仅拖拽中非零）
//   - clicked: 本帧是否完成了一次点击（按下-释放且未超过死区）
func (d *DragTracker) Update(pressed bool, x, y int) (dx int, clicked bool) {
	switch d.state {
	case DragStateNone:
		if pressed {
			d.state = DragStatePressed
			d.startX, d.startY = x, y
			d.lastX, d.lastY = x, y
		}
	case DragStatePressed:
		if !pressed {
			d.state = DragStateNone
			return 0, true
		}
		if abs(x-d.startX) > d.deadZone || abs(y-d.startY) > d.deadZone {
			d.state = DragStateDragging
			dx = x - d.lastX
		}
		d.lastX, d.lastY = x, y
	case DragStateDragging:
		if !pressed {
			d.state = DragStateNone
			return 0, false
		}
		dx = x - d.lastX
		d.lastX, d.lastY = x, y
	}
	return dx, false
}

// State 获取当前拖拽状态
func (d *DragTracker) State() DragState {
	return d.state
}

// Reset 重置拖拽状态
func (d *DragTracker) Reset() {
	d.state = DragStateNone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
