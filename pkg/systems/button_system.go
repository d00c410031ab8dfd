package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered，触发悬停进入/离开回调）
//   - 检测指针抬起（触发 OnClick 回调）
//   - 根据 Enabled / Hidden 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager

	// 触摸抬起时已拿不到位置，记录最后一次触摸位置
	lastTouchX, lastTouchY int
	touchIDs               []ebiten.TouchID
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 读取鼠标/触摸输入并更新按钮
// 返回本帧是否有按钮消费了点击
func (s *ButtonSystem) Update(deltaTime float64) bool {
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		s.lastTouchX, s.lastTouchY = ebiten.TouchPosition(s.touchIDs[0])
		x, y = s.lastTouchX, s.lastTouchY
		pressed = true
	} else if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		x, y = s.lastTouchX, s.lastTouchY
		released = true
	}

	return s.Process(float64(x), float64(y), pressed, released)
}

// Process 用给定的指针状态更新所有按钮，返回是否有按钮被点击
func (s *ButtonSystem) Process(x, y float64, pressed, released bool) bool {
	clicked := false
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		wasHovered := button.State == components.UIHovered || button.State == components.UIClicked

		if button.Hidden || !button.Enabled {
			if wasHovered && button.OnHoverLeave != nil {
				button.OnHoverLeave()
			}
			if button.Hidden {
				button.State = components.UINormal
			} else {
				button.State = components.UIDisabled
			}
			continue
		}

		isHovered := pointInRect(x, y, pos.X, pos.Y, button.Width, button.Height)
		switch {
		case isHovered && released:
			button.State = components.UIHovered
			if button.OnClick != nil {
				clicked = true
				button.OnClick()
			}
		case isHovered && pressed:
			button.State = components.UIClicked
		case isHovered:
			button.State = components.UIHovered
		default:
			button.State = components.UINormal
		}

		if isHovered && !wasHovered && button.OnHoverEnter != nil {
			button.OnHoverEnter()
		}
		if !isHovered && wasHovered && button.OnHoverLeave != nil {
			button.OnHoverLeave()
		}
	}
	return clicked
}

// HitTest 判断点是否落在任一可见且启用的按钮上
func (s *ButtonSystem) HitTest(x, y float64) bool {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if !button.Hidden && button.Enabled && pointInRect(x, y, pos.X, pos.Y, button.Width, button.Height) {
			return true
		}
	}
	return false
}

func pointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
