package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonStyle 定义按钮的渲染样式
type ButtonStyle int

const (
	// ButtonOutline 带边框的按钮（INQUIRE NOW、SEND）
	ButtonOutline ButtonStyle = iota
	// ButtonLink 纯文字按钮（返回、CLOSE、RECENT PROJECTS）
	ButtonLink
	// ButtonRow 列表行：左侧主文字，右侧次要文字，底部分隔线（项目列表）
	ButtonRow
)

// ButtonComponent 按钮组件（纯数据）
// 位置由 PositionComponent 提供（左上角）
type ButtonComponent struct {
	Style ButtonStyle

	// Text 按钮文字；Detail 为 ButtonRow 右侧的次要文字
	Text   string
	Detail string
	Font   *text.GoTextFace
	Color  color.RGBA

	Width  float64
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Hidden 隐藏时既不绘制也不响应（如收起的抽屉中的列表行）
	Hidden bool

	// OnClick 点击回调（指针在按钮内抬起时触发）
	OnClick func()
	// OnHoverEnter / OnHoverLeave 悬停进入和离开回调（可选）
	OnHoverEnter func()
	OnHoverLeave func()
}
