package components

import "image/color"

// CursorKind 光标图元类型
type CursorKind int

const (
	// CursorDot 中心点，直接跟随指针
	CursorDot CursorKind = iota
	// CursorRing 外环，经弹簧平滑跟随
	CursorRing
)

// String 返回类型名
func (k CursorKind) String() string {
	switch k {
	case CursorDot:
		return "dot"
	case CursorRing:
		return "ring"
	default:
		return "unknown"
	}
}

// CursorComponent 自定义光标图元
type CursorComponent struct {
	Kind CursorKind

	// Radius 半径（像素）
	Radius float64

	// StrokeWidth 外环线宽，中心点忽略
	StrokeWidth float64

	Color color.RGBA
}
