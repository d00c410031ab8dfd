// Package render 定义装饰场景与绘制后端之间的边界
//
// 场景逻辑只计算图元的变换和材质，由 Surface 实现负责真正的绘制：
// VectorSurface 使用 ebiten 绘制到屏幕，Recorder 只记录提交的帧。
package render

import "image/color"

// PrimitiveKind 图元类型
type PrimitiveKind int

const (
	PrimitiveCube PrimitiveKind = iota
	PrimitiveSphere
	PrimitiveRing
)

// String 返回图元类型名
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveCube:
		return "cube"
	case PrimitiveSphere:
		return "sphere"
	case PrimitiveRing:
		return "ring"
	default:
		return "unknown"
	}
}

// PrimitiveID 图元句柄，由 Surface 分配
type PrimitiveID int

// Transform 图元变换
//
// Rotation 为欧拉角（弧度），依次按 Z、X、Y 轴作用于顶点。
// Scale 为统一缩放：立方体为边长，球为半径，环为半径。
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    float32
}

// Material 图元材质
// 立方体的 FaceColors 有 6 个元素时按材质下标（+X, -X, +Y, -Y, +Z, -Z）逐面着色
type Material struct {
	Color      color.RGBA
	FaceColors []color.RGBA
	Opacity    float32
	Emissive   float32
}

// FaceColor 返回第 i 个面的颜色
func (m Material) FaceColor(i int) color.RGBA {
	if len(m.FaceColors) == 6 && i >= 0 && i < 6 {
		return m.FaceColors[i]
	}
	return m.Color
}

// Surface 绘制表面
type Surface interface {
	CreatePrimitive(kind PrimitiveKind) PrimitiveID
	SetTransform(id PrimitiveID, t Transform)
	AttachMaterial(id PrimitiveID, m Material)
	SubmitFrame()
}
