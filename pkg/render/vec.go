package render

import "github.com/chewxy/math32"

// Vec3 三维向量（float32）
type Vec3 struct {
	X, Y, Z float32
}

// V3 构造向量
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize 单位化，零向量原样返回
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Axis 按下标取分量（0=X, 1=Y, 2=Z）
func (v Vec3) Axis(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// RotateX 绕 X 轴旋转
func (v Vec3) RotateX(a float32) Vec3 {
	s, c := math32.Sin(a), math32.Cos(a)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY 绕 Y 轴旋转（右手系，正角度从 +Z 转向 +X）
func (v Vec3) RotateY(a float32) Vec3 {
	s, c := math32.Sin(a), math32.Cos(a)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// RotateZ 绕 Z 轴旋转
func (v Vec3) RotateZ(a float32) Vec3 {
	s, c := math32.Sin(a), math32.Cos(a)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// Rotate 按 Transform 约定的顺序应用欧拉角
func (v Vec3) Rotate(r Vec3) Vec3 {
	return v.RotateZ(r.Z).RotateX(r.X).RotateY(r.Y)
}
