package render

import "github.com/chewxy/math32"

// nearPlane 近裁剪距离
const nearPlane = 0.05

// Camera 透视相机
type Camera struct {
	Position Vec3
	Target   Vec3
	// FovY 垂直视野（度）
	FovY float32

	width, height float32
}

// NewCamera 创建相机，视口默认 1×1，使用前需调用 SetViewport
func NewCamera(position, target Vec3, fovY float32) *Camera {
	return &Camera{Position: position, Target: target, FovY: fovY, width: 1, height: 1}
}

// SetViewport 设置视口尺寸（像素）
func (c *Camera) SetViewport(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width = float32(width)
	c.height = float32(height)
}

// Viewport 返回视口尺寸
func (c *Camera) Viewport() (float32, float32) {
	return c.width, c.height
}

// basis 返回相机的前、右、上方向
func (c *Camera) basis() (forward, right, up Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(V3(0, 1, 0)).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

func (c *Camera) tanHalfFov() float32 {
	return math32.Tan(c.FovY * math32.Pi / 360)
}

// Project 把世界坐标投影到屏幕坐标
// depth 为沿视线方向的距离；点在近裁剪面之后时 ok 为 false
func (c *Camera) Project(p Vec3) (sx, sy, depth float32, ok bool) {
	forward, right, up := c.basis()
	d := p.Sub(c.Position)
	depth = d.Dot(forward)
	if depth <= nearPlane {
		return 0, 0, depth, false
	}

	t := c.tanHalfFov()
	aspect := c.width / c.height
	ndcX := d.Dot(right) / (depth * t * aspect)
	ndcY := d.Dot(up) / (depth * t)

	sx = (ndcX + 1) / 2 * c.width
	sy = (1 - ndcY) / 2 * c.height
	return sx, sy, depth, true
}

// PixelsPerUnit 给定深度处一个世界单位对应的像素数
func (c *Camera) PixelsPerUnit(depth float32) float32 {
	if depth <= nearPlane {
		return 0
	}
	return c.height / (2 * depth * c.tanHalfFov())
}

// Ray 由屏幕坐标生成世界空间射线（方向已单位化）
func (c *Camera) Ray(sx, sy float32) (origin, dir Vec3) {
	forward, right, up := c.basis()
	t := c.tanHalfFov()
	aspect := c.width / c.height

	ndcX := 2*sx/c.width - 1
	ndcY := 1 - 2*sy/c.height

	dir = forward.
		Add(right.Mul(ndcX * t * aspect)).
		Add(up.Mul(ndcY * t)).
		Normalize()
	return c.Position, dir
}
