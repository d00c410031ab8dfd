package render

import (
	"github.com/chewxy/math32"

	"github.com/decker502/portfolio/pkg/interaction"
)

// faceIndex 面法线 → 材质下标：+X 0, -X 1, +Y 2, -Y 3, +Z 4, -Z 5
func faceIndex(axis int, positive bool) int {
	if positive {
		return axis * 2
	}
	return axis*2 + 1
}

// PickCube 拾取绕 Y 轴旋转 yaw、上下偏移 bob 的立方体外壳
//
// halfExtent 为外壳半边长。命中时返回入射面对应的材质下标；
// 未命中或射线起点在立方体内部时返回 false。
func PickCube(cam *Camera, yaw, bob, halfExtent, sx, sy float32) (interaction.PickEvent, bool) {
	origin, dir := cam.Ray(sx, sy)

	// 变换到立方体局部坐标系
	center := V3(0, bob, 0)
	lo := origin.Sub(center).RotateY(-yaw)
	ld := dir.RotateY(-yaw)

	tNear := math32.Inf(-1)
	tFar := math32.Inf(1)
	hitAxis := -1

	for axis := 0; axis < 3; axis++ {
		o := lo.Axis(axis)
		d := ld.Axis(axis)
		if math32.Abs(d) < 1e-8 {
			if o < -halfExtent || o > halfExtent {
				return interaction.PickEvent{}, false
			}
			continue
		}
		t1 := (-halfExtent - o) / d
		t2 := (halfExtent - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
			hitAxis = axis
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return interaction.PickEvent{}, false
		}
	}

	if hitAxis < 0 || tNear < 0 {
		return interaction.PickEvent{}, false
	}

	// 射线沿负方向进入的面，其法线朝正方向
	positive := ld.Axis(hitAxis) < 0
	return interaction.PickEvent{FaceIndex: faceIndex(hitAxis, positive)}, true
}
