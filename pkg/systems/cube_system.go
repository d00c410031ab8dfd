package systems

import (
	"image/color"

	"github.com/decker502/portfolio/pkg/interaction"
	"github.com/decker502/portfolio/pkg/render"
)

// CubeSystem 首页 3×3×3 立方体
type CubeSystem struct {
	rig     *interaction.CubeRig
	surface render.Surface

	cubelets [][3]float64
	ids      []render.PrimitiveID

	elapsed float64
	last    interaction.CubeFrame
}

var cubeletColor = color.RGBA{R: 30, G: 30, B: 34, A: 255}

// NewCubeSystem 创建立方体，每个小方块一个图元
// faceColors 按材质下标给六个面着色，为空时使用统一颜色
func NewCubeSystem(rig *interaction.CubeRig, surface render.Surface, faceColors []color.RGBA) *CubeSystem {
	s := &CubeSystem{
		rig:      rig,
		surface:  surface,
		cubelets: interaction.Cubelets(),
	}
	s.ids = make([]render.PrimitiveID, len(s.cubelets))
	for i := range s.cubelets {
		s.ids[i] = surface.CreatePrimitive(render.PrimitiveCube)
		surface.AttachMaterial(s.ids[i], render.Material{
			Color:      cubeletColor,
			FaceColors: faceColors,
			Opacity:    1,
			Emissive:   0.05,
		})
	}
	return s
}

// Update 推进一帧并写入所有小方块的变换
func (s *CubeSystem) Update(deltaTime float64) interaction.CubeFrame {
	s.elapsed += deltaTime
	frame := s.rig.Advance(s.elapsed, deltaTime)

	yaw := float32(frame.Yaw)
	bob := render.V3(0, float32(frame.BobY), 0)
	size := float32(s.rig.Params.CubeletSize)

	for i, off := range s.cubelets {
		local := render.V3(float32(off[0]), float32(off[1]), float32(off[2]))
		s.surface.SetTransform(s.ids[i], render.Transform{
			Position: local.RotateY(yaw).Add(bob),
			Rotation: render.V3(0, yaw, 0),
			Scale:    size,
		})
	}
	s.last = frame
	return frame
}

// Orbit 用户水平拖拽
func (s *CubeSystem) Orbit(dxPixels float64) {
	s.rig.Orbit(dxPixels)
}

// Frame 最近一帧
func (s *CubeSystem) Frame() interaction.CubeFrame {
	return s.last
}

// Pick 拾取屏幕坐标处的立方体面
func (s *CubeSystem) Pick(camera *render.Camera, sx, sy float64) (interaction.PickEvent, bool) {
	return render.PickCube(camera,
		float32(s.last.Yaw), float32(s.last.BobY),
		float32(s.rig.Params.HalfExtent()),
		float32(sx), float32(sy))
}

// Submit 提交当前帧
func (s *CubeSystem) Submit() {
	s.surface.SubmitFrame()
}
