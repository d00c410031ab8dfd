package systems

import (
	"image/color"

	"github.com/decker502/portfolio/pkg/interaction"
	"github.com/decker502/portfolio/pkg/render"
)

// PulseSystem 联系页脉冲装饰：跟随指针的装饰组（核心球 + 扩散环）
//
// 每帧由 PulseRig 计算变换并写入绘制表面，不持有其他跨帧状态。
type PulseSystem struct {
	rig     *interaction.PulseRig
	surface render.Surface

	core render.PrimitiveID
	ring render.PrimitiveID
	halo render.PrimitiveID

	elapsed float64
	last    interaction.PulseFrame
}

var (
	pulseCoreColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pulseRingColor = color.RGBA{R: 180, G: 180, B: 190, A: 255}
)

// NewPulseSystem 创建脉冲装饰，并在表面上创建图元
func NewPulseSystem(rig *interaction.PulseRig, surface render.Surface) *PulseSystem {
	s := &PulseSystem{rig: rig, surface: surface}

	s.halo = surface.CreatePrimitive(render.PrimitiveSphere)
	surface.AttachMaterial(s.halo, render.Material{Color: pulseRingColor, Opacity: 0.08})

	s.core = surface.CreatePrimitive(render.PrimitiveSphere)
	surface.AttachMaterial(s.core, render.Material{Color: pulseCoreColor, Opacity: 1, Emissive: 0.2})

	s.ring = surface.CreatePrimitive(render.PrimitiveRing)
	surface.AttachMaterial(s.ring, render.Material{Color: pulseRingColor, Opacity: 1})
	return s
}

// Update 推进一帧；nx, ny 为归一化指针坐标（y 向上为正）
func (s *PulseSystem) Update(deltaTime, nx, ny float64) interaction.PulseFrame {
	s.elapsed += deltaTime
	frame := s.rig.Advance(s.elapsed, nx, ny)
	s.apply(frame)
	s.last = frame
	return frame
}

func (s *PulseSystem) apply(frame interaction.PulseFrame) {
	center := render.V3(float32(frame.GroupX), float32(frame.GroupY), 0)

	s.surface.SetTransform(s.core, render.Transform{
		Position: center,
		Scale:    float32(0.5 * frame.PulseScale),
	})
	s.surface.SetTransform(s.halo, render.Transform{
		Position: center,
		Scale:    float32(0.9 * frame.PulseScale),
	})
	s.surface.SetTransform(s.ring, render.Transform{
		Position: center,
		Scale:    float32(0.6 * frame.RingScale),
	})
	s.surface.AttachMaterial(s.ring, render.Material{
		Color:   pulseRingColor,
		Opacity: float32(frame.RingOpacity),
	})
}

// Frame 最近一帧的输出
func (s *PulseSystem) Frame() interaction.PulseFrame {
	return s.last
}

// Submit 提交当前帧
func (s *PulseSystem) Submit() {
	s.surface.SubmitFrame()
}
