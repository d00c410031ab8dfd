package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
)

// CursorRenderSystem 绘制自定义光标（中心点 + 外环）
type CursorRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewCursorRenderSystem 创建光标渲染系统
func NewCursorRenderSystem(em *ecs.EntityManager) *CursorRenderSystem {
	return &CursorRenderSystem{entityManager: em}
}

// Draw 按实体 ID 顺序绘制所有光标图元
func (s *CursorRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[
		*components.CursorComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range entities {
		cursor, _ := ecs.GetComponent[*components.CursorComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		alpha := 1.0
		if op, ok := ecs.GetComponent[*components.OpacityComponent](s.entityManager, id); ok {
			alpha = op.Alpha
		}
		if alpha <= 0 {
			continue
		}
		scale := 1.0
		if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			scale = sc.ScaleX
		}

		clr := fadeColor(cursor.Color, alpha)
		radius := float32(cursor.Radius * scale)
		switch cursor.Kind {
		case components.CursorDot:
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, clr, true)
		case components.CursorRing:
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), radius, float32(cursor.StrokeWidth), clr, true)
		}
	}
}

// fadeColor 按透明度缩放颜色（预乘 alpha）
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
