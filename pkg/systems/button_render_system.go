package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体（边框按钮、文字按钮、列表行）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
// 用于需要精确控制渲染顺序的场景（如抽屉中的列表行）
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok || button.Hidden {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	clr := buttonColor(button)
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(button.Width), float32(button.Height)

	switch button.Style {
	case components.ButtonOutline:
		if button.State == components.UIHovered || button.State == components.UIClicked {
			// 悬停时反色填充
			vector.DrawFilledRect(screen, x, y, w, h, clr, true)
			s.drawLabel(screen, button.Text, button.Font, pos.X+button.Width/2, pos.Y+button.Height/2, text.AlignCenter, color.RGBA{A: 255})
			return
		}
		vector.StrokeRect(screen, x, y, w, h, 1, clr, true)
		s.drawLabel(screen, button.Text, button.Font, pos.X+button.Width/2, pos.Y+button.Height/2, text.AlignCenter, clr)

	case components.ButtonLink:
		s.drawLabel(screen, button.Text, button.Font, pos.X, pos.Y+button.Height/2, text.AlignStart, clr)
		if button.State == components.UIHovered {
			vector.StrokeLine(screen, x, y+h, x+w, y+h, 1, clr, true)
		}

	case components.ButtonRow:
		s.drawLabel(screen, button.Text, button.Font, pos.X, pos.Y+button.Height/2, text.AlignStart, clr)
		s.drawLabel(screen, button.Detail, button.Font, pos.X+button.Width, pos.Y+button.Height/2, text.AlignEnd, dimColor(clr))
		vector.StrokeLine(screen, x, y+h, x+w, y+h, 1, dimColor(clr), true)
	}
}

func (s *ButtonRenderSystem) drawLabel(screen *ebiten.Image, str string, font *text.GoTextFace, x, y float64, align text.Align, clr color.Color) {
	if str == "" || font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = align
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, font, op)
}

// buttonColor 根据状态调整按钮颜色
func buttonColor(button *components.ButtonComponent) color.RGBA {
	clr := button.Color
	if clr.A == 0 {
		clr = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	switch button.State {
	case components.UIDisabled:
		return fadeColor(clr, 0.35)
	case components.UINormal:
		if button.Style == components.ButtonRow || button.Style == components.ButtonLink {
			return fadeColor(clr, 0.75)
		}
	}
	return clr
}

func dimColor(c color.RGBA) color.RGBA {
	return fadeColor(c, 0.5)
}
