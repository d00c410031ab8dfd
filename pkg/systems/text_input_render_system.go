package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/utils"
)

var (
	inputTextColor        = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	inputPlaceholderColor = color.RGBA{R: 110, G: 110, B: 115, A: 255}
	inputLabelColor       = color.RGBA{R: 150, G: 150, B: 155, A: 255}
	inputBorderColor      = color.RGBA{R: 70, G: 70, B: 75, A: 255}
	inputFocusColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制标签、下划线边框、文本（多行时自动折行）和光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace
	labelFont     *text.GoTextFace
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager, font, labelFont *text.GoTextFace) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
		font:          font,
		labelFont:     labelFont,
	}
}

// Draw 绘制所有文本输入框
func (s *TextInputRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		s.DrawInputBox(screen, input)
	}
}

// DrawInputBox 绘制单个输入框
func (s *TextInputRenderSystem) DrawInputBox(screen *ebiten.Image, input *components.TextInputComponent) {
	x, y := input.X, input.Y
	if input.Label != "" && s.labelFont != nil {
		utils.DrawText(screen, input.Label, s.labelFont, x, y-s.labelFont.Size*1.6, inputLabelColor)
	}

	border := inputBorderColor
	if input.IsFocused {
		border = inputFocusColor
	}
	if input.Multiline {
		vector.StrokeRect(screen, float32(x), float32(y), float32(input.Width), float32(input.Height), 1, border, true)
	} else {
		vector.StrokeLine(screen, float32(x), float32(y+input.Height), float32(x+input.Width), float32(y+input.Height), 1, border, true)
	}

	textX := x + input.Padding
	textY := y + input.Padding
	innerWidth := input.Width - 2*input.Padding

	if input.Text == "" {
		if !input.IsFocused {
			utils.DrawText(screen, input.Placeholder, s.font, textX, textY, inputPlaceholderColor)
		}
	} else {
		s.drawLines(screen, input, textX, textY, innerWidth)
	}

	if input.IsFocused && input.CursorVisible {
		s.drawCursor(screen, input, textX, textY, innerWidth)
	}
}

func (s *TextInputRenderSystem) drawLines(screen *ebiten.Image, input *components.TextInputComponent, x, y, width float64) {
	if !input.Multiline {
		utils.DrawText(screen, input.Text, s.font, x, y, inputTextColor)
		return
	}
	lineHeight := s.lineHeight()
	maxLines := int((input.Height - 2*input.Padding) / lineHeight)
	lines := utils.WrapText(input.Text, s.font, width)
	// 超出高度时显示末尾几行
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	for i, line := range lines {
		utils.DrawText(screen, line, s.font, x, y+float64(i)*lineHeight, inputTextColor)
	}
}

func (s *TextInputRenderSystem) lineHeight() float64 {
	if s.font == nil {
		return 16
	}
	return s.font.Size * 1.4
}

// drawCursor 绘制光标（光标在第 N 个字符后面）
func (s *TextInputRenderSystem) drawCursor(screen *ebiten.Image, input *components.TextInputComponent, x, y, width float64) {
	if s.font == nil {
		return
	}
	runes := []rune(input.Text)
	before := string(runes[:clampCursor(input.CursorPosition, len(runes))])

	cursorX, cursorY := x, y
	if input.Multiline {
		lines := utils.WrapText(before, s.font, width)
		maxLines := int((input.Height - 2*input.Padding) / s.lineHeight())
		row := len(lines) - 1
		if maxLines > 0 && row >= maxLines {
			row = maxLines - 1
		}
		cursorX += utils.MeasureTextWidth(lines[len(lines)-1], s.font)
		cursorY += float64(row) * s.lineHeight()
	} else {
		cursorX += utils.MeasureTextWidth(before, s.font)
	}

	vector.DrawFilledRect(screen, float32(cursorX), float32(cursorY), 2, float32(s.font.Size*1.2), inputFocusColor, false)
}
