package systems

import (
	"log"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
)

const cursorBlinkInterval = 0.5 // 光标闪烁间隔（秒）

// TextInputSystem 文本输入系统
// 处理输入框的焦点切换、键盘输入、光标闪烁，并把文本写回绑定的表单字段
type TextInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.FocusNext(ebiten.IsKeyPressed(ebiten.KeyShift))
	}

	for _, entityID := range s.inputs() {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		SyncFromTarget(input)

		// 只处理获得焦点的输入框
		if !input.IsFocused || input.Disabled {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)
		s.handleKeyboardInput(input)
	}
}

func (s *TextInputSystem) inputs() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager)
}

// HandleClick 点击聚焦：命中输入框时聚焦它，否则清除焦点
// 返回是否命中了某个输入框
func (s *TextInputSystem) HandleClick(x, y float64) bool {
	hit := false
	for _, id := range s.inputs() {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		focused := !hit && !input.Disabled && input.Contains(x, y)
		if focused {
			hit = true
			if !input.IsFocused {
				input.CursorPosition = len([]rune(input.Text))
			}
			showCursor(input)
		}
		input.IsFocused = focused
	}
	return hit
}

// Focus 聚焦指定字段
func (s *TextInputSystem) Focus(field string) {
	for _, id := range s.inputs() {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		input.IsFocused = input.Field == field && !input.Disabled
		if input.IsFocused {
			input.CursorPosition = len([]rune(input.Text))
			showCursor(input)
		}
	}
}

// Focused 返回当前聚焦的字段名
func (s *TextInputSystem) Focused() (string, bool) {
	for _, id := range s.inputs() {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if input.IsFocused {
			return input.Field, true
		}
	}
	return "", false
}

// FocusNext 按实体顺序循环切换焦点（Tab / Shift+Tab）
func (s *TextInputSystem) FocusNext(reverse bool) {
	var enabled []*components.TextInputComponent
	current := -1
	for _, id := range s.inputs() {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if input.Disabled {
			continue
		}
		if input.IsFocused {
			current = len(enabled)
		}
		enabled = append(enabled, input)
	}
	if len(enabled) == 0 {
		return
	}

	next := 0
	switch {
	case current >= 0 && reverse:
		next = (current - 1 + len(enabled)) % len(enabled)
	case current >= 0:
		next = (current + 1) % len(enabled)
	case reverse:
		next = len(enabled) - 1
	}
	s.Focus(enabled[next].Field)
}

// SetDisabled 批量设置输入框禁用状态，禁用时同时清除焦点
func (s *TextInputSystem) SetDisabled(disabled bool) {
	for _, id := range s.inputs() {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		input.Disabled = disabled
		if disabled {
			input.IsFocused = false
		}
	}
}

// SyncFromTarget 绑定字段被外部修改时，用字段值覆盖输入框文本
func SyncFromTarget(input *components.TextInputComponent) {
	if input.Target == nil || *input.Target == input.Text {
		return
	}
	input.Text = *input.Target
	if n := len([]rune(input.Text)); input.CursorPosition > n {
		input.CursorPosition = n
	}
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= cursorBlinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// keyRepeats 第1帧立即响应，按住半秒后每隔3帧响应一次
func keyRepeats(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	if runes := ebiten.AppendInputChars(nil); len(runes) > 0 {
		InsertText(input, string(runes))
		showCursor(input)
	}

	if input.Multiline && keyRepeats(ebiten.KeyEnter) {
		InsertText(input, "\n")
		showCursor(input)
	}
	if keyRepeats(ebiten.KeyBackspace) {
		DeleteCharBefore(input)
		showCursor(input)
	}
	if keyRepeats(ebiten.KeyDelete) {
		DeleteCharAfter(input)
		showCursor(input)
	}
	if keyRepeats(ebiten.KeyArrowLeft) && input.CursorPosition > 0 {
		input.CursorPosition--
		showCursor(input)
	}
	if keyRepeats(ebiten.KeyArrowRight) && input.CursorPosition < len([]rune(input.Text)) {
		input.CursorPosition++
		showCursor(input)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		input.CursorPosition = 0
		showCursor(input)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		input.CursorPosition = len([]rune(input.Text))
		showCursor(input)
	}
}

// showCursor 输入时光标保持可见
func showCursor(input *components.TextInputComponent) {
	input.CursorBlinkTimer = 0
	input.CursorVisible = true
}

// InsertText 在光标位置插入文本并写回绑定字段
// 控制字符被过滤（多行输入框保留换行）；超过最大长度时整段丢弃
func InsertText(input *components.TextInputComponent, s string) {
	var filtered []rune
	for _, r := range s {
		if r == '\n' && input.Multiline {
			filtered = append(filtered, r)
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) == 0 {
		return
	}

	textRunes := []rune(input.Text)
	if input.MaxLength > 0 && len(textRunes)+len(filtered) > input.MaxLength {
		log.Printf("[TextInputSystem] %s reached max length (%d)", input.Field, input.MaxLength)
		return
	}

	pos := clampCursor(input.CursorPosition, len(textRunes))
	result := make([]rune, 0, len(textRunes)+len(filtered))
	result = append(result, textRunes[:pos]...)
	result = append(result, filtered...)
	result = append(result, textRunes[pos:]...)

	input.CursorPosition = pos + len(filtered)
	setText(input, string(result))
}

// DeleteCharBefore 删除光标前的字符（退格）
func DeleteCharBefore(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	pos := clampCursor(input.CursorPosition, len(runes))
	if pos == 0 {
		return
	}
	input.CursorPosition = pos - 1
	setText(input, string(append(runes[:pos-1:pos-1], runes[pos:]...)))
}

// DeleteCharAfter 删除光标后的字符（Delete键）
func DeleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	pos := clampCursor(input.CursorPosition, len(runes))
	if pos >= len(runes) {
		return
	}
	setText(input, string(append(runes[:pos:pos], runes[pos+1:]...)))
}

func setText(input *components.TextInputComponent, s string) {
	input.Text = s
	if input.Target != nil {
		*input.Target = s
	}
}

func clampCursor(pos, n int) int {
	if pos < 0 {
		return 0
	}
	if pos > n {
		return n
	}
	return pos
}
