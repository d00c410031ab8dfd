package utils

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontWeight 字重
type FontWeight int

const (
	FontRegular FontWeight = iota
	FontBold
)

var (
	fontSources = map[FontWeight]*text.GoTextFaceSource{}
	fontFaces   = map[string]*text.GoTextFace{}
)

// Font 返回指定字重和字号的字体（按字号缓存）
func Font(weight FontWeight, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%d:%.1f", weight, size)
	if face, ok := fontFaces[cacheKey]; ok {
		return face
	}

	source, ok := fontSources[weight]
	if !ok {
		data := goregular.TTF
		if weight == FontBold {
			data = gobold.TTF
		}
		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			log.Printf("[Font] failed to load font source: %v", err)
			return nil
		}
		fontSources[weight] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fontFaces[cacheKey] = face
	return face
}

// DrawText 以左上角为锚点绘制文本
func DrawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if s == "" || face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = face.Size * 1.4
	text.Draw(dst, s, face, op)
}

// DrawTextCentered 以 (cx, y) 为上边中点绘制文本
func DrawTextCentered(dst *ebiten.Image, s string, face *text.GoTextFace, cx, y float64, clr color.Color) {
	DrawText(dst, s, face, cx-MeasureTextWidth(s, face)/2, y, clr)
}

// WrapText 将文本按指定宽度自动换行
//
// 换行规则:
//   - 保留文本中原有的换行
//   - 在空格处断行，单词本身超宽时按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, font, maxWidth)...)
	}
	return lines
}

func wrapParagraph(paragraph string, font *text.GoTextFace, maxWidth float64) []string {
	if MeasureTextWidth(paragraph, font) <= maxWidth {
		return []string{paragraph}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(paragraph) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if MeasureTextWidth(candidate, font) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		// 单词本身超宽
		for MeasureTextWidth(word, font) > maxWidth {
			cut := fitRunes(word, font, maxWidth)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" || len(lines) == 0 {
		lines = append(lines, current)
	}
	return lines
}

// fitRunes 返回 s 中不超过 maxWidth 的最长前缀的字节长度（至少一个字符）
func fitRunes(s string, font *text.GoTextFace, maxWidth float64) int {
	end := 0
	for i, r := range s {
		next := i + len(string(r))
		if end > 0 && MeasureTextWidth(s[:next], font) > maxWidth {
			break
		}
		end = next
	}
	return end
}

// MeasureTextWidth 测量文本宽度
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
