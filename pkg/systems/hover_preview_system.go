package systems

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/motion"
	"github.com/decker502/portfolio/pkg/utils"
)

// ImageResolver 根据图片标识返回预览图，返回 nil 时绘制占位卡片
type ImageResolver func(imageID string) *ebiten.Image

// HoverPreviewSystem 悬停预览定位
//
// 同一时间最多一个预览实体：悬停新条目时原地替换图片标识，不排队；
// 结束悬停时淡出，淡出完成后销毁实体。触摸/小屏设备上禁用。
type HoverPreviewSystem struct {
	entityManager *ecs.EntityManager
	config        config.PreviewConfig
	enabled       bool

	previewID ecs.EntityID
	hasEntity bool

	Images ImageResolver
}

// NewHoverPreviewSystem 创建悬停预览系统（默认启用）
func NewHoverPreviewSystem(em *ecs.EntityManager, cfg config.PreviewConfig) *HoverPreviewSystem {
	return &HoverPreviewSystem{
		entityManager: em,
		config:        cfg,
		enabled:       true,
	}
}

// SetEnabled 设置是否启用，禁用时立即移除预览
func (s *HoverPreviewSystem) SetEnabled(enabled bool) {
	if s.enabled == enabled {
		return
	}
	s.enabled = enabled
	if !enabled {
		s.Dismiss()
	}
}

// Enabled 是否启用
func (s *HoverPreviewSystem) Enabled() bool {
	return s.enabled
}

// Show 显示图片 imageID 的预览
// 已有预览时替换其图片（正在淡出的预览会重新淡入）；禁用时返回 false
func (s *HoverPreviewSystem) Show(imageID string) bool {
	if !s.enabled {
		return false
	}

	if preview, ok := s.preview(); ok {
		if preview.ImageID != imageID {
			log.Printf("[HoverPreview] swap %s -> %s", preview.ImageID, imageID)
		}
		preview.ImageID = imageID
		preview.Transition.In()
		return true
	}

	id := s.entityManager.CreateEntity()
	tr := motion.NewTransition(s.config.Duration, s.config.MinScale)
	tr.In()
	s.entityManager.AddComponent(id, &components.HoverPreviewComponent{
		ImageID:    imageID,
		Transition: tr,
		Width:      s.config.Width,
		Height:     s.config.Height,
	})
	s.entityManager.AddComponent(id, &components.PositionComponent{})
	s.entityManager.AddComponent(id, &components.PointerFollowComponent{
		Spring: s.config.Spring,
		BiasX:  s.config.BiasX,
		BiasY:  s.config.BiasY,
	})
	s.entityManager.AddComponent(id, &components.ScaleComponent{ScaleX: tr.Scale(), ScaleY: tr.Scale()})
	s.entityManager.AddComponent(id, &components.OpacityComponent{Alpha: tr.Opacity()})

	s.previewID = id
	s.hasEntity = true
	log.Printf("[HoverPreview] show %s (entity %d)", imageID, id)
	return true
}

// Hide 结束悬停：开始淡出
func (s *HoverPreviewSystem) Hide() {
	if preview, ok := s.preview(); ok {
		preview.Transition.Out()
	}
}

// HideImage 只有当前显示的仍是 imageID 时才淡出
// 用于条目的 mouse-leave 晚于下一个条目的 mouse-enter 的情况
func (s *HoverPreviewSystem) HideImage(imageID string) {
	if preview, ok := s.preview(); ok && preview.ImageID == imageID {
		preview.Transition.Out()
	}
}

// Dismiss 列表关闭：立即移除预览
func (s *HoverPreviewSystem) Dismiss() {
	if !s.hasEntity {
		return
	}
	s.entityManager.DestroyEntity(s.previewID)
	s.entityManager.RemoveMarkedEntities()
	s.hasEntity = false
	log.Printf("[HoverPreview] dismissed")
}

// Current 返回当前预览的图片标识和是否可见
func (s *HoverPreviewSystem) Current() (string, bool) {
	preview, ok := s.preview()
	if !ok || !preview.Transition.Visible() {
		return "", false
	}
	return preview.ImageID, true
}

// PreviewEntity 返回预览实体
func (s *HoverPreviewSystem) PreviewEntity() (ecs.EntityID, bool) {
	return s.previewID, s.hasEntity
}

func (s *HoverPreviewSystem) preview() (*components.HoverPreviewComponent, bool) {
	if !s.hasEntity {
		return nil, false
	}
	return ecs.GetComponent[*components.HoverPreviewComponent](s.entityManager, s.previewID)
}

// Update 推进过渡，淡出完成后销毁实体
func (s *HoverPreviewSystem) Update(deltaTime float64) {
	preview, ok := s.preview()
	if !ok {
		return
	}

	preview.Transition.Update(deltaTime)
	if !preview.Transition.Visible() {
		s.Dismiss()
		return
	}

	if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, s.previewID); ok {
		sc.ScaleX = preview.Transition.Scale()
		sc.ScaleY = preview.Transition.Scale()
	}
	if op, ok := ecs.GetComponent[*components.OpacityComponent](s.entityManager, s.previewID); ok {
		op.Alpha = preview.Transition.Opacity()
	}
}

var previewPlaceholder = color.RGBA{R: 28, G: 28, B: 32, A: 255}

// Draw 绘制预览卡片，卡片以位置为左上角，围绕中心缩放
func (s *HoverPreviewSystem) Draw(screen *ebiten.Image) {
	preview, ok := s.preview()
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.previewID)
	if !ok {
		return
	}

	scale := preview.Transition.Scale()
	alpha := preview.Transition.Opacity()
	if alpha <= 0 {
		return
	}

	w := preview.Width * scale
	h := preview.Height * scale
	x := pos.X + (preview.Width-w)/2
	y := pos.Y + (preview.Height-h)/2

	if s.Images != nil {
		if img := s.Images(preview.ImageID); img != nil {
			b := img.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
			op.GeoM.Translate(x, y)
			op.ColorScale.ScaleAlpha(float32(alpha))
			screen.DrawImage(img, op)
			return
		}
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fadeColor(previewPlaceholder, alpha), true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, fadeColor(color.RGBA{255, 255, 255, 255}, alpha*0.4), true)
	utils.DrawText(screen, preview.ImageID, utils.Font(utils.FontRegular, 12), x+12, y+h-24, fadeColor(color.RGBA{255, 255, 255, 255}, alpha*0.7))
}
