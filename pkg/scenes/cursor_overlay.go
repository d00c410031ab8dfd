package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/device"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/pointer"
	"github.com/decker502/portfolio/pkg/systems"
)

// ringPressScale 按下时外环的缩放
const ringPressScale = 0.8

// CursorOverlay 自定义光标覆盖层（中心点 + 外环）
//
// 跨页面常驻，由 App 持有。中心点直接使用指针位置，外环通过弹簧跟随。
// 触摸/小屏设备或用户关闭自定义光标时卸载采样器并恢复系统光标。
type CursorOverlay struct {
	cfg       config.CursorConfig
	scheduler *game.FrameScheduler
	source    pointer.Source

	entityManager *ecs.EntityManager
	sampler       *pointer.Sampler
	follow        *systems.PointerFollowSystem
	render        *systems.CursorRenderSystem

	ring       ecs.EntityID
	followTask *game.FrameHandle
	enabled    bool
	mounted    bool
}

// NewCursorOverlay 创建光标覆盖层（尚未挂载）
func NewCursorOverlay(cfg config.CursorConfig, scheduler *game.FrameScheduler, source pointer.Source) *CursorOverlay {
	em := ecs.NewEntityManager()
	sampler := pointer.NewSampler("cursor", 0, 0)
	o := &CursorOverlay{
		cfg:           cfg,
		scheduler:     scheduler,
		source:        source,
		entityManager: em,
		sampler:       sampler,
		follow:        systems.NewPointerFollowSystem(em, sampler),
		render:        systems.NewCursorRenderSystem(em),
		enabled:       true,
	}

	clr := cfg.Color.RGBA()
	dot := em.CreateEntity()
	em.AddComponent(dot, &components.PositionComponent{})
	em.AddComponent(dot, &components.PointerFollowComponent{Passthrough: true})
	em.AddComponent(dot, &components.CursorComponent{Kind: components.CursorDot, Radius: cfg.DotRadius, Color: clr})

	o.ring = em.CreateEntity()
	em.AddComponent(o.ring, &components.PositionComponent{})
	em.AddComponent(o.ring, &components.PointerFollowComponent{Spring: cfg.Spring})
	em.AddComponent(o.ring, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	em.AddComponent(o.ring, &components.CursorComponent{
		Kind:        components.CursorRing,
		Radius:      cfg.RingRadius,
		StrokeWidth: cfg.RingStroke,
		Color:       clr,
	})
	return o
}

// SetEnabled 用户偏好：是否显示自定义光标
func (o *CursorOverlay) SetEnabled(enabled bool) {
	o.enabled = enabled
}

// Enabled 用户偏好
func (o *CursorOverlay) Enabled() bool {
	return o.enabled
}

// Mounted 当前是否挂载
func (o *CursorOverlay) Mounted() bool {
	return o.mounted
}

// Sync 根据设备能力和用户偏好挂载或卸载
func (o *CursorOverlay) Sync(capability device.Capability) {
	want := o.enabled && capability.PointerEffectsEnabled()
	switch {
	case want && !o.mounted:
		o.mount(capability)
	case !want && o.mounted:
		o.Unmount()
	}
}

func (o *CursorOverlay) mount(capability device.Capability) {
	if !o.sampler.Attach(o.scheduler, o.source, capability) {
		return
	}
	o.followTask = o.scheduler.Register("cursor:follow", game.PrioritySmoothing, o.update)
	o.mounted = true
	if o.cfg.HideNative {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	log.Printf("[CursorOverlay] mounted")
}

// Unmount 卸载：注销所有帧回调并恢复系统光标，重复调用无副作用
func (o *CursorOverlay) Unmount() {
	if !o.mounted {
		return
	}
	o.sampler.Detach()
	o.followTask.Unregister()
	o.followTask = nil
	o.mounted = false
	if o.cfg.HideNative {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	log.Printf("[CursorOverlay] unmounted")
}

func (o *CursorOverlay) update(dt float64) {
	o.follow.Update(dt)
	if sc, ok := ecs.GetComponent[*components.ScaleComponent](o.entityManager, o.ring); ok {
		scale := 1.0
		if o.sampler.IsClicked() {
			scale = ringPressScale
		}
		sc.ScaleX, sc.ScaleY = scale, scale
	}
}

// RingPosition 外环当前位置
func (o *CursorOverlay) RingPosition() (float64, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](o.entityManager, o.ring)
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y
}

// Draw 绘制光标（在所有页面内容之上）
func (o *CursorOverlay) Draw(screen *ebiten.Image) {
	if !o.mounted || !o.sampler.HasSample() {
		return
	}
	o.render.Draw(screen)
}
