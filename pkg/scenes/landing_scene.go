package scenes

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/interaction"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/systems"
	"github.com/decker502/portfolio/pkg/utils"
)

// 首页文案
const (
	landingBrand       = "PORTFOLIO / GEOFFREY CARTER"
	landingHeadline    = "Experience In"
	landingHeadlineEnd = " 3D"
	landingIntro       = "Frontend Developer specializing in high-performance Next.js, React, and Typescript applications and immersive 3D web experiences."
	landingHint        = "CLICK THE CUBE TO EXPLORE EXPERTISE"
	landingNoGPUHint   = "3D VIEW UNAVAILABLE ON THIS DEVICE"
	selectionBlurb     = "High-end solutions built with Three.js, Next.js, and Typescript for maximum engagement."
)

// 选中卡片布局
const (
	cardWidth   = 300.0
	cardPadding = 30.0
)

// LandingScene 首页：3×3×3 立方体导航
//
// 拖拽水平旋转立方体，点击某个面选中对应标签并弹出说明卡片；
// CLOSE 或 Esc 关闭卡片。没有 GPU 时显示静态说明文字代替立方体。
type LandingScene struct {
	ctx   *Context
	scope *game.Scope

	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem
	buttonRender  *systems.ButtonRenderSystem

	state interaction.State
	faces interaction.FaceTable

	hasGPU  bool
	camera  *render.Camera
	surface *render.VectorSurface
	cube    *systems.CubeSystem
	drag    *utils.DragTracker

	closeButton   ecs.EntityID
	inquireButton ecs.EntityID

	lastPickErr error
}

// NewLandingScene 创建首页场景
func NewLandingScene(ctx *Context) *LandingScene {
	return &LandingScene{ctx: ctx}
}

// OnEnter 挂载：创建立方体和按钮，注册帧回调
func (s *LandingScene) OnEnter() {
	s.scope = game.NewScope("landing")
	s.entityManager = ecs.NewEntityManager()
	s.buttonSystem = systems.NewButtonSystem(s.entityManager)
	s.buttonRender = systems.NewButtonRenderSystem(s.entityManager)
	s.faces = s.ctx.Config.FaceTable()
	s.drag = utils.NewDragTracker(utils.DefaultDragDeadZone)
	s.state.Reset()

	s.hasGPU = s.ctx.Capability().HasGPU
	if s.hasGPU {
		s.camera = render.NewCamera(render.V3(6, 6, 6), render.V3(0, 0, 0), 35)
		s.surface = render.NewVectorSurface(s.camera)
		rig := interaction.NewCubeRig(s.ctx.Config.Cube.CubeParams)
		s.cube = systems.NewCubeSystem(rig, s.surface, s.ctx.Config.FaceColors())
		s.scope.Track(s.ctx.Scheduler.Register("landing:cube", game.PriorityEffects, func(dt float64) {
			s.cube.Update(dt)
		}))
	} else {
		log.Printf("[LandingScene] no GPU, cube disabled")
	}

	s.closeButton = s.addButton(&components.ButtonComponent{
		Style:   components.ButtonLink,
		Text:    "CLOSE",
		Font:    utils.Font(utils.FontRegular, 11),
		Color:   mutedColor,
		Width:   44,
		Height:  16,
		Enabled: true,
		Hidden:  true,
		OnClick: s.dismiss,
	})
	s.inquireButton = s.addButton(&components.ButtonComponent{
		Style:   components.ButtonOutline,
		Text:    "INQUIRE NOW",
		Font:    utils.Font(utils.FontBold, 12),
		Color:   accentColor,
		Width:   180,
		Height:  44,
		Enabled: true,
		OnClick: func() { s.ctx.navigate(game.RouteContact) },
	})

	s.scope.Add(s.state.Reset)
	log.Printf("[LandingScene] entered (gpu=%v)", s.hasGPU)
}

// OnExit 卸载：释放所有帧回调并清空交互状态
func (s *LandingScene) OnExit() {
	s.scope.Close()
	s.cube = nil
	log.Printf("[LandingScene] exited")
}

func (s *LandingScene) addButton(button *components.ButtonComponent) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, button)
	s.entityManager.AddComponent(id, &components.PositionComponent{})
	return id
}

// Selected 当前选中的标签
func (s *LandingScene) Selected() (string, bool) {
	return s.state.Selected()
}

// HandlePick 处理一次拾取事件
func (s *LandingScene) HandlePick(ev interaction.PickEvent) error {
	if err := s.state.Pick(s.faces, ev); err != nil {
		s.lastPickErr = err
		return err
	}
	label, _ := s.state.Selected()
	log.Printf("[LandingScene] selected %q (face %d)", label, ev.FaceIndex)
	return nil
}

// LastPickError 最近一次拾取解析错误
func (s *LandingScene) LastPickError() error {
	return s.lastPickErr
}

func (s *LandingScene) dismiss() {
	if _, ok := s.state.Selected(); ok {
		s.state.Dismiss()
		log.Printf("[LandingScene] selection dismissed")
	}
}

// layout 根据屏幕尺寸放置按钮
func (s *LandingScene) layout() {
	w, h := s.ctx.ScreenSize()
	_, selected := s.state.Selected()

	if btn, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.closeButton); ok {
		btn.Hidden = !selected
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.closeButton); ok {
		x, y := s.cardOrigin(w, h)
		pos.X = x + cardPadding
		pos.Y = y + s.cardHeight() - cardPadding - 16
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.inquireButton); ok {
		pos.X = w - pageMargin - 180
		pos.Y = h - pageMargin - 44
	}
}

func (s *LandingScene) cardOrigin(w, h float64) (float64, float64) {
	return w - pageMargin - cardWidth, h * 0.25
}

func (s *LandingScene) cardHeight() float64 {
	lines := utils.WrapText(selectionBlurb, utils.Font(utils.FontRegular, 13), cardWidth-2*cardPadding)
	return cardPadding*2 + 24 + float64(len(lines))*18 + 20 + 16
}

// Update 处理输入：按钮、Esc、拖拽旋转和点击拾取
func (s *LandingScene) Update(deltaTime float64) {
	s.layout()
	buttonClicked := s.buttonSystem.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.dismiss()
	}

	if s.cube == nil {
		return
	}

	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, y = ebiten.TouchPosition(touches[0])
		pressed = true
	}

	// 按钮上的按下不参与拖拽
	if s.drag.State() == utils.DragStateNone && pressed && s.buttonSystem.HitTest(float64(x), float64(y)) {
		return
	}

	dx, clicked := s.drag.Update(pressed, x, y)
	if dx != 0 {
		s.cube.Orbit(float64(dx))
	}
	if clicked && !buttonClicked {
		if ev, hit := s.cube.Pick(s.camera, float64(x), float64(y)); hit {
			if err := s.HandlePick(ev); err != nil && !errors.Is(err, interaction.ErrInvalidPickIndex) {
				log.Printf("[LandingScene] pick failed: %v", err)
			}
		}
	}
}

// Draw 绘制首页
func (s *LandingScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w, h := s.ctx.ScreenSize()

	if s.cube != nil {
		s.surface.SetTarget(screen)
		s.cube.Submit()
	} else {
		utils.DrawTextCentered(screen, landingNoGPUHint, utils.Font(utils.FontRegular, 12), w/2, h/2, mutedColor)
	}

	utils.DrawText(screen, landingBrand, utils.Font(utils.FontBold, 12), pageMargin, pageMargin, textColor)
	s.drawIntro(screen, h)
	s.drawSelection(screen, w, h)
	s.buttonRender.Draw(screen)
}

func (s *LandingScene) drawIntro(screen *ebiten.Image, h float64) {
	headline := utils.Font(utils.FontRegular, 64)
	body := utils.Font(utils.FontRegular, 14)
	hint := utils.Font(utils.FontRegular, 10)

	bodyLines := utils.WrapText(landingIntro, body, 500)
	top := h*0.9 - 64 - 20 - float64(len(bodyLines))*22 - 30 - 14

	utils.DrawText(screen, landingHeadline, headline, pageMargin, top, textColor)
	utils.DrawText(screen, landingHeadlineEnd, headline, pageMargin+utils.MeasureTextWidth(landingHeadline, headline), top, accentColor)

	y := top + 64 + 20
	for _, line := range bodyLines {
		utils.DrawText(screen, line, body, pageMargin, y, mutedColor)
		y += 22
	}
	if s.hasGPU {
		utils.DrawText(screen, landingHint, hint, pageMargin, y+30, accentColor)
	}
}

func (s *LandingScene) drawSelection(screen *ebiten.Image, w, h float64) {
	label, ok := s.state.Selected()
	if !ok {
		return
	}
	x, y := s.cardOrigin(w, h)
	ch := s.cardHeight()
	vector.DrawFilledRect(screen, float32(x), float32(y), cardWidth, float32(ch), panelColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), cardWidth, float32(ch), 1, textColor, true)

	utils.DrawText(screen, label, utils.Font(utils.FontRegular, 18), x+cardPadding, y+cardPadding, accentColor)
	body := utils.Font(utils.FontRegular, 13)
	ty := y + cardPadding + 24 + 15
	for _, line := range utils.WrapText(selectionBlurb, body, cardWidth-2*cardPadding) {
		utils.DrawText(screen, line, body, x+cardPadding, ty, mutedColor)
		ty += 18
	}
}
