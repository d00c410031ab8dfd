package scenes

import (
	"errors"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/contact"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/interaction"
	"github.com/decker502/portfolio/pkg/motion"
	"github.com/decker502/portfolio/pkg/pointer"
	"github.com/decker502/portfolio/pkg/render"
	"github.com/decker502/portfolio/pkg/systems"
	"github.com/decker502/portfolio/pkg/utils"
)

// 表单布局
const (
	formWidth       = 400.0
	formGap         = 25.0
	fieldHeight     = 40.0
	messageHeight   = 104.0
	sendHeight      = 54.0
	headingSize     = 42.0
	drawerPaddingX  = 40.0
	drawerPaddingY  = 80.0
	drawerRowHeight = 56.0
	drawerRowGap    = 30.0
	drawerFPS       = 60
)

// ContactScene 联系页
//
// 背景是跟随指针的脉冲装饰；左上角返回按钮和 RECENT PROJECTS 按钮；
// 项目抽屉由 harmonica 弹簧滑入，悬停条目时显示跟随指针的预览卡片；
// 中间是三字段联系表单，提交在后台进行，结果在帧循环上应用。
type ContactScene struct {
	ctx   *Context
	scope *game.Scope

	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem
	buttonRender  *systems.ButtonRenderSystem
	inputSystem   *systems.TextInputSystem
	inputRender   *systems.TextInputRenderSystem

	state interaction.State

	// 脉冲装饰（无 GPU 时为 nil）
	camera  *render.Camera
	surface *render.VectorSurface
	pulse   *systems.PulseSystem

	// 项目抽屉和悬停预览
	drawer       *motion.DrawerSpring
	projectRows  []ecs.EntityID
	drawerClose  ecs.EntityID
	sampler      *pointer.Sampler
	follow       *systems.PointerFollowSystem
	preview      *systems.HoverPreviewSystem
	previewMount *game.FrameHandle

	// 表单
	submitter  *contact.Submitter
	sendButton ecs.EntityID
	notice     string

	backButton     ecs.EntityID
	projectsButton ecs.EntityID
}

// NewContactScene 创建联系页场景
func NewContactScene(ctx *Context) *ContactScene {
	return &ContactScene{ctx: ctx}
}

// OnEnter 挂载：创建装饰、抽屉、表单，注册帧回调
func (s *ContactScene) OnEnter() {
	cfg := s.ctx.Config
	s.scope = game.NewScope("contact")
	s.entityManager = ecs.NewEntityManager()
	s.buttonSystem = systems.NewButtonSystem(s.entityManager)
	s.buttonRender = systems.NewButtonRenderSystem(s.entityManager)
	s.inputSystem = systems.NewTextInputSystem(s.entityManager)
	s.inputRender = systems.NewTextInputRenderSystem(s.entityManager, utils.Font(utils.FontRegular, 14), utils.Font(utils.FontRegular, 10))
	s.state.Reset()

	if s.ctx.Capability().HasGPU {
		s.camera = render.NewCamera(render.V3(0, 0, 10), render.V3(0, 0, 0), 35)
		s.surface = render.NewVectorSurface(s.camera)
		s.pulse = systems.NewPulseSystem(interaction.NewPulseRig(cfg.Pulse), s.surface)
		s.scope.Track(s.ctx.Scheduler.Register("contact:pulse", game.PriorityEffects, s.updatePulse))
	} else {
		log.Printf("[ContactScene] no GPU, pulse disabled")
	}

	s.drawer = motion.NewDrawerSpring(drawerFPS, cfg.Drawer.Spring)
	s.scope.Track(s.ctx.Scheduler.Register("contact:drawer", game.PriorityScene, func(float64) {
		s.drawer.Update()
	}))

	s.sampler = pointer.NewSampler("preview", 0, 0)
	s.follow = systems.NewPointerFollowSystem(s.entityManager, s.sampler)
	s.preview = systems.NewHoverPreviewSystem(s.entityManager, cfg.Preview)
	s.preview.Images = s.ctx.Images
	s.scope.Add(s.unmountPreview)

	s.submitter = contact.NewSubmitter(s.ctx.Sender)
	s.scope.Add(s.submitter.Close)

	s.createButtons(cfg.Projects)
	s.createInputs()
	s.scope.Add(s.state.Reset)
	log.Printf("[ContactScene] entered with %d projects", len(cfg.Projects))
}

// OnExit 卸载：取消进行中的提交，注销所有帧回调
func (s *ContactScene) OnExit() {
	s.scope.Close()
	log.Printf("[ContactScene] exited")
}

func (s *ContactScene) addButton(button *components.ButtonComponent) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, button)
	s.entityManager.AddComponent(id, &components.PositionComponent{})
	return id
}

func (s *ContactScene) createButtons(projects []config.ProjectEntry) {
	nav := utils.Font(utils.FontRegular, 12)
	s.backButton = s.addButton(&components.ButtonComponent{
		Style: components.ButtonOutline, Text: "←", Font: nav, Color: mutedColor,
		Width: 56, Height: 36, Enabled: true,
		OnClick: func() { s.ctx.navigate(game.RouteLanding) },
	})
	s.projectsButton = s.addButton(&components.ButtonComponent{
		Style: components.ButtonOutline, Text: "RECENT PROJECTS", Font: nav, Color: mutedColor,
		Width: 170, Height: 36, Enabled: true,
		OnClick: s.OpenDrawer,
	})
	s.sendButton = s.addButton(&components.ButtonComponent{
		Style: components.ButtonOutline, Text: "SEND MESSAGE", Font: utils.Font(utils.FontBold, 13), Color: accentColor,
		Width: formWidth, Height: sendHeight, Enabled: true,
		OnClick: s.submit,
	})

	s.drawerClose = s.addButton(&components.ButtonComponent{
		Style: components.ButtonLink, Text: "CLOSE", Font: utils.Font(utils.FontRegular, 10), Color: mutedColor,
		Width: 40, Height: 14, Enabled: true, Hidden: true,
		OnClick: s.CloseDrawer,
	})

	rowFont := utils.Font(utils.FontRegular, 20)
	for _, p := range projects {
		s.projectRows = append(s.projectRows, s.addButton(&components.ButtonComponent{
			Style:   components.ButtonRow,
			Text:    p.Name,
			Detail:  strings.ToUpper(p.Type) + " / " + p.Year,
			Font:    rowFont,
			Color:   textColor,
			Height:  drawerRowHeight,
			Enabled: true,
			Hidden:  true,
			OnClick: func() { s.openProject(p) },
			OnHoverEnter: func() {
				s.HoverProject(p.Image)
			},
			OnHoverLeave: func() {
				s.LeaveProject(p.Image)
			},
		}))
	}
}

func (s *ContactScene) createInputs() {
	form := s.submitter.Form()
	fields := []struct {
		field, placeholder string
		target             *string
		multiline          bool
		maxLength          int
	}{
		{contact.FieldName, "NAME", &form.Name, false, 0},
		{contact.FieldEmail, "EMAIL", &form.Email, false, 0},
		{contact.FieldMessage, "MESSAGE", &form.Message, true, contact.MaxMessageLength},
	}
	for _, f := range fields {
		height := fieldHeight
		if f.multiline {
			height = messageHeight
		}
		id := s.entityManager.CreateEntity()
		s.entityManager.AddComponent(id, &components.TextInputComponent{
			Field:       f.field,
			Target:      f.target,
			Placeholder: f.placeholder,
			Width:       formWidth,
			Height:      height,
			Multiline:   f.multiline,
			MaxLength:   f.maxLength,
			Padding:     12,
		})
	}
}

// OpenDrawer 展开项目抽屉
func (s *ContactScene) OpenDrawer() {
	s.drawer.Open()
	log.Printf("[ContactScene] project drawer opened")
}

// CloseDrawer 收起项目抽屉，立即移除预览
func (s *ContactScene) CloseDrawer() {
	s.drawer.Close()
	s.state.ClearHover()
	s.preview.Dismiss()
	log.Printf("[ContactScene] project drawer closed")
}

// DrawerOpen 抽屉是否处于展开状态
func (s *ContactScene) DrawerOpen() bool {
	return s.drawer.IsOpen()
}

// HoverProject 悬停项目条目：记录悬停并显示预览（替换当前预览，不排队）
func (s *ContactScene) HoverProject(imageID string) {
	s.state.Hover(imageID)
	s.preview.Show(imageID)
}

// LeaveProject 离开项目条目：只有仍悬停该条目时才隐藏
func (s *ContactScene) LeaveProject(imageID string) {
	s.state.Unhover(imageID)
	s.preview.HideImage(imageID)
}

// HoveredImage 当前悬停的项目图片
func (s *ContactScene) HoveredImage() (string, bool) {
	return s.state.HoveredImage()
}

// Submitter 表单提交器
func (s *ContactScene) Submitter() *contact.Submitter {
	return s.submitter
}

// Preview 悬停预览系统
func (s *ContactScene) Preview() *systems.HoverPreviewSystem {
	return s.preview
}

func (s *ContactScene) openProject(p config.ProjectEntry) {
	if p.URL == "" {
		return
	}
	if s.ctx.OpenURL == nil {
		log.Printf("[ContactScene] open %s", p.URL)
		return
	}
	if err := s.ctx.OpenURL(p.URL); err != nil {
		log.Printf("[ContactScene] failed to open %s: %v", p.URL, err)
	}
}

func (s *ContactScene) submit() {
	err := s.submitter.Submit()
	var verr *contact.ValidationError
	switch {
	case err == nil:
		s.notice = ""
	case errors.As(err, &verr):
		s.notice = strings.ToUpper(verr.Error())
		s.inputSystem.Focus(verr.Field)
	default:
		log.Printf("[ContactScene] submit rejected: %v", err)
	}
}

// syncPreviewMount 根据设备能力挂载或卸载预览采样器
func (s *ContactScene) syncPreviewMount() {
	capability := s.ctx.Capability()
	s.preview.SetEnabled(capability.PointerEffectsEnabled())
	if !capability.PointerEffectsEnabled() {
		s.unmountPreview()
		return
	}
	if s.previewMount != nil {
		return
	}
	if s.sampler.Attach(s.ctx.Scheduler, utils.EbitenPointer{}, capability) {
		s.previewMount = s.ctx.Scheduler.Register("contact:preview", game.PrioritySmoothing, func(dt float64) {
			s.follow.Update(dt)
			s.preview.Update(dt)
		})
	}
}

func (s *ContactScene) unmountPreview() {
	s.sampler.Detach()
	if s.previewMount != nil {
		s.previewMount.Unregister()
		s.previewMount = nil
	}
}

func (s *ContactScene) updatePulse(dt float64) {
	w, h := s.ctx.ScreenSize()
	x, y := ebiten.CursorPosition()
	nx := float64(x)/w*2 - 1
	ny := -(float64(y)/h*2 - 1)
	s.pulse.Update(dt, clampUnit(nx), clampUnit(ny))
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// formOrigin 表单左上角（标题顶部）
func (s *ContactScene) formOrigin() (float64, float64) {
	w, h := s.ctx.ScreenSize()
	total := headingSize + formGap + 2*(fieldHeight+formGap) + messageHeight + formGap + sendHeight + formGap + 16
	return (w - formWidth) / 2, (h - total) / 2
}

func (s *ContactScene) drawerX() float64 {
	w, _ := s.ctx.ScreenSize()
	return w - s.ctx.Config.Drawer.Width*s.drawer.Fraction()
}

// layout 每帧根据屏幕尺寸和抽屉位置放置按钮和输入框
func (s *ContactScene) layout() {
	place := func(id ecs.EntityID, x, y float64) {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			pos.X, pos.Y = x, y
		}
	}
	place(s.backButton, pageMargin, pageMargin)
	place(s.projectsButton, pageMargin+56+20, pageMargin)

	fx, fy := s.formOrigin()
	y := fy + headingSize + formGap
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		input.X, input.Y = fx, y
		y += input.Height + formGap
	}
	place(s.sendButton, fx, y)
	if btn, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.sendButton); ok {
		btn.Enabled = s.submitter.Status() != contact.StatusSending
	}

	hidden := s.drawer.Hidden()
	dx := s.drawerX()
	drawerWidth := s.ctx.Config.Drawer.Width
	if btn, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.drawerClose); ok {
		btn.Hidden = hidden || !s.drawer.IsOpen()
	}
	place(s.drawerClose, dx+drawerWidth-drawerPaddingX-40, pageMargin)

	rowY := drawerPaddingY + 40
	for _, id := range s.projectRows {
		if btn, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id); ok {
			btn.Hidden = hidden || !s.drawer.IsOpen()
			btn.Width = drawerWidth - 2*drawerPaddingX
			offset := 0.0
			if btn.State == components.UIHovered || btn.State == components.UIClicked {
				offset = 10
			}
			place(id, dx+drawerPaddingX+offset, rowY)
		}
		rowY += drawerRowHeight + drawerRowGap
	}
}

// Update 处理输入、应用提交结果
func (s *ContactScene) Update(deltaTime float64) {
	if s.submitter.Poll() {
		s.notice = ""
	}
	s.inputSystem.SetDisabled(s.submitter.Status() == contact.StatusSending)

	s.syncPreviewMount()
	s.layout()

	clicked := s.buttonSystem.Update(deltaTime)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !clicked {
		x, y := ebiten.CursorPosition()
		if !s.buttonSystem.HitTest(float64(x), float64(y)) {
			s.inputSystem.HandleClick(float64(x), float64(y))
			if s.drawer.IsOpen() && float64(x) < s.drawerX() {
				s.CloseDrawer()
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && s.drawer.IsOpen() {
		s.CloseDrawer()
	}
	s.inputSystem.Update(deltaTime)
}

// Draw 绘制联系页
func (s *ContactScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w, h := s.ctx.ScreenSize()

	if s.pulse != nil {
		s.surface.SetTarget(screen)
		s.pulse.Submit()
	} else {
		vector.StrokeCircle(screen, float32(w/2), float32(h/2), 40, 1, dimAccentColor, true)
	}

	s.drawForm(screen)
	for _, id := range []ecs.EntityID{s.backButton, s.projectsButton, s.sendButton} {
		s.buttonRender.DrawButton(screen, id)
	}
	s.drawDrawer(screen, h)
	s.preview.Draw(screen)
}

func (s *ContactScene) drawForm(screen *ebiten.Image) {
	fx, fy := s.formOrigin()
	heading := utils.Font(utils.FontRegular, headingSize)
	first, second := "The ", "Connection"
	total := utils.MeasureTextWidth(first+second, heading)
	x := fx + (formWidth-total)/2
	utils.DrawText(screen, first, heading, x, fy, textColor)
	utils.DrawText(screen, second, heading, x+utils.MeasureTextWidth(first, heading), fy, accentColor)

	s.inputRender.Draw(screen)

	status := s.submitter.Status().Message()
	if s.notice != "" {
		status = s.notice
	}
	if status != "" {
		_, sy := s.sendButtonBottom()
		clr := mutedColor
		if s.submitter.Status() == contact.StatusSuccess && s.notice == "" {
			clr = accentColor
		}
		utils.DrawTextCentered(screen, status, utils.Font(utils.FontRegular, 11), fx+formWidth/2, sy+12, clr)
	}
}

func (s *ContactScene) sendButtonBottom() (float64, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.sendButton)
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y + sendHeight
}

func (s *ContactScene) drawDrawer(screen *ebiten.Image, h float64) {
	if s.drawer.Hidden() {
		return
	}
	x := s.drawerX()
	width := s.ctx.Config.Drawer.Width
	vector.DrawFilledRect(screen, float32(x), 0, float32(width+40), float32(h), panelColor, false)
	vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, panelLineColor, false)
	utils.DrawText(screen, "ARCHIVE", utils.Font(utils.FontBold, 12), x+drawerPaddingX, drawerPaddingY, accentColor)

	s.buttonRender.DrawButton(screen, s.drawerClose)
	for _, id := range s.projectRows {
		s.buttonRender.DrawButton(screen, id)
	}
}
