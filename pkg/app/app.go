// Package app 提供站点应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/contact"
	"github.com/decker502/portfolio/pkg/device"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/scenes"
	"github.com/decker502/portfolio/pkg/utils"
)

// gdataAppName 偏好设置的存储命名空间
const gdataAppName = "portfolio"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Page 启动页面路由（"/" 或 "/contact"），为空则恢复上次停留的页面
	Page string
	// SiteConfigPath 站点配置路径，为空时使用 config.SiteConfigPath
	SiteConfigPath string
}

// App 是站点应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	site         *config.SiteConfig
	sceneManager *game.SceneManager
	scheduler    *game.FrameScheduler
	detector     *device.Detector
	settings     *game.SettingsManager
	cursor       *scenes.CursorOverlay

	// pendingRoute 在本帧 Update 结束后生效的导航
	pendingRoute string

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化站点应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.SiteConfigPath
	if path == "" {
		path = config.SiteConfigPath
	}
	site, err := config.LoadSiteConfig(path)
	if err != nil {
		return nil, fmt.Errorf("站点配置加载失败: %w", err)
	}

	a := &App{
		site:         site,
		sceneManager: game.NewSceneManager(),
		scheduler:    game.NewFrameScheduler(),
		verbose:      cfg.Verbose,
	}

	a.detector = device.NewDetector(device.Options{
		Breakpoint: site.Breakpoint,
		IsMobile:   utils.IsMobile,
		HasTouch:   utils.HasActiveTouch,
		Probe:      device.ProbeGPU,
	})

	a.settings, _ = game.NewSettingsManager(openGdata())

	a.cursor = scenes.NewCursorOverlay(site.Cursor, a.scheduler, utils.EbitenPointer{})
	a.cursor.SetEnabled(a.settings.GetSettings().CursorEnabled)

	images := utils.NewImageCache(scenes.ProjectImageDir)
	ctx := &scenes.Context{
		Config:    site,
		Scheduler: a.scheduler,
		Navigator: a,
		Detector:  a.detector,
		Sender:    contact.NewClient(site.APIBase),
		Images:    images.Get,
		OpenURL:   utils.OpenURL,
	}

	a.sceneManager.Register(game.RouteLanding, func() game.Scene { return scenes.NewLandingScene(ctx) })
	a.sceneManager.Register(game.RouteContact, func() game.Scene { return scenes.NewContactScene(ctx) })
	a.sceneManager.OnNavigate(a.rememberPage)

	start := cfg.Page
	if start == "" {
		start = a.settings.GetSettings().LastPage
	}
	if err := a.sceneManager.Navigate(start); err != nil {
		log.Printf("[App] %v, falling back to %s", err, game.RouteLanding)
		if err := a.sceneManager.Navigate(game.RouteLanding); err != nil {
			return nil, err
		}
	}

	log.Printf("[App] Started on %s", a.sceneManager.CurrentPath())
	return a, nil
}

// openGdata 打开偏好存储，失败时返回 nil（仅内存设置）
func openGdata() *gdata.Manager {
	if err := utils.EnsureStorageDir(gdataAppName); err != nil {
		log.Printf("[App] Warning: %v", err)
	} else if root := utils.GetStoragePath(); root != "" {
		log.Printf("[App] storage root: %s", root)
	}
	manager, err := gdata.Open(gdata.Config{AppName: gdataAppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return manager
}

// Navigate 实现 game.Navigator
// 导航延迟到本帧 Update 结束后执行，避免在场景自己的 Update 中卸载它
func (a *App) Navigate(path string) error {
	for _, route := range a.sceneManager.Routes() {
		if route == path {
			a.pendingRoute = path
			return nil
		}
	}
	return fmt.Errorf("%w: %s", game.ErrUnknownRoute, path)
}

func (a *App) rememberPage(path string) {
	a.settings.SetLastPage(path)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// ToggleCursor 切换自定义光标并保存偏好
func (a *App) ToggleCursor() {
	enabled := !a.cursor.Enabled()
	a.cursor.SetEnabled(enabled)
	a.settings.SetCursorEnabled(enabled)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
	log.Printf("[App] Custom cursor enabled: %v", enabled)
}

// Update 更新站点逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.site.Window.Width, a.site.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.site.Window.Width, a.site.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// F9 切换自定义光标
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		a.ToggleCursor()
	}

	a.cursor.Sync(a.detector.Capability())

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.scheduler.Tick(deltaTime)
	a.sceneManager.Update(deltaTime)

	if a.pendingRoute != "" {
		route := a.pendingRoute
		a.pendingRoute = ""
		if err := a.sceneManager.Navigate(route); err != nil {
			log.Printf("[App] navigation failed: %v", err)
		}
	}
	return nil
}

// Draw 绘制当前页面和光标覆盖层
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
	a.cursor.Draw(screen)
}

// Layout 逻辑屏幕尺寸跟随窗口尺寸
// 同时把尺寸交给设备检测器，窗口跨过断点时光标和预览会被卸载或重新挂载
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.site.Window.Width, a.site.Window.Height
	}
	a.detector.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close 卸载当前页面和光标，保存偏好（窗口关闭后调用）
func (a *App) Close() {
	a.sceneManager.Close()
	a.cursor.Unmount()
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// SiteConfig 返回站点配置
func (a *App) SiteConfig() *config.SiteConfig {
	return a.site
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
