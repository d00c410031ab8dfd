package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/contact"
	"github.com/decker502/portfolio/pkg/device"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/systems"
)

// Scene is a type alias for game.Scene to allow scenes package to use the interface
// without creating circular dependencies
type Scene = game.Scene

// ProjectImageDir 项目预览图目录
const ProjectImageDir = "data/projects"

// 页面配色
var (
	backgroundColor = color.RGBA{R: 0x05, G: 0x05, B: 0x05, A: 0xFF}
	accentColor     = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF}
	textColor       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	mutedColor      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	panelColor      = color.RGBA{R: 0x0A, G: 0x0A, B: 0x0A, A: 0xF2}
	panelLineColor  = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	dimAccentColor  = color.RGBA{R: 0x28, G: 0x3E, B: 0x46, A: 0x4C}
)

// pageMargin 页面边距（像素）
const pageMargin = 40.0

// Context 场景共享的宿主服务
// 由 App 创建一次，所有场景实例共享；场景只在 OnEnter/OnExit 之间使用它
type Context struct {
	Config    *config.SiteConfig
	Scheduler *game.FrameScheduler
	Navigator game.Navigator
	Detector  *device.Detector

	// Sender 联系表单发送器
	Sender contact.Sender
	// Images 项目预览图
	Images systems.ImageResolver
	// OpenURL 打开外部链接（项目列表点击），可为 nil
	OpenURL func(url string) error
}

// ScreenSize 返回当前逻辑屏幕尺寸，尚未收到 Layout 时使用配置的窗口尺寸
func (c *Context) ScreenSize() (float64, float64) {
	if c.Detector != nil {
		if w, h := c.Detector.Size(); w > 0 && h > 0 {
			return float64(w), float64(h)
		}
	}
	return float64(c.Config.Window.Width), float64(c.Config.Window.Height)
}

// Capability 当前设备能力
func (c *Context) Capability() device.Capability {
	if c.Detector == nil {
		return device.Capability{}
	}
	return c.Detector.Capability()
}

// navigate 跳转页面，失败只记录日志
// App 的导航在本帧 Update 结束后才生效，回调中调用是安全的
func (c *Context) navigate(path string) {
	if c.Navigator == nil {
		return
	}
	if err := c.Navigator.Navigate(path); err != nil {
		log.Printf("[Scene] navigate to %s failed: %v", path, err)
	}
}
