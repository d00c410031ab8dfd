package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/portfolio/pkg/app"
	"github.com/decker502/portfolio/pkg/embedded"
)

var (
	// 命令行参数
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	page    = flag.String("page", "", "启动页面路由（/ 或 /contact），默认恢复上次停留的页面")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	siteApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Page:    *page,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer siteApp.Close()

	window := siteApp.SiteConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(siteApp); err != nil {
		log.Fatal(err)
	}
}
