package game

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// 路由路径
const (
	RouteLanding = "/"
	RouteContact = "/contact"
)

// ErrUnknownRoute 未注册的路由
var ErrUnknownRoute = errors.New("unknown route")

// SceneFactory 场景工厂函数类型
// 每次导航都创建新的场景实例，页面状态随挂载周期重建
type SceneFactory func() Scene

// SceneManager manages which page is active.
// It ensures only one scene's Update and Draw methods are called at any given time,
// and that the previous scene is torn down before the next one mounts.
type SceneManager struct {
	routes       map[string]SceneFactory
	currentScene Scene
	currentPath  string
	onNavigate   func(path string)
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Navigate to set the initial page.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		routes: make(map[string]SceneFactory),
	}
}

// Register 注册路由对应的场景工厂
func (sm *SceneManager) Register(path string, factory SceneFactory) {
	sm.routes[path] = factory
}

// Routes 返回已注册的路由（排序后）
func (sm *SceneManager) Routes() []string {
	paths := make([]string, 0, len(sm.routes))
	for p := range sm.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// OnNavigate 设置导航完成回调（用于记录最后访问的页面）
func (sm *SceneManager) OnNavigate(fn func(path string)) {
	sm.onNavigate = fn
}

// Navigate 切换到指定路由
// 先卸载当前场景（OnExit），再挂载新场景（OnEnter）
func (sm *SceneManager) Navigate(path string) error {
	factory, ok := sm.routes[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}

	next := factory()
	if next == nil {
		return fmt.Errorf("scene factory for %s returned nil", path)
	}

	sm.SwitchTo(next)
	sm.currentPath = path
	log.Printf("[SceneManager] Navigated to %s", path)

	if sm.onNavigate != nil {
		sm.onNavigate(path)
	}
	return nil
}

// SwitchTo changes the active scene to the provided scene.
// The old scene's OnExit runs before the new scene's OnEnter.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil {
		sm.currentScene.OnExit()
	}
	sm.currentScene = scene
	sm.currentPath = ""
	if scene != nil {
		scene.OnEnter()
	}
}

// Current 返回当前活动的场景
func (sm *SceneManager) Current() Scene {
	return sm.currentScene
}

// CurrentPath 返回当前路由（通过 SwitchTo 直接切换时为空）
func (sm *SceneManager) CurrentPath() string {
	return sm.currentPath
}

// Close 卸载当前场景（应用退出时调用）
func (sm *SceneManager) Close() {
	sm.SwitchTo(nil)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
