package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page of the site (landing page, contact page).
// Each scene has its own update and rendering logic plus a mount lifecycle.
type Scene interface {
	// OnEnter is called once when the scene becomes active.
	// Scenes acquire their frame callbacks and pointer listeners here.
	OnEnter()

	// OnExit is called once when the scene is replaced.
	// Everything acquired in OnEnter must be released here, so no state
	// update can reach a scene after teardown.
	OnExit()

	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Navigator 页面跳转接口
// 场景通过它切换页面，避免直接依赖 SceneManager
type Navigator interface {
	Navigate(path string) error
}
