package systems

import (
	"testing"

	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
)

func newTestButton(em *ecs.EntityManager, x, y float64) (*components.ButtonComponent, *[]string) {
	events := &[]string{}
	button := &components.ButtonComponent{
		Style:        components.ButtonRow,
		Text:         "Rosewood Atelier",
		Width:        100,
		Height:       20,
		Enabled:      true,
		OnClick:      func() { *events = append(*events, "click") },
		OnHoverEnter: func() { *events = append(*events, "enter") },
		OnHoverLeave: func() { *events = append(*events, "leave") },
	}
	id := em.CreateEntity()
	em.AddComponent(id, button)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	return button, events
}

// TestButtonHoverAndClick 测试悬停进入/离开和抬起触发点击
func TestButtonHoverAndClick(t *testing.T) {
	em := ecs.NewEntityManager()
	button, events := newTestButton(em, 0, 0)
	sys := NewButtonSystem(em)

	sys.Process(50, 10, false, false)
	if button.State != components.UIHovered {
		t.Errorf("state: got %v, want hovered", button.State)
	}
	sys.Process(50, 10, true, false)
	if button.State != components.UIClicked {
		t.Errorf("state: got %v, want clicked", button.State)
	}
	if !sys.Process(50, 10, false, true) {
		t.Error("release inside should report a click")
	}
	sys.Process(500, 10, false, false)

	want := []string{"enter", "click", "leave"}
	if len(*events) != len(want) {
		t.Fatalf("events: got %v, want %v", *events, want)
	}
	for i := range want {
		if (*events)[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, (*events)[i], want[i])
		}
	}
}

// TestButtonDisabledAndHidden 禁用或隐藏的按钮不响应，隐藏时补发离开回调
func TestButtonDisabledAndHidden(t *testing.T) {
	em := ecs.NewEntityManager()
	button, events := newTestButton(em, 0, 0)
	sys := NewButtonSystem(em)

	sys.Process(10, 10, false, false)
	button.Hidden = true
	if sys.Process(10, 10, false, true) {
		t.Error("hidden button must not be clicked")
	}
	if got := *events; len(got) != 2 || got[1] != "leave" {
		t.Errorf("hiding a hovered button should emit leave, got %v", got)
	}

	button.Hidden = false
	button.Enabled = false
	sys.Process(10, 10, false, true)
	if button.State != components.UIDisabled {
		t.Errorf("state: got %v, want disabled", button.State)
	}
	if sys.HitTest(10, 10) {
		t.Error("disabled button should not be hit")
	}
}
