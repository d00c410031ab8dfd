package game

import (
	"reflect"
	"testing"
)

// TestFrameSchedulerOrder 验证按优先级、再按注册顺序执行
func TestFrameSchedulerOrder(t *testing.T) {
	s := NewFrameScheduler()
	var calls []string
	record := func(name string) FrameFunc {
		return func(dt float64) { calls = append(calls, name) }
	}

	s.Register("effects", PriorityEffects, record("effects"))
	s.Register("smooth-a", PrioritySmoothing, record("smooth-a"))
	s.Register("input", PriorityInput, record("input"))
	s.Register("smooth-b", PrioritySmoothing, record("smooth-b"))

	s.Tick(1.0 / 60)

	want := []string{"input", "smooth-a", "smooth-b", "effects"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("call order: got %v, want %v", calls, want)
	}
	if !reflect.DeepEqual(s.Names(), want) {
		t.Errorf("Names(): got %v, want %v", s.Names(), want)
	}
}

// TestFrameSchedulerDeltaTime 验证 dt 透传
func TestFrameSchedulerDeltaTime(t *testing.T) {
	s := NewFrameScheduler()
	var got float64
	s.Register("dt", PriorityScene, func(dt float64) { got = dt })
	s.Tick(0.016)
	if got != 0.016 {
		t.Errorf("dt: got %v, want 0.016", got)
	}
}

// TestFrameSchedulerUnregister 验证注销后不再调用，重复注销无副作用
func TestFrameSchedulerUnregister(t *testing.T) {
	s := NewFrameScheduler()
	count := 0
	h := s.Register("counter", PriorityScene, func(dt float64) { count++ })

	s.Tick(0.016)
	h.Unregister()
	h.Unregister()
	s.Tick(0.016)

	if count != 1 {
		t.Errorf("call count: got %d, want 1", count)
	}
	if s.Len() != 0 {
		t.Errorf("Len(): got %d, want 0", s.Len())
	}
	if h.Active() {
		t.Error("handle should be inactive after Unregister")
	}
}

// TestFrameSchedulerUnregisterDuringTick 验证在 Tick 中注销后续回调
func TestFrameSchedulerUnregisterDuringTick(t *testing.T) {
	s := NewFrameScheduler()
	laterCalled := false
	var later *FrameHandle

	s.Register("first", PriorityInput, func(dt float64) { later.Unregister() })
	later = s.Register("later", PriorityEffects, func(dt float64) { laterCalled = true })

	s.Tick(0.016)

	if laterCalled {
		t.Error("callback unregistered earlier in the same tick must not run")
	}
	if s.Len() != 1 {
		t.Errorf("Len(): got %d, want 1", s.Len())
	}
}

// TestFrameSchedulerRegisterDuringTick 验证 Tick 中注册的回调从下一帧执行
func TestFrameSchedulerRegisterDuringTick(t *testing.T) {
	s := NewFrameScheduler()
	added := 0
	registered := false
	s.Register("spawner", PriorityInput, func(dt float64) {
		if !registered {
			registered = true
			s.Register("added", PriorityEffects, func(dt float64) { added++ })
		}
	})

	s.Tick(0.016)
	if added != 0 {
		t.Errorf("callback registered during tick ran in the same tick (%d)", added)
	}
	s.Tick(0.016)
	if added != 1 {
		t.Errorf("added count after second tick: got %d, want 1", added)
	}
}

// TestScopeClose 验证作用域后进先出释放且只释放一次
func TestScopeClose(t *testing.T) {
	s := NewFrameScheduler()
	sc := NewScope("test")
	var order []string

	sc.Track(s.Register("a", PriorityScene, func(dt float64) {}))
	sc.Add(func() { order = append(order, "first") })
	sc.Add(func() { order = append(order, "second") })

	sc.Close()
	sc.Close()

	if !reflect.DeepEqual(order, []string{"second", "first"}) {
		t.Errorf("release order: got %v", order)
	}
	if s.Len() != 0 {
		t.Errorf("tracked handle not released, Len()=%d", s.Len())
	}

	late := false
	sc.Add(func() { late = true })
	if !late {
		t.Error("Add on a closed scope should release immediately")
	}
}
