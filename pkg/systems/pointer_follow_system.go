package systems

import (
	"github.com/decker502/portfolio/pkg/components"
	"github.com/decker502/portfolio/pkg/ecs"
	"github.com/decker502/portfolio/pkg/pointer"
)

// PointerFollowSystem 让跟随指针的实体（光标点、光标外环、预览卡片）追踪最新采样
//
// 直通实体每帧直接使用采样位置；其余实体各自推进一个独立的弹簧，
// 采样只作为目标，系统不修改采样器。
type PointerFollowSystem struct {
	entityManager *ecs.EntityManager
	sampler       *pointer.Sampler
}

// NewPointerFollowSystem 创建指针跟随系统
func NewPointerFollowSystem(em *ecs.EntityManager, sampler *pointer.Sampler) *PointerFollowSystem {
	return &PointerFollowSystem{
		entityManager: em,
		sampler:       sampler,
	}
}

// Update 推进所有跟随实体
func (s *PointerFollowSystem) Update(deltaTime float64) {
	// 还没有收到任何指针移动，保持原位
	if !s.sampler.HasSample() {
		return
	}
	sample := s.sampler.Sample()

	entities := ecs.GetEntitiesWith2[
		*components.PointerFollowComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range entities {
		follow, _ := ecs.GetComponent[*components.PointerFollowComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		targetX := sample.X + follow.BiasX
		targetY := sample.Y + follow.BiasY

		if follow.Passthrough {
			pos.X, pos.Y = targetX, targetY
			continue
		}

		// 第一次拿到目标时直接就位，避免从原点飞过来
		if !follow.Primed {
			follow.State.Reset(targetX, targetY)
			follow.Primed = true
		} else {
			follow.State.Step(follow.Spring, targetX, targetY, deltaTime)
		}
		pos.X, pos.Y = follow.State.X, follow.State.Y
	}
}
