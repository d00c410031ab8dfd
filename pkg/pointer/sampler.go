// Package pointer 实现指针采样器
//
// 采样器保存最新的原始指针位置和按下状态：没有过滤、没有队列，后写覆盖先写。
// ebiten 没有事件监听器，采样器在帧调度器上注册一个轮询回调作为"监听器"，
// 挂载时注册一次，卸载时注销一次。触摸/小屏设备上完全不注册。
package pointer

import (
	"log"

	"github.com/decker502/portfolio/pkg/device"
	"github.com/decker502/portfolio/pkg/game"
)

// Sample 原始指针采样（PointerSample），每次输入都被覆盖，不保留历史
type Sample struct {
	X, Y float64
}

// Source 指针输入源
type Source interface {
	CursorPosition() (int, int)
	IsPressed() bool
}

// Sampler 指针采样器
type Sampler struct {
	name         string
	biasX, biasY float64

	sample  Sample
	clicked bool
	hasData bool
	lastRaw [2]int

	handle *game.FrameHandle
}

// NewSampler 创建采样器
// biasX/biasY 为固定偏移，用于把采样点对齐到某个屏幕锚点（如预览卡片的定位点）
func NewSampler(name string, biasX, biasY float64) *Sampler {
	return &Sampler{name: name, biasX: biasX, biasY: biasY}
}

// Move 指针移动：覆盖当前位置
func (s *Sampler) Move(x, y float64) {
	s.sample = Sample{X: x + s.biasX, Y: y + s.biasY}
	s.hasData = true
}

// Press 指针按下
func (s *Sampler) Press() {
	s.clicked = true
}

// Release 指针抬起
func (s *Sampler) Release() {
	s.clicked = false
}

// Sample 返回最新采样
func (s *Sampler) Sample() Sample {
	return s.sample
}

// HasSample 是否收到过至少一次移动
func (s *Sampler) HasSample() bool {
	return s.hasData
}

// IsClicked 是否按下
func (s *Sampler) IsClicked() bool {
	return s.clicked
}

// Attached 是否已注册监听
func (s *Sampler) Attached() bool {
	return s.handle != nil && s.handle.Active()
}

// Attach 挂载：在调度器上注册轮询回调
//
// 触摸/小屏设备不注册任何回调并返回 false。
// 已挂载时再次调用不会重复注册。
func (s *Sampler) Attach(scheduler *game.FrameScheduler, source Source, capability device.Capability) bool {
	if capability.IsTouchOrSmallScreen {
		return false
	}
	if s.Attached() {
		return true
	}

	s.handle = scheduler.Register("pointer:"+s.name, game.PriorityInput, func(dt float64) {
		s.poll(source)
	})
	log.Printf("[PointerSampler] %s attached", s.name)
	return true
}

// Detach 卸载：注销轮询回调，重复调用无副作用
func (s *Sampler) Detach() {
	if !s.Attached() {
		return
	}
	s.handle.Unregister()
	s.handle = nil
	s.clicked = false
	log.Printf("[PointerSampler] %s detached", s.name)
}

// poll 把输入源的状态转换为移动/按下/抬起事件
func (s *Sampler) poll(source Source) {
	x, y := source.CursorPosition()
	if !s.hasData || x != s.lastRaw[0] || y != s.lastRaw[1] {
		s.lastRaw = [2]int{x, y}
		s.Move(float64(x), float64(y))
	}

	pressed := source.IsPressed()
	switch {
	case pressed && !s.clicked:
		s.Press()
	case !pressed && s.clicked:
		s.Release()
	}
}
