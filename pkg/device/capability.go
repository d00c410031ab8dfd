// Package device 负责设备能力检测
//
// 两个开关决定指针跟随效果和 3D 渲染是否启用：
//   - IsTouchOrSmallScreen：移动端、出现过触摸或窗口宽度低于断点
//   - HasGPU：能否创建 GPU 绘图上下文（只探测一次）
package device

import "log"

// Capability 设备能力
type Capability struct {
	IsTouchOrSmallScreen bool
	HasGPU               bool
}

// PointerEffectsEnabled 是否挂载指针跟随效果（光标、悬停预览）
func (c Capability) PointerEffectsEnabled() bool {
	return !c.IsTouchOrSmallScreen
}

// GPUProbe GPU 能力探测函数
type GPUProbe func() bool

// Detector 设备能力检测器
type Detector struct {
	breakpoint int
	isMobile   func() bool
	hasTouch   func() bool
	probe      GPUProbe

	width, height int
	touchSeen     bool
	gpuProbed     bool
	capability    Capability
}

// Options 检测器依赖，nil 字段表示"否"
type Options struct {
	// Breakpoint 小屏断点（逻辑像素宽度，小于该值视为小屏）
	Breakpoint int
	IsMobile   func() bool
	HasTouch   func() bool
	Probe      GPUProbe
}

// NewDetector 创建检测器
func NewDetector(opts Options) *Detector {
	d := &Detector{
		breakpoint: opts.Breakpoint,
		isMobile:   opts.IsMobile,
		hasTouch:   opts.HasTouch,
		probe:      opts.Probe,
	}
	d.capability.IsTouchOrSmallScreen = d.computeTouchOrSmall()
	return d
}

// HasGPU 返回 GPU 能力，首次调用时探测并缓存
func (d *Detector) HasGPU() bool {
	if !d.gpuProbed {
		d.gpuProbed = true
		d.capability.HasGPU = d.probe != nil && d.probe()
		log.Printf("[Device] GPU capability probed: %v", d.capability.HasGPU)
	}
	return d.capability.HasGPU
}

// Resize 窗口尺寸变化时重新计算小屏/触摸状态
// 返回 IsTouchOrSmallScreen 是否发生变化
func (d *Detector) Resize(width, height int) bool {
	if width == d.width && height == d.height {
		return d.Refresh()
	}
	d.width, d.height = width, height
	return d.Refresh()
}

// Refresh 重新计算（检测新出现的触摸），返回是否变化
func (d *Detector) Refresh() bool {
	next := d.computeTouchOrSmall()
	changed := next != d.capability.IsTouchOrSmallScreen
	d.capability.IsTouchOrSmallScreen = next
	if changed {
		log.Printf("[Device] isTouchOrSmallScreen changed to %v (width=%d)", next, d.width)
	}
	return changed
}

func (d *Detector) computeTouchOrSmall() bool {
	if d.hasTouch != nil && d.hasTouch() {
		d.touchSeen = true
	}
	if d.touchSeen {
		return true
	}
	if d.isMobile != nil && d.isMobile() {
		return true
	}
	return d.width > 0 && d.width < d.breakpoint
}

// Capability 返回当前能力（会触发一次性 GPU 探测）
func (d *Detector) Capability() Capability {
	d.HasGPU()
	return d.capability
}

// Size 返回最近一次记录的窗口尺寸
func (d *Detector) Size() (int, int) {
	return d.width, d.height
}
