// Package motion 提供指针驱动动画管线的数值核心
//
// 包含三类滤波器：
//   - 二阶阻尼弹簧（SpringConfig + SmoothedPosition），用于光标外环和悬停预览卡片的延迟跟随
//   - 一阶指数平滑（ExpSmooth），用于 3D 装饰组跟随指针，不允许过冲
//   - 周期函数（Pulse / RingCycle），只依赖时间，不携带状态
//
// 本包不依赖任何渲染或输入库，所有函数都是纯数值计算。
package motion

import (
	"errors"
	"fmt"
	"math"
)

// SpringConfig 弹簧参数
//
// 加速度按 a = (k·(target−pos) − d·vel) / m 计算。
// RestDelta / RestSpeed 为静止吸附阈值：位移和速度同时小于阈值时直接吸附到目标，
// 两者为 0 时不吸附。
type SpringConfig struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
	Mass      float64 `yaml:"mass"`
	RestDelta float64 `yaml:"restDelta"`
	RestSpeed float64 `yaml:"restSpeed"`
}

// 预设参数（与站点默认配置一致）
var (
	// CursorRingSpring 光标外环
	CursorRingSpring = SpringConfig{Stiffness: 150, Damping: 25, Mass: 0.5, RestDelta: 0.001, RestSpeed: 0.01}
	// PreviewSpring 悬停预览卡片
	PreviewSpring = SpringConfig{Stiffness: 100, Damping: 20, Mass: 1, RestDelta: 0.001, RestSpeed: 0.01}
	// DrawerSpringConfig 项目抽屉滑入
	DrawerSpringConfig = SpringConfig{Stiffness: 200, Damping: 25, Mass: 1}
)

// ErrInvalidSpring 弹簧参数无效
var ErrInvalidSpring = errors.New("invalid spring config")

// DampingRatio 返回阻尼比 ζ = d / (2·sqrt(k·m))
// ζ < 1 欠阻尼（有过冲），ζ = 1 临界阻尼，ζ > 1 过阻尼
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// AngularFrequency 返回无阻尼角频率 ω = sqrt(k/m)
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.Mass)
}

// Validate 验证弹簧参数
// 要求 k > 0、m > 0、阻尼比 ≥ 0，保证递推不会发散
func (c SpringConfig) Validate() error {
	if c.Stiffness <= 0 {
		return fmt.Errorf("%w: stiffness must be positive, got %v", ErrInvalidSpring, c.Stiffness)
	}
	if c.Mass <= 0 {
		return fmt.Errorf("%w: mass must be positive, got %v", ErrInvalidSpring, c.Mass)
	}
	if c.Damping < 0 || math.IsNaN(c.DampingRatio()) {
		return fmt.Errorf("%w: damping ratio must be >= 0, got %v", ErrInvalidSpring, c.DampingRatio())
	}
	if c.RestDelta < 0 || c.RestSpeed < 0 {
		return fmt.Errorf("%w: rest thresholds must be >= 0", ErrInvalidSpring)
	}
	return nil
}

// step1D 单轴弹簧递推（半隐式欧拉：先更新速度，再用新速度更新位置）
func (c SpringConfig) step1D(pos, vel, target, dt float64) (float64, float64) {
	accel := (c.Stiffness*(target-pos) - c.Damping*vel) / c.Mass
	vel += accel * dt
	pos += vel * dt

	if c.RestDelta > 0 && math.Abs(target-pos) < c.RestDelta && math.Abs(vel) < c.RestSpeed {
		return target, 0
	}
	return pos, vel
}

// SmoothedPosition 平滑后的二维位置
// 每个需要惯性的视觉元素持有一个独立实例，实例之间不共享任何可变状态
type SmoothedPosition struct {
	X, Y                 float64
	VelocityX, VelocityY float64
}

// Step 按弹簧参数向目标推进一帧
func (p *SmoothedPosition) Step(cfg SpringConfig, targetX, targetY, dt float64) {
	p.X, p.VelocityX = cfg.step1D(p.X, p.VelocityX, targetX, dt)
	p.Y, p.VelocityY = cfg.step1D(p.Y, p.VelocityY, targetY, dt)
}

// Reset 瞬移到指定位置并清零速度（首次挂载时使用，避免从原点飞入）
func (p *SmoothedPosition) Reset(x, y float64) {
	p.X, p.Y = x, y
	p.VelocityX, p.VelocityY = 0, 0
}

// Settled 判断是否已在 eps 范围内贴合目标
func (p SmoothedPosition) Settled(targetX, targetY, eps float64) bool {
	return math.Abs(p.X-targetX) < eps && math.Abs(p.Y-targetY) < eps
}
