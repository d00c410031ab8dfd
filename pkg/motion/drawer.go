package motion

import "github.com/charmbracelet/harmonica"

// DrawerSpring 抽屉滑入滑出弹簧
//
// 使用 harmonica 的解析弹簧求解，把 stiffness/damping/mass 参数
// 换算为角频率 sqrt(k/m) 和阻尼比 d/(2·sqrt(k·m))。
// Fraction() 返回抽屉展开比例（0 = 完全收起，1 = 完全展开，欠阻尼时可略微超过 1）。
type DrawerSpring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewDrawerSpring 按帧率和弹簧参数创建抽屉弹簧
func NewDrawerSpring(fps int, cfg SpringConfig) *DrawerSpring {
	return &DrawerSpring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), cfg.AngularFrequency(), cfg.DampingRatio()),
	}
}

// Open 展开抽屉
func (d *DrawerSpring) Open() {
	d.target = 1
}

// Close 收起抽屉
func (d *DrawerSpring) Close() {
	d.target = 0
}

// IsOpen 目标是否为展开
func (d *DrawerSpring) IsOpen() bool {
	return d.target == 1
}

// Update 推进一帧（步长由创建时的帧率决定）
func (d *DrawerSpring) Update() {
	d.pos, d.vel = d.spring.Update(d.pos, d.vel, d.target)
}

// Fraction 当前展开比例
func (d *DrawerSpring) Fraction() float64 {
	return d.pos
}

// Hidden 已收起且基本静止，可以跳过绘制
func (d *DrawerSpring) Hidden() bool {
	return d.target == 0 && d.pos < 0.001 && d.vel < 0.01 && d.vel > -0.01
}
