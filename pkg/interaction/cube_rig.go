package interaction

import "math"

// CubeParams 首页立方体参数
type CubeParams struct {
	// SpinSpeed 自动旋转角速度（弧度/秒）
	SpinSpeed float64 `yaml:"spinSpeed"`
	// FloatSpeed / FloatIntensity 上下漂浮
	FloatSpeed     float64 `yaml:"floatSpeed"`
	FloatIntensity float64 `yaml:"floatIntensity"`
	// OrbitSensitivity 拖拽旋转灵敏度（弧度/像素）
	OrbitSensitivity float64 `yaml:"orbitSensitivity"`
	// CubeletSize 小方块边长（间距为 1）
	CubeletSize float64 `yaml:"cubeletSize"`
}

// DefaultCubeParams 默认参数
var DefaultCubeParams = CubeParams{
	SpinSpeed:        0.15,
	FloatSpeed:       2,
	FloatIntensity:   1,
	OrbitSensitivity: 0.01,
	CubeletSize:      0.94,
}

// CubeFrame 一帧的立方体变换
type CubeFrame struct {
	Yaw  float64
	BobY float64
}

// CubeRig 立方体装饰组
type CubeRig struct {
	Params CubeParams
	yaw    float64
	orbit  float64
}

// NewCubeRig 创建立方体
func NewCubeRig(params CubeParams) *CubeRig {
	return &CubeRig{Params: params}
}

// Orbit 用户水平拖拽（像素）
func (c *CubeRig) Orbit(dxPixels float64) {
	c.orbit += dxPixels * c.Params.OrbitSensitivity
}

// Advance 推进一帧：自转累加 dt·SpinSpeed，漂浮由时间决定
func (c *CubeRig) Advance(t, dt float64) CubeFrame {
	c.yaw += dt * c.Params.SpinSpeed
	return CubeFrame{
		Yaw:  c.yaw + c.orbit,
		BobY: math.Sin(t*c.Params.FloatSpeed) * 0.1 * c.Params.FloatIntensity,
	}
}

// Cubelets 返回 3×3×3 小方块的中心偏移（-1..1）
func Cubelets() [][3]float64 {
	out := make([][3]float64, 0, 27)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				out = append(out, [3]float64{float64(x), float64(y), float64(z)})
			}
		}
	}
	return out
}

// HalfExtent 整个立方体外壳的半边长
func (p CubeParams) HalfExtent() float64 {
	return 1 + p.CubeletSize/2
}
