package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/portfolio/pkg/embedded"
	"github.com/decker502/portfolio/pkg/interaction"
	"github.com/decker502/portfolio/pkg/motion"
)

// SiteConfigPath 站点配置文件路径（嵌入资源中的路径）
const SiteConfigPath = "data/site.yaml"

// ErrInvalidConfig 配置无效
var ErrInvalidConfig = errors.New("invalid config")

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CursorConfig 自定义光标配置
type CursorConfig struct {
	Spring     motion.SpringConfig `yaml:"spring"`
	DotRadius  float64             `yaml:"dotRadius"`
	RingRadius float64             `yaml:"ringRadius"`
	RingStroke float64             `yaml:"ringStroke"`
	Color      HexColor            `yaml:"color"`
	HideNative bool                `yaml:"hideNative"`
}

// PreviewConfig 悬停预览卡片配置
type PreviewConfig struct {
	// BiasX / BiasY 预览卡片相对指针的定位偏移
	BiasX float64 `yaml:"biasX"`
	BiasY float64 `yaml:"biasY"`

	// Width / Height 卡片尺寸
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Duration 淡入淡出时长（秒），MinScale 隐藏时的缩放
	Duration float64 `yaml:"duration"`
	MinScale float64 `yaml:"minScale"`

	Spring motion.SpringConfig `yaml:"spring"`
}

// DrawerConfig 项目抽屉配置
type DrawerConfig struct {
	Spring motion.SpringConfig `yaml:"spring"`
	Width  float64             `yaml:"width"`
}

// CubeConfig 首页立方体配置
type CubeConfig struct {
	interaction.CubeParams `yaml:",inline"`

	// Faces 材质下标 0..5 对应的标签
	Faces []string `yaml:"faces"`
	// Colors 材质下标 0..5 对应的颜色
	Colors []HexColor `yaml:"colors"`
}

// ProjectEntry 项目归档条目
type ProjectEntry struct {
	Name  string `yaml:"name"`
	Year  string `yaml:"year"`
	Type  string `yaml:"type"`
	Image string `yaml:"image"`
	URL   string `yaml:"url"`
}

// SiteConfig 站点配置（data/site.yaml）
type SiteConfig struct {
	Window WindowConfig `yaml:"window"`

	// Breakpoint 小屏断点（像素），窗口宽度小于该值时关闭指针效果
	Breakpoint int `yaml:"breakpoint"`

	// APIBase 联系表单提交的服务地址
	APIBase string `yaml:"apiBase"`

	Cursor   CursorConfig            `yaml:"cursor"`
	Preview  PreviewConfig           `yaml:"preview"`
	Drawer   DrawerConfig            `yaml:"drawer"`
	Pulse    interaction.PulseParams `yaml:"pulse"`
	Cube     CubeConfig              `yaml:"cube"`
	Projects []ProjectEntry          `yaml:"projects"`
}

// DefaultSiteConfig 返回默认站点配置
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Portfolio / Geoffrey Carter",
		},
		Breakpoint: 768,
		APIBase:    "http://localhost:8080",
		Cursor: CursorConfig{
			Spring:     motion.CursorRingSpring,
			DotRadius:  4,
			RingRadius: 20,
			RingStroke: 1,
			Color:      HexColor{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF},
			HideNative: true,
		},
		Preview: PreviewConfig{
			BiasX:    -450,
			BiasY:    -125,
			Width:    400,
			Height:   250,
			Duration: 0.3,
			MinScale: 0.5,
			Spring:   motion.PreviewSpring,
		},
		Drawer: DrawerConfig{
			Spring: motion.DrawerSpringConfig,
			Width:  400,
		},
		Pulse: interaction.DefaultPulseParams,
		Cube: CubeConfig{
			CubeParams: interaction.DefaultCubeParams,
			Faces:      append([]string(nil), interaction.DefaultFaces[:]...),
			Colors: []HexColor{
				{0xD4, 0xAF, 0x37, 0xFF},
				{0xB7, 0x6E, 0x79, 0xFF},
				{0xE5, 0xE4, 0xE2, 0xFF},
				{0x2C, 0x3E, 0x50, 0xFF},
				{0x04, 0x39, 0x27, 0xFF},
				{0x1A, 0x1A, 0x1A, 0xFF},
			},
		},
	}
}

// LoadSiteConfig 加载站点配置
// 优先读取嵌入资源，未初始化时回退到文件系统；文件中缺省的字段保留默认值
func LoadSiteConfig(path string) (*SiteConfig, error) {
	data, err := embedded.ReadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config file %s: %w", path, err)
	}

	cfg, err := ParseSiteConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid site config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseSiteConfig 解析并验证站点配置
func ParseSiteConfig(data []byte) (*SiteConfig, error) {
	cfg := DefaultSiteConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse site config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证站点配置
func (c *SiteConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Breakpoint <= 0 {
		return fmt.Errorf("%w: breakpoint must be positive, got %d", ErrInvalidConfig, c.Breakpoint)
	}
	if strings.TrimSpace(c.APIBase) == "" {
		return fmt.Errorf("%w: apiBase is required", ErrInvalidConfig)
	}

	springs := []struct {
		name string
		cfg  motion.SpringConfig
	}{
		{"cursor.spring", c.Cursor.Spring},
		{"preview.spring", c.Preview.Spring},
		{"drawer.spring", c.Drawer.Spring},
	}
	for _, s := range springs {
		if err := s.cfg.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, s.name, err)
		}
	}

	if c.Preview.Duration < 0 {
		return fmt.Errorf("%w: preview.duration must not be negative", ErrInvalidConfig)
	}
	if c.Preview.MinScale < 0 || c.Preview.MinScale > 1 {
		return fmt.Errorf("%w: preview.minScale must be in [0, 1], got %v", ErrInvalidConfig, c.Preview.MinScale)
	}

	if c.Pulse.Alpha <= 0 || c.Pulse.Alpha > 1 {
		return fmt.Errorf("%w: pulse.alpha must be in (0, 1], got %v", ErrInvalidConfig, c.Pulse.Alpha)
	}
	if c.Pulse.RingPeriod <= 0 {
		return fmt.Errorf("%w: pulse.ringPeriod must be positive, got %v", ErrInvalidConfig, c.Pulse.RingPeriod)
	}

	if _, err := interaction.NewFaceTable(c.Cube.Faces); err != nil {
		return fmt.Errorf("%w: cube.faces: %w", ErrInvalidConfig, err)
	}
	if len(c.Cube.Colors) != interaction.FaceCount {
		return fmt.Errorf("%w: cube.colors must have %d entries, got %d", ErrInvalidConfig, interaction.FaceCount, len(c.Cube.Colors))
	}

	for i, p := range c.Projects {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: projects[%d].name is required", ErrInvalidConfig, i)
		}
		if strings.TrimSpace(p.Image) == "" {
			return fmt.Errorf("%w: projects[%d].image is required", ErrInvalidConfig, i)
		}
	}
	return nil
}

// FaceTable 返回立方体标签表（配置已验证）
func (c *SiteConfig) FaceTable() interaction.FaceTable {
	table, err := interaction.NewFaceTable(c.Cube.Faces)
	if err != nil {
		return interaction.DefaultFaces
	}
	return table
}

// FaceColors 返回立方体六个面的颜色
func (c *SiteConfig) FaceColors() []color.RGBA {
	out := make([]color.RGBA, len(c.Cube.Colors))
	for i, hc := range c.Cube.Colors {
		out[i] = hc.RGBA()
	}
	return out
}
