package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/portfolio/pkg/motion"
)

// TestDefaultSiteConfigValid 默认配置必须通过验证
func TestDefaultSiteConfigValid(t *testing.T) {
	cfg := DefaultSiteConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Cursor.Spring != motion.CursorRingSpring {
		t.Errorf("cursor spring: got %+v, want %+v", cfg.Cursor.Spring, motion.CursorRingSpring)
	}
	if got, _ := cfg.FaceTable().Resolve(5); got != "Custom Apps" {
		t.Errorf("face 5: got %q, want %q", got, "Custom Apps")
	}
}

// TestParseSiteConfigKeepsDefaults 文件只覆盖写出的字段
func TestParseSiteConfigKeepsDefaults(t *testing.T) {
	yamlData := `
breakpoint: 900
preview:
  biasX: -300
projects:
  - name: "Summarist"
    year: "2025"
    type: "E-Commerce"
    image: "sum.png"
    url: "https://example.com"
cube:
  colors: ["#FF0000", "#00FF00", "#0000FF", "#FFFFFF", "#000000", "#12345680"]
`
	cfg, err := ParseSiteConfig([]byte(yamlData))
	if err != nil {
		t.Fatalf("ParseSiteConfig: %v", err)
	}
	if cfg.Breakpoint != 900 {
		t.Errorf("breakpoint: got %d, want 900", cfg.Breakpoint)
	}
	if cfg.Preview.BiasX != -300 {
		t.Errorf("preview.biasX: got %v, want -300", cfg.Preview.BiasX)
	}
	if cfg.Preview.BiasY != -125 {
		t.Errorf("preview.biasY should keep default, got %v", cfg.Preview.BiasY)
	}
	if cfg.Cube.SpinSpeed != 0.15 {
		t.Errorf("cube.spinSpeed should keep default, got %v", cfg.Cube.SpinSpeed)
	}
	if len(cfg.Projects) != 1 || cfg.Projects[0].Image != "sum.png" {
		t.Errorf("projects: got %+v", cfg.Projects)
	}

	colors := cfg.FaceColors()
	if colors[0] != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("color 0: got %v", colors[0])
	}
	if colors[5] != (color.RGBA{0x12, 0x34, 0x56, 0x80}) {
		t.Errorf("color 5: got %v", colors[5])
	}
}

// TestSiteConfigValidation 无效配置被拒绝
func TestSiteConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{"five faces", `cube: {faces: [a, b, c, d, e]}`, "cube.faces"},
		{"empty face", `cube: {faces: [a, b, c, d, e, ""]}`, "cube.faces"},
		{"zero mass", `cursor: {spring: {stiffness: 150, damping: 25, mass: 0}}`, "cursor.spring"},
		{"negative damping", `drawer: {spring: {stiffness: 200, damping: -1, mass: 1}}`, "drawer.spring"},
		{"zero ring period", `pulse: {ringPeriod: 0}`, "ringPeriod"},
		{"alpha above one", `pulse: {alpha: 1.5}`, "alpha"},
		{"zero breakpoint", `breakpoint: 0`, "breakpoint"},
		{"bad color", `cube: {colors: ["#GG0000", "#000000", "#000000", "#000000", "#000000", "#000000"]}`, "bad color"},
		{"project without image", `projects: [{name: "X"}]`, "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSiteConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q should mention %q", err, tt.errMsg)
			}
		})
	}
}

// TestLoadSiteConfigFromFile 嵌入资源未初始化时从文件系统读取
func TestLoadSiteConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(path, []byte("apiBase: \"http://example.test\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSiteConfig(path)
	if err != nil {
		t.Fatalf("LoadSiteConfig: %v", err)
	}
	if cfg.APIBase != "http://example.test" {
		t.Errorf("apiBase: got %q", cfg.APIBase)
	}

	if _, err := LoadSiteConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

// TestHexColorRoundTrip 颜色格式化
func TestHexColorRoundTrip(t *testing.T) {
	c, err := ParseHexColor("#87ceeb")
	if err != nil {
		t.Fatal(err)
	}
	if c.String() != "#87CEEB" {
		t.Errorf("String(): got %q", c.String())
	}
	if _, err := ParseHexColor("#123"); err == nil {
		t.Error("short color should fail")
	}
}

// TestShippedSiteConfig 仓库中的 data/site.yaml 可以加载
func TestShippedSiteConfig(t *testing.T) {
	cfg, err := LoadSiteConfig(filepath.Join("..", "..", SiteConfigPath))
	if err != nil {
		t.Fatalf("LoadSiteConfig: %v", err)
	}
	if len(cfg.Projects) != 6 {
		t.Errorf("projects: got %d, want 6", len(cfg.Projects))
	}
	if cfg.Preview.BiasX != -450 || cfg.Preview.BiasY != -125 {
		t.Errorf("preview bias: got (%v, %v)", cfg.Preview.BiasX, cfg.Preview.BiasY)
	}
	if got, _ := cfg.FaceTable().Resolve(0); got != "E-Commerce" {
		t.Errorf("face 0: got %q", got)
	}
}
