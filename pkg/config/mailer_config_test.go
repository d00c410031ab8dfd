package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func fakeEnv(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

// TestMailerConfigDefaults 默认值
func TestMailerConfigDefaults(t *testing.T) {
	cfg := DefaultMailerConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default mailer config invalid: %v", err)
	}
	if cfg.From != "Contact Form <onboarding@resend.dev>" {
		t.Errorf("from: got %q", cfg.From)
	}
	if cfg.APIKey != "" {
		t.Error("API key must not have a default")
	}
}

// TestMailerConfigApplyEnv 环境变量覆盖
func TestMailerConfigApplyEnv(t *testing.T) {
	cfg := DefaultMailerConfig()
	cfg.ApplyEnv(fakeEnv(map[string]string{
		EnvResendAPIKey: " re_test_key ",
		EnvSendAddr:     "127.0.0.1:9000",
	}))
	if cfg.APIKey != "re_test_key" {
		t.Errorf("APIKey: got %q", cfg.APIKey)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr: got %q", cfg.Addr)
	}

	cfg.ApplyEnv(fakeEnv(nil))
	if cfg.APIKey != "re_test_key" {
		t.Error("empty env must not clear the key")
	}
}

// TestLoadMailerConfig 文件可选，缺失时使用默认值
func TestLoadMailerConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadMailerConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.Addr == "" {
		t.Error("default addr expected")
	}

	path := filepath.Join(dir, "mailer.yaml")
	data := "addr: \":9090\"\nto: [\"owner@example.com\", \"Team <team@example.com>\"]\napiKey: should-be-ignored\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvResendAPIKey, "")
	t.Setenv(EnvSendAddr, "")

	cfg, err = LoadMailerConfig(path)
	if err != nil {
		t.Fatalf("LoadMailerConfig: %v", err)
	}
	if cfg.Addr != ":9090" || len(cfg.To) != 2 {
		t.Errorf("got addr=%q to=%v", cfg.Addr, cfg.To)
	}
	if cfg.APIKey != "" {
		t.Error("API key must never be read from the file")
	}
}

// TestMailerConfigValidation 无效地址被拒绝
func TestMailerConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MailerConfig)
	}{
		{"empty addr", func(c *MailerConfig) { c.Addr = "" }},
		{"bad from", func(c *MailerConfig) { c.From = "not an address" }},
		{"no recipients", func(c *MailerConfig) { c.To = nil }},
		{"bad recipient", func(c *MailerConfig) { c.To = []string{"nobody"} }},
		{"zero body limit", func(c *MailerConfig) { c.MaxBodyBytes = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMailerConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate: got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestShippedMailerConfig 仓库中的 data/mailer.yaml 可以加载
func TestShippedMailerConfig(t *testing.T) {
	t.Setenv(EnvResendAPIKey, "")
	t.Setenv(EnvSendAddr, "")

	cfg, err := LoadMailerConfig(filepath.Join("..", "..", MailerConfigPath))
	if err != nil {
		t.Fatalf("LoadMailerConfig: %v", err)
	}
	if cfg.SubjectPrefix != "New Message from " {
		t.Errorf("subjectPrefix: got %q", cfg.SubjectPrefix)
	}
}
