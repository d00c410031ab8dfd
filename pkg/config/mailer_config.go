package config

import (
	"fmt"
	"net/mail"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MailerConfigPath 发信服务配置文件默认路径
const MailerConfigPath = "data/mailer.yaml"

// 环境变量
const (
	// EnvResendAPIKey 发信服务商 API Key，只从环境变量读取
	EnvResendAPIKey = "RESEND_API_KEY"
	// EnvSendAddr 覆盖监听地址
	EnvSendAddr = "PORTFOLIO_SEND_ADDR"
)

// MailerConfig 发信服务配置（data/mailer.yaml）
type MailerConfig struct {
	// Addr 监听地址
	Addr string `yaml:"addr"`

	// From 发件人，To 收件人列表
	From string   `yaml:"from"`
	To   []string `yaml:"to"`

	// SubjectPrefix 邮件主题前缀，主题为 SubjectPrefix + 姓名
	SubjectPrefix string `yaml:"subjectPrefix"`

	// MaxBodyBytes 请求体大小上限
	MaxBodyBytes int64 `yaml:"maxBodyBytes"`

	// AllowOrigin CORS 允许的来源，空表示不输出 CORS 头
	AllowOrigin string `yaml:"allowOrigin"`

	// APIKey 不从文件读取
	APIKey string `yaml:"-"`
}

// DefaultMailerConfig 返回默认发信配置
func DefaultMailerConfig() *MailerConfig {
	return &MailerConfig{
		Addr:          ":8080",
		From:          "Contact Form <onboarding@resend.dev>",
		To:            []string{"geolcarter21@gmail.com"},
		SubjectPrefix: "New Message from ",
		MaxBodyBytes:  64 << 10,
		AllowOrigin:   "*",
	}
}

// LoadMailerConfig 加载发信配置
// 文件不存在时使用默认值；环境变量覆盖文件中的设置
func LoadMailerConfig(path string) (*MailerConfig, error) {
	cfg := DefaultMailerConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse mailer config YAML from %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// 使用默认值
	default:
		return nil, fmt.Errorf("failed to read mailer config file %s: %w", path, err)
	}

	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mailer config in %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv 应用环境变量
func (c *MailerConfig) ApplyEnv(getenv func(string) string) {
	if key := strings.TrimSpace(getenv(EnvResendAPIKey)); key != "" {
		c.APIKey = key
	}
	if addr := strings.TrimSpace(getenv(EnvSendAddr)); addr != "" {
		c.Addr = addr
	}
}

// Validate 验证发信配置（不检查 API Key，缺失时由服务启动时报错）
func (c *MailerConfig) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr is required", ErrInvalidConfig)
	}
	if _, err := mail.ParseAddress(c.From); err != nil {
		return fmt.Errorf("%w: from %q: %w", ErrInvalidConfig, c.From, err)
	}
	if len(c.To) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidConfig)
	}
	for _, to := range c.To {
		if _, err := mail.ParseAddress(to); err != nil {
			return fmt.Errorf("%w: to %q: %w", ErrInvalidConfig, to, err)
		}
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: maxBodyBytes must be positive, got %d", ErrInvalidConfig, c.MaxBodyBytes)
	}
	return nil
}
