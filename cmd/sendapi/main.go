// sendapi 联系表单发信服务
//
// 提供 POST /api/send，把表单转发给 Resend。
// API Key 只从环境变量 RESEND_API_KEY 读取。
//
// 用法：
//
//	RESEND_API_KEY=re_xxx go run ./cmd/sendapi -config data/mailer.yaml -addr :8080
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/mailer"
)

var (
	// 命令行参数
	configPath = flag.String("config", config.MailerConfigPath, "发信配置文件路径")
	addr       = flag.String("addr", "", "监听地址（覆盖配置文件和环境变量）")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadMailerConfig(*configPath)
	if err != nil {
		log.Fatalf("[SendAPI] %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	provider, err := mailer.NewResendProvider(cfg.APIKey)
	if err != nil {
		log.Fatalf("[SendAPI] %v (set %s)", err, config.EnvResendAPIKey)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := mailer.NewServer(cfg, provider)
	log.Printf("[SendAPI] listening on %s, forwarding to %v", cfg.Addr, cfg.To)
	if err := mailer.Run(ctx, srv); err != nil {
		log.Fatalf("[SendAPI] %v", err)
	}
	log.Printf("[SendAPI] stopped")
}
