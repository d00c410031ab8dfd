package mailer

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/decker502/portfolio/pkg/config"
)

// shutdownTimeout 优雅关闭的等待时间
const shutdownTimeout = 5 * time.Second

// NewMux 注册发信路由
// 同一路径的其他方法由 ServeMux 返回 405
func NewMux(cfg *config.MailerConfig, provider Provider) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /api/send", withCORS(cfg.AllowOrigin, NewHandler(cfg, provider)))
	mux.Handle("OPTIONS /api/send", withCORS(cfg.AllowOrigin, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return mux
}

// withCORS 为桌面端以外的调用方（浏览器）输出 CORS 头
func withCORS(origin string, next http.Handler) http.Handler {
	if origin == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// NewServer 创建发信服务
func NewServer(cfg *config.MailerConfig, provider Provider) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewMux(cfg, provider),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run 启动服务，ctx 结束时优雅关闭
func Run(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Mailer] listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Printf("[Mailer] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
