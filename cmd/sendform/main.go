// sendform 无窗口提交联系表单（用于验证发信服务）
//
// 用法：
//
//	go run ./cmd/sendform -name Ada -email ada@example.com -message "Hello"
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/contact"
	"github.com/decker502/portfolio/pkg/embedded"
)

var (
	// 命令行参数
	apiBase = flag.String("api", "", "发信服务地址，默认读取 data/site.yaml 中的 apiBase")
	name    = flag.String("name", "", "姓名")
	email   = flag.String("email", "", "邮箱")
	message = flag.String("message", "", "留言")
	timeout = flag.Duration("timeout", 15*time.Second, "请求超时")
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetFlags(0)
	}

	base := *apiBase
	if base == "" {
		site, err := config.LoadSiteConfig(config.SiteConfigPath)
		if err != nil {
			log.Fatalf("failed to load site config (embedded=%v): %v", embedded.IsInitialized(), err)
		}
		base = site.APIBase
	}

	submitter := contact.NewSubmitter(contact.NewClient(base))
	defer submitter.Close()

	form := submitter.Form()
	form.Name, form.Email, form.Message = *name, *email, *message

	if err := submitter.Submit(); err != nil {
		fmt.Fprintf(os.Stderr, "form rejected: %v\n", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := submitter.Wait(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "timed out waiting for %s: %v\n", base, err)
		os.Exit(1)
	}

	fmt.Println(submitter.Status())
	if submitter.Status() != contact.StatusSuccess {
		fmt.Fprintf(os.Stderr, "submission failed: %v\n", submitter.Err())
		os.Exit(1)
	}
}
