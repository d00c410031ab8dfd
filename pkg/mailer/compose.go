package mailer

import (
	"fmt"
	"html"
	"strings"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/contact"
)

// ComposeEmail 把表单转换为邮件，所有用户输入都经过 HTML 转义
func ComposeEmail(cfg *config.MailerConfig, form contact.Form) Email {
	name := strings.TrimSpace(form.Name)
	message := html.EscapeString(strings.TrimSpace(form.Message))
	message = strings.ReplaceAll(message, "\n", "<br>")

	body := fmt.Sprintf("<p><strong>From:</strong> %s (%s)</p><p>%s</p>",
		html.EscapeString(name),
		html.EscapeString(strings.TrimSpace(form.Email)),
		message,
	)

	to := make([]string, len(cfg.To))
	copy(to, cfg.To)

	return Email{
		From:    cfg.From,
		To:      to,
		Subject: cfg.SubjectPrefix + stripNewlines(name),
		HTML:    body,
	}
}

// stripNewlines 去掉换行，防止主题头注入
func stripNewlines(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
