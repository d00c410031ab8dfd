// Package mailer 实现联系表单的发信接口 POST /api/send
//
// 接口把表单转换为一封邮件，经 Provider（默认 Resend）发出：
//   - 200 {"success": true, "data": {...}}  服务商接受
//   - 400 {"error": ...}                   表单无效或服务商拒绝
//   - 500 {"error": "Internal Server Error"} 请求无法解析等内部错误
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ErrMissingAPIKey 未配置 API Key
var ErrMissingAPIKey = errors.New("missing email provider API key")

// Email 待发送的邮件
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Receipt 服务商回执
type Receipt struct {
	ID string `json:"id"`
}

// Provider 发信服务商
type Provider interface {
	Send(ctx context.Context, email Email) (Receipt, error)
}

// ProviderError 服务商拒绝或调用失败
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ResendProvider 使用 Resend 发信
type ResendProvider struct {
	client *resend.Client
}

// NewResendProvider 创建 Resend 服务商
func NewResendProvider(apiKey string) (*ResendProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &ResendProvider{client: resend.NewClient(apiKey)}, nil
}

// Send 实现 Provider
func (p *ResendProvider) Send(ctx context.Context, email Email) (Receipt, error) {
	sent, err := p.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		return Receipt{}, &ProviderError{Provider: "resend", Err: err}
	}
	return Receipt{ID: sent.Id}, nil
}
