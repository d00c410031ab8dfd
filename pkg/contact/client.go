package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SendPath 发信接口路径
const SendPath = "/api/send"

// SubmissionError 提交失败：网络错误或非 2xx 响应
type SubmissionError struct {
	// StatusCode HTTP 状态码，网络错误时为 0
	StatusCode int
	// Message 服务端返回的错误信息
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("submission failed: status %d: %s", e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("submission failed: status %d", e.StatusCode)
	default:
		return fmt.Sprintf("submission failed: %v", e.Err)
	}
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Sender 表单发送接口
type Sender interface {
	Send(ctx context.Context, form Form) error
}

// Client 发信接口客户端
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient 创建客户端
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// Send 以 JSON 提交表单
func (c *Client) Send(ctx context.Context, form Form) error {
	body, err := json.Marshal(form)
	if err != nil {
		return &SubmissionError{Err: fmt.Errorf("encode form: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+SendPath, bytes.NewReader(body))
	if err != nil {
		return &SubmissionError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &SubmissionError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &SubmissionError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// errorMessage 提取响应中的 {"error": ...}
// error 可能是字符串，也可能是服务商返回的对象
func errorMessage(r io.Reader) string {
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 16<<10)).Decode(&payload); err != nil || len(payload.Error) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(payload.Error, &s); err == nil {
		return s
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload.Error, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}
	return string(payload.Error)
}
