// Package contact 实现联系表单：字段验证、提交状态机和到发信服务的提交
//
// 表单和状态只在帧循环上修改；网络请求在独立的 goroutine 中执行，
// 结果经 channel 交回帧循环，由 Submitter.Poll 统一应用。
package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength 留言最大长度（按字符计）
const MaxMessageLength = 500

// 表单字段名
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// ErrInvalidForm 表单验证失败
var ErrInvalidForm = errors.New("invalid form")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError 字段验证错误
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap 使 errors.Is(err, ErrInvalidForm) 成立
func (e *ValidationError) Unwrap() error {
	return ErrInvalidForm
}

// Form 联系表单
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate 按 姓名、邮箱、留言 的顺序验证，返回第一个失败的字段
func (f Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: FieldName, Reason: "is required"}
	}
	if !emailPattern.MatchString(f.Email) {
		return &ValidationError{Field: FieldEmail, Reason: "is not a valid address"}
	}
	if strings.TrimSpace(f.Message) == "" {
		return &ValidationError{Field: FieldMessage, Reason: "is required"}
	}
	if n := utf8.RuneCountInString(f.Message); n > MaxMessageLength {
		return &ValidationError{
			Field:  FieldMessage,
			Reason: fmt.Sprintf("is too long (%d > %d)", n, MaxMessageLength),
		}
	}
	return nil
}

// IsFormValid 表单是否可以提交
func (f Form) IsFormValid() bool {
	return f.Validate() == nil
}

// Field 按名称返回字段指针，未知名称返回 nil
func (f *Form) Field(name string) *string {
	switch name {
	case FieldName:
		return &f.Name
	case FieldEmail:
		return &f.Email
	case FieldMessage:
		return &f.Message
	default:
		return nil
	}
}

// Reset 清空所有字段
func (f *Form) Reset() {
	*f = Form{}
}
