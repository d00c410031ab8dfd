package contact

import (
	"context"
	"errors"
	"log"
)

var (
	// ErrSubmissionInFlight 已有提交正在进行
	ErrSubmissionInFlight = errors.New("submission already in flight")
	// ErrSubmitterClosed 提交器已关闭
	ErrSubmitterClosed = errors.New("submitter closed")
)

// Submitter 表单提交状态机
//
// 所有方法都应在帧循环上调用。Submit 在后台 goroutine 中发送，
// 结果只在 Poll 中应用，因此表单和状态只有一个写入者。
type Submitter struct {
	sender Sender

	form    Form
	status  Status
	lastErr error

	ctx     context.Context
	cancel  context.CancelFunc
	pending chan error
	closed  bool
}

// NewSubmitter 创建提交器
func NewSubmitter(sender Sender) *Submitter {
	ctx, cancel := context.WithCancel(context.Background())
	return &Submitter{
		sender: sender,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Form 返回可编辑的表单
func (s *Submitter) Form() *Form {
	return &s.form
}

// Status 当前状态
func (s *Submitter) Status() Status {
	return s.status
}

// Err 最近一次失败的原因
func (s *Submitter) Err() error {
	return s.lastErr
}

// CanSubmit 提交按钮是否可用
func (s *Submitter) CanSubmit() bool {
	return !s.closed && s.status != StatusSending && s.form.IsFormValid()
}

// Submit 提交当前表单
//
// 验证失败直接返回 *ValidationError，不发起网络请求，状态不变；
// 正在发送时返回 ErrSubmissionInFlight。
func (s *Submitter) Submit() error {
	if s.closed {
		return ErrSubmitterClosed
	}
	if s.status == StatusSending {
		return ErrSubmissionInFlight
	}
	if err := s.form.Validate(); err != nil {
		return err
	}

	form := s.form
	result := make(chan error, 1)
	s.pending = result
	s.status = StatusSending
	s.lastErr = nil
	log.Printf("[Contact] submitting message from %q", form.Name)

	go func(ctx context.Context) {
		result <- s.sender.Send(ctx, form)
	}(s.ctx)
	return nil
}

// Poll 应用已完成的提交结果，返回状态是否发生变化
func (s *Submitter) Poll() bool {
	if s.pending == nil || s.closed {
		return false
	}

	select {
	case err := <-s.pending:
		s.pending = nil
		if err != nil {
			s.status = StatusError
			s.lastErr = err
			log.Printf("[Contact] submission failed: %v", err)
			return true
		}
		s.status = StatusSuccess
		s.form.Reset()
		log.Printf("[Contact] submission succeeded")
		return true
	default:
		return false
	}
}

// Wait 阻塞等待当前提交完成并应用结果（用于无窗口工具和测试）
func (s *Submitter) Wait(ctx context.Context) error {
	if s.pending == nil || s.closed {
		return nil
	}
	select {
	case err := <-s.pending:
		// 放回去交给 Poll 统一处理
		s.pending <- err
		s.Poll()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close 取消进行中的提交并丢弃其结果，之后不再更新任何状态
func (s *Submitter) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	s.pending = nil
	log.Printf("[Contact] submitter closed")
}
