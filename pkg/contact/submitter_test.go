package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedSender 在 release 之前阻塞，记录调用次数
type gatedSender struct {
	mu      sync.Mutex
	calls   int
	forms   []Form
	release chan error
	started chan struct{}
}

func newGatedSender() *gatedSender {
	return &gatedSender{
		release: make(chan error, 1),
		started: make(chan struct{}, 8),
	}
}

func (g *gatedSender) Send(ctx context.Context, form Form) error {
	g.mu.Lock()
	g.calls++
	g.forms = append(g.forms, form)
	g.mu.Unlock()
	g.started <- struct{}{}

	select {
	case err := <-g.release:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *gatedSender) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func fill(s *Submitter, f Form) {
	*s.Form() = f
}

func TestSubmitterSuccessResetsForm(t *testing.T) {
	sender := newGatedSender()
	s := NewSubmitter(sender)
	defer s.Close()

	fill(s, validForm)
	assert.Equal(t, StatusIdle, s.Status())
	require.NoError(t, s.Submit())
	assert.Equal(t, StatusSending, s.Status())
	assert.False(t, s.CanSubmit())

	<-sender.started
	assert.False(t, s.Poll(), "nothing to apply before the call returns")

	sender.release <- nil
	require.NoError(t, s.Wait(waitCtx(t)))

	assert.Equal(t, StatusSuccess, s.Status())
	assert.Equal(t, Form{}, *s.Form())
	assert.NoError(t, s.Err())
	assert.Equal(t, []Form{validForm}, sender.forms)
}

func TestSubmitterErrorKeepsForm(t *testing.T) {
	sender := newGatedSender()
	s := NewSubmitter(sender)
	defer s.Close()

	fill(s, validForm)
	require.NoError(t, s.Submit())
	<-sender.started
	sender.release <- &SubmissionError{StatusCode: 400, Message: "rejected"}
	require.NoError(t, s.Wait(waitCtx(t)))

	assert.Equal(t, StatusError, s.Status())
	assert.Equal(t, validForm, *s.Form())
	var serr *SubmissionError
	assert.True(t, errors.As(s.Err(), &serr))

	// 可以重新提交
	require.NoError(t, s.Submit())
	<-sender.started
	sender.release <- nil
	require.NoError(t, s.Wait(waitCtx(t)))
	assert.Equal(t, StatusSuccess, s.Status())
	assert.Equal(t, 2, sender.callCount())
}

func TestSubmitterValidationNeverSends(t *testing.T) {
	sender := newGatedSender()
	s := NewSubmitter(sender)
	defer s.Close()

	fill(s, Form{Name: "", Email: "a@b.co", Message: "hi"})
	err := s.Submit()
	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Equal(t, StatusIdle, s.Status())
	assert.Zero(t, sender.callCount())
	assert.False(t, s.CanSubmit())
}

func TestSubmitterRejectsReentry(t *testing.T) {
	sender := newGatedSender()
	s := NewSubmitter(sender)
	defer s.Close()

	fill(s, validForm)
	require.NoError(t, s.Submit())
	<-sender.started

	assert.ErrorIs(t, s.Submit(), ErrSubmissionInFlight)
	assert.Equal(t, 1, sender.callCount())

	sender.release <- nil
	require.NoError(t, s.Wait(waitCtx(t)))
}

func TestSubmitterCloseDropsResult(t *testing.T) {
	sender := newGatedSender()
	s := NewSubmitter(sender)

	fill(s, validForm)
	require.NoError(t, s.Submit())
	<-sender.started

	s.Close()
	assert.False(t, s.Poll())
	assert.Equal(t, StatusSending, s.Status(), "no state update after teardown")
	assert.Equal(t, validForm, *s.Form())
	assert.ErrorIs(t, s.Submit(), ErrSubmitterClosed)
	s.Close()
}

func TestSubmitterWithClient(t *testing.T) {
	srv := newSendServer(t, 200)
	s := NewSubmitter(NewClient(srv.URL))
	defer s.Close()

	fill(s, validForm)
	require.NoError(t, s.Submit())
	require.NoError(t, s.Wait(waitCtx(t)))
	assert.Equal(t, StatusSuccess, s.Status())

	srv500 := newSendServer(t, 500)
	s2 := NewSubmitter(NewClient(srv500.URL))
	defer s2.Close()
	fill(s2, validForm)
	require.NoError(t, s2.Submit())
	require.NoError(t, s2.Wait(waitCtx(t)))
	assert.Equal(t, StatusError, s2.Status())
}
