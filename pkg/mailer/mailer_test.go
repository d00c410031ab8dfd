package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/contact"
)

// fakeProvider 记录收到的邮件
type fakeProvider struct {
	mu     sync.Mutex
	emails []Email
	err    error
}

func (f *fakeProvider) Send(ctx context.Context, email Email) (Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emails = append(f.emails, email)
	if f.err != nil {
		return Receipt{}, f.err
	}
	return Receipt{ID: "email-123"}, nil
}

func (f *fakeProvider) sent() []Email {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Email(nil), f.emails...)
}

func newTestServer(t *testing.T, provider Provider) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewMux(config.DefaultMailerConfig(), provider))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(url+"/api/send", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp, payload
}

func TestComposeEmail(t *testing.T) {
	cfg := config.DefaultMailerConfig()
	email := ComposeEmail(cfg, contact.Form{
		Name:    "  Ada <script>",
		Email:   "ada@example.com",
		Message: "line one\n<b>line two</b>",
	})

	assert.Equal(t, cfg.From, email.From)
	assert.Equal(t, cfg.To, email.To)
	assert.Equal(t, "New Message from Ada <script>", email.Subject)
	assert.Contains(t, email.HTML, "<strong>From:</strong> Ada &lt;script&gt; (ada@example.com)")
	assert.Contains(t, email.HTML, "line one<br>&lt;b&gt;line two&lt;/b&gt;")
	assert.NotContains(t, email.HTML, "<script>")

	email.To[0] = "changed@example.com"
	assert.NotEqual(t, "changed@example.com", cfg.To[0], "recipients must be copied")
}

func TestComposeEmailSubjectNoNewlines(t *testing.T) {
	email := ComposeEmail(config.DefaultMailerConfig(), contact.Form{Name: "Ada\r\nBcc: x@y.z", Email: "a@b.co", Message: "hi"})
	assert.NotContains(t, email.Subject, "\n")
	assert.NotContains(t, email.Subject, "\r")
}

func TestHandlerSuccess(t *testing.T) {
	provider := &fakeProvider{}
	srv := newTestServer(t, provider)

	resp, payload := post(t, srv.URL, `{"name":"Ada","email":"ada@example.com","message":"hello"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, map[string]interface{}{"id": "email-123"}, payload["data"])
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	sent := provider.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "New Message from Ada", sent[0].Subject)
}

func TestHandlerProviderError(t *testing.T) {
	provider := &fakeProvider{err: &ProviderError{Provider: "resend", Err: errors.New("domain not verified")}}
	srv := newTestServer(t, provider)

	resp, payload := post(t, srv.URL, `{"name":"Ada","email":"ada@example.com","message":"hello"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "domain not verified", payload["error"])
}

func TestHandlerInternalErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		body     string
	}{
		{"malformed json", &fakeProvider{}, `{"name":`},
		{"unexpected provider failure", &fakeProvider{err: errors.New("boom")}, `{"name":"Ada","email":"ada@example.com","message":"hello"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.provider)
			resp, payload := post(t, srv.URL, tt.body)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, "Internal Server Error", payload["error"])
		})
	}
}

func TestHandlerValidation(t *testing.T) {
	provider := &fakeProvider{}
	srv := newTestServer(t, provider)

	resp, payload := post(t, srv.URL, `{"name":"","email":"ada@example.com","message":"hello"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, payload["error"], "name")
	assert.Empty(t, provider.sent(), "invalid forms never reach the provider")
}

func TestHandlerBodyLimit(t *testing.T) {
	cfg := config.DefaultMailerConfig()
	cfg.MaxBodyBytes = 32
	srv := httptest.NewServer(NewMux(cfg, &fakeProvider{}))
	defer srv.Close()

	body := `{"name":"Ada","email":"ada@example.com","message":"` + strings.Repeat("x", 100) + `"}`
	resp, _ := post(t, srv.URL, body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestMuxMethods(t *testing.T) {
	srv := newTestServer(t, &fakeProvider{})

	resp, err := http.Get(srv.URL + "/api/send")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/send", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClientAgainstHandler(t *testing.T) {
	srv := newTestServer(t, &fakeProvider{})
	err := contact.NewClient(srv.URL).Send(context.Background(), contact.Form{Name: "A", Email: "a@b.co", Message: "hi"})
	assert.NoError(t, err)

	failing := newTestServer(t, &fakeProvider{err: &ProviderError{Provider: "resend", Err: errors.New("rejected")}})
	err = contact.NewClient(failing.URL).Send(context.Background(), contact.Form{Name: "A", Email: "a@b.co", Message: "hi"})
	var serr *contact.SubmissionError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusBadRequest, serr.StatusCode)
	assert.Equal(t, "rejected", serr.Message)
}

func TestResendProviderRequiresKey(t *testing.T) {
	_, err := NewResendProvider("")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	p, err := NewResendProvider("re_test")
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestRunGracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	cfg := config.DefaultMailerConfig()
	cfg.Addr = addr
	srv := NewServer(cfg, &fakeProvider{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, srv) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
