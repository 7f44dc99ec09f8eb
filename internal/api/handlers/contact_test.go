package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"folio/internal/api/dto/v1/contact"
	"folio/internal/config"
	"folio/internal/ratelimit"
	"folio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	err   error
	calls int
}

func (f *fakeVerifier) VerifyToken(_ context.Context, _ string) error {
	f.calls++
	return f.err
}

type fakeMailer struct {
	err   error
	calls int
	last  service.ContactMessage
}

func (f *fakeMailer) SendContactMessage(_ context.Context, msg service.ContactMessage) error {
	f.calls++
	f.last = msg
	return f.err
}

func testConfig() *config.Config {
	return &config.Config{
		ResendAPIKey:       "re_test",
		ResendFromEmail:    "Portfolio <noreply@example.com>",
		ContactToEmail:     "owner@example.com",
		RecaptchaSecretKey: "secret",
		RecaptchaMinScore:  0.5,
		RecaptchaAction:    "contact_form",
		ContactRateWindow:  10 * time.Minute,
		ContactRateMax:     5,
	}
}

type testPipeline struct {
	handler  *ContactHandler
	router   *gin.Engine
	verifier *fakeVerifier
	mailer   *fakeMailer
}

func newTestPipeline(cfg *config.Config) *testPipeline {
	gin.SetMode(gin.TestMode)

	verifier := &fakeVerifier{}
	mailer := &fakeMailer{}
	handler := NewContactHandler(cfg, ratelimit.NewMemoryStore(cfg.ContactRateWindow, cfg.ContactRateMax), verifier, mailer)

	router := gin.New()
	router.POST("/api/contact", handler.Submit)

	return &testPipeline{
		handler:  handler,
		router:   router,
		verifier: verifier,
		mailer:   mailer,
	}
}

func validBody() map[string]string {
	return map[string]string{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"company": "Analytical Engines Ltd",
		"message": "I would like to talk about an opening.",
		"token":   "recaptcha-token",
	}
}

func (p *testPipeline) submit(t *testing.T, body any, ip string) *httptest.ResponseRecorder {
	t.Helper()

	var buf []byte
	switch b := body.(type) {
	case string:
		buf = []byte(b)
	default:
		var err error
		buf, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	if ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}

	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body contact.ContactErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestSubmitHappyPath(t *testing.T) {
	p := newTestPipeline(testConfig())

	w := p.submit(t, validBody(), "203.0.113.7")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	assert.Equal(t, 1, p.verifier.calls)
	require.Equal(t, 1, p.mailer.calls)
	assert.Equal(t, "ada@example.com", p.mailer.last.Email)
	assert.Equal(t, "Ada Lovelace", p.mailer.last.Name)
}

func TestSubmitMisconfigured(t *testing.T) {
	t.Run("email provider", func(t *testing.T) {
		cfg := testConfig()
		cfg.ResendAPIKey = ""
		p := newTestPipeline(cfg)

		w := p.submit(t, validBody(), "203.0.113.7")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Email service is not configured.", errorBody(t, w))
		assert.Zero(t, p.verifier.calls)
	})

	t.Run("recaptcha secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.RecaptchaSecretKey = ""
		p := newTestPipeline(cfg)

		w := p.submit(t, validBody(), "203.0.113.7")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "reCAPTCHA is not configured.", errorBody(t, w))
	})
}

func TestSubmitMalformedBody(t *testing.T) {
	p := newTestPipeline(testConfig())

	w := p.submit(t, `{"name": `, "203.0.113.7")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body.", errorBody(t, w))
	assert.Zero(t, p.verifier.calls)
}

// Field validation is total and order-independent per field: any single
// blank, oversized or malformed field rejects with 400 and never reaches
// the verification call.
func TestSubmitFieldValidation(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		want  string
	}{
		{"blank name", "name", "   ", "Missing required fields."},
		{"blank email", "email", "", "Missing required fields."},
		{"blank company", "company", "\t", "Missing required fields."},
		{"blank message", "message", "", "Missing required fields."},
		{"blank token", "token", "", "Missing required fields."},
		{"oversized name", "name", strings.Repeat("a", 101), "Invalid name."},
		{"malformed email", "email", "ada-at-example.com", "Invalid email."},
		{"oversized company", "company", strings.Repeat("c", 121), "Invalid company."},
		{"oversized message", "message", strings.Repeat("m", 2001), "Invalid message length."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPipeline(testConfig())
			body := validBody()
			body[tt.field] = tt.value

			w := p.submit(t, body, "203.0.113.7")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, errorBody(t, w))
			assert.Zero(t, p.verifier.calls, "verification must not be reached")
			assert.Zero(t, p.mailer.calls)
		})
	}
}

// Rate limit window: the 6th submission from one address inside the window
// is rejected with 429 and Retry-After <= 600; after the window elapses a
// new submission is accepted again.
func TestSubmitRateLimit(t *testing.T) {
	p := newTestPipeline(testConfig())

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p.handler.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		w := p.submit(t, validBody(), "203.0.113.7")
		require.Equal(t, http.StatusOK, w.Code, "submission %d", i+1)
		now = now.Add(time.Minute)
	}

	w := p.submit(t, validBody(), "203.0.113.7")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too many requests. Please try again later.", errorBody(t, w))

	retryAfter := w.Header().Get("Retry-After")
	require.NotEmpty(t, retryAfter)
	var secs int
	_, err := fmt.Sscanf(retryAfter, "%d", &secs)
	require.NoError(t, err)
	assert.LessOrEqual(t, secs, 600)
	assert.Greater(t, secs, 0)

	// A different address is unaffected
	w = p.submit(t, validBody(), "198.51.100.9")
	assert.Equal(t, http.StatusOK, w.Code)

	// After the first window expires the counter resets
	now = now.Add(10 * time.Minute)
	w = p.submit(t, validBody(), "203.0.113.7")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitRateLimitUnknownAddress(t *testing.T) {
	cfg := testConfig()
	cfg.ContactRateMax = 1
	p := newTestPipeline(cfg)

	// No forwarding headers: all such requests share the "unknown" budget
	w := p.submit(t, validBody(), "")
	require.Equal(t, http.StatusOK, w.Code)
	w = p.submit(t, validBody(), "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

// Fail-closed verification: any verifier error rejects the request; the
// message only distinguishes action and score failures.
func TestSubmitVerificationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"rejected", service.ErrVerificationFailed, "reCAPTCHA verification failed."},
		{"provider unreachable", fmt.Errorf("%w: connection refused", service.ErrVerificationFailed), "reCAPTCHA verification failed."},
		{"action mismatch", fmt.Errorf("%w: %q", service.ErrActionMismatch, "login"), "reCAPTCHA action mismatch."},
		{"score too low", fmt.Errorf("%w: 0.10", service.ErrScoreTooLow), "reCAPTCHA score too low."},
		{"unexpected error", fmt.Errorf("boom"), "reCAPTCHA verification failed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPipeline(testConfig())
			p.verifier.err = tt.err

			w := p.submit(t, validBody(), "203.0.113.7")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, errorBody(t, w))
			assert.Zero(t, p.mailer.calls, "no email on failed verification")
		})
	}
}

func TestSubmitSendFailure(t *testing.T) {
	p := newTestPipeline(testConfig())
	p.mailer.err = fmt.Errorf("provider returned 500")

	w := p.submit(t, validBody(), "203.0.113.7")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send email.", errorBody(t, w))
	assert.Equal(t, 1, p.mailer.calls)
}

func TestSubmitTrimsBeforeSending(t *testing.T) {
	p := newTestPipeline(testConfig())
	body := validBody()
	body["name"] = "  Ada Lovelace  "
	body["email"] = " ada@example.com "

	w := p.submit(t, body, "203.0.113.7")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ada Lovelace", p.mailer.last.Name)
	assert.Equal(t, "ada@example.com", p.mailer.last.Email)
}
