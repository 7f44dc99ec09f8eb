package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token  string
	err    error
	action string
	calls  int
}

func (s *staticTokens) Token(_ context.Context, action string) (string, error) {
	s.calls++
	s.action = action
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func fillForm(f *Form) {
	f.SetName("Ada Lovelace")
	f.SetEmail("ada@example.com")
	f.SetCompany("Analytical Engines Ltd")
	f.SetMessage("Hello!")
}

func TestFormStartsIdleAndEditingStaysIdle(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer srv.Close()

	f := NewForm(srv.URL, "site-key", &staticTokens{token: "tok"})
	assert.Equal(t, StatusIdle, f.Status())

	fillForm(f)
	assert.Equal(t, StatusIdle, f.Status())
	assert.Zero(t, atomic.LoadInt32(&requests), "editing must never trigger a network call")
}

func TestFormSubmitSuccessClearsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tokens := &staticTokens{token: "tok"}
	f := NewForm(srv.URL, "site-key", tokens)
	fillForm(f)

	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, StatusSuccess, f.Status())
	assert.Equal(t, Fields{}, f.Fields())
	assert.Equal(t, Action, tokens.action)
	assert.Equal(t, "Thanks! Your message is on its way.", f.StatusMessage())
}

func TestFormSubmitMissingSiteKey(t *testing.T) {
	f := NewForm("http://unused.invalid", "", &staticTokens{token: "tok"})
	fillForm(f)

	err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusError, f.Status())
	assert.Equal(t, "Missing reCAPTCHA site key.", f.ErrorMessage())
}

func TestFormSubmitWidgetNotLoaded(t *testing.T) {
	f := NewForm("http://unused.invalid", "site-key", nil)
	fillForm(f)

	err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "reCAPTCHA failed to load. Please refresh and try again.", f.ErrorMessage())
}

func TestFormSubmitTokenRejected(t *testing.T) {
	f := NewForm("http://unused.invalid", "site-key", &staticTokens{err: errors.New("widget timed out")})
	fillForm(f)

	err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusError, f.Status())
	assert.Equal(t, "widget timed out", f.ErrorMessage())
}

func TestFormSubmitServerErrorSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid email."}`))
	}))
	defer srv.Close()

	f := NewForm(srv.URL, "site-key", &staticTokens{token: "tok"})
	fillForm(f)

	err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusError, f.Status())
	assert.Equal(t, "Invalid email.", f.ErrorMessage())

	// Fields are kept so the user can correct and resubmit
	assert.Equal(t, "ada@example.com", f.Fields().Email)
}

func TestFormSubmitServerErrorUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	f := NewForm(srv.URL, "site-key", &staticTokens{token: "tok"})
	fillForm(f)

	require.Error(t, f.Submit(context.Background()))
	assert.Equal(t, "Unable to send message.", f.ErrorMessage())
}

func TestFormSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	f := NewForm(srv.URL, "site-key", &staticTokens{token: "tok"})
	fillForm(f)

	require.Error(t, f.Submit(context.Background()))
	assert.Equal(t, StatusError, f.Status())
	assert.NotEmpty(t, f.ErrorMessage())
}

func TestFormEditingClearsTerminalStates(t *testing.T) {
	f := NewForm("http://unused.invalid", "", &staticTokens{token: "tok"})
	fillForm(f)

	require.Error(t, f.Submit(context.Background()))
	require.Equal(t, StatusError, f.Status())

	f.SetName("Grace Hopper")
	assert.Equal(t, StatusIdle, f.Status())
	assert.Empty(t, f.ErrorMessage())
	assert.Equal(t, "Grace Hopper", f.Fields().Name, "the edit is not discarded")
}

func TestFormSingleSubmissionInFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	f := NewForm(srv.URL, "site-key", &staticTokens{token: "tok"})
	fillForm(f)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	// Wait until the first submission is in flight
	require.Eventually(t, func() bool { return f.Status() == StatusSubmitting }, 2*time.Second, 10*time.Millisecond)

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	// Edits during submitting are ignored (inputs are disabled)
	f.SetName("changed")
	assert.Equal(t, StatusSubmitting, f.Status())
	assert.Equal(t, "Ada Lovelace", f.Fields().Name)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StatusSuccess, f.Status())
}
