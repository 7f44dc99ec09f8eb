package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"folio/internal/logging"
)

// DefaultSiteVerifyURL is Google's reCAPTCHA verification endpoint.
const DefaultSiteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// TokenVerifier verifies a human-verification token server-side.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) error
}

// RecaptchaService handles reCAPTCHA verification
type RecaptchaService struct {
	secretKey string
	minScore  float64
	action    string
	verifyURL string
	client    *http.Client
}

// NewRecaptchaService creates a new reCAPTCHA service.
// Tokens must have been issued for the given action and must score at
// least minScore when the provider reports a score.
func NewRecaptchaService(secretKey string, minScore float64, action string) *RecaptchaService {
	return &RecaptchaService{
		secretKey: secretKey,
		minScore:  minScore,
		action:    action,
		verifyURL: DefaultSiteVerifyURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithVerifyURL overrides the provider endpoint. Used in tests.
func (s *RecaptchaService) WithVerifyURL(u string) *RecaptchaService {
	s.verifyURL = u
	return s
}

// recaptchaResponse represents the response from Google's reCAPTCHA API.
// Score and Action are absent for v2 tokens, so they are modeled as
// pointers rather than zero values.
type recaptchaResponse struct {
	Success     bool     `json:"success"`
	Score       *float64 `json:"score"`
	Action      *string  `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// VerifyToken verifies a reCAPTCHA token against the provider.
//
// Every provider-side failure (network, non-JSON body, success=false) maps
// to ErrVerificationFailed: verification fails closed, never open.
func (s *RecaptchaService) VerifyToken(ctx context.Context, token string) error {
	logger := logging.GetGlobalLogger()

	if s.secretKey == "" {
		return fmt.Errorf("%w: secret key not configured", ErrVerificationFailed)
	}
	if token == "" {
		return fmt.Errorf("%w: token is required", ErrVerificationFailed)
	}

	data := url.Values{}
	data.Set("secret", s.secretKey)
	data.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Warn("reCAPTCHA verification request failed: %v", err)
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	defer resp.Body.Close()

	var result recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Warn("reCAPTCHA response parse failed: %v", err)
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	if !result.Success {
		logger.Warn("reCAPTCHA verification rejected: %v", result.ErrorCodes)
		return fmt.Errorf("%w: %v", ErrVerificationFailed, result.ErrorCodes)
	}

	if result.Action != nil && *result.Action != s.action {
		logger.Warn("reCAPTCHA action mismatch: got %q, want %q", *result.Action, s.action)
		return fmt.Errorf("%w: %q", ErrActionMismatch, *result.Action)
	}

	if result.Score != nil && *result.Score < s.minScore {
		logger.Warn("reCAPTCHA score too low: %.2f < %.2f", *result.Score, s.minScore)
		return fmt.Errorf("%w: %.2f", ErrScoreTooLow, *result.Score)
	}

	return nil
}
