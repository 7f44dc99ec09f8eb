package service

import "errors"

// Sentinel errors for service layer
var (
	// ErrVerificationFailed covers every fail-closed path of token
	// verification: provider said no, provider unreachable, or the
	// response could not be parsed.
	ErrVerificationFailed = errors.New("recaptcha verification failed")

	// ErrActionMismatch means the token was issued for a different action
	// than the one this form expects (token reuse across contexts).
	ErrActionMismatch = errors.New("recaptcha action mismatch")

	// ErrScoreTooLow means the token verified but the confidence score is
	// below the configured minimum (probable automated traffic).
	ErrScoreTooLow = errors.New("recaptcha score too low")
)
