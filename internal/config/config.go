package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string `env:"ENV" envDefault:"development"`
	Port           string `env:"PORT" envDefault:"8080"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFile        string `env:"LOG_FILE" envDefault:"./logs/api.log"`

	// Email Provider Configuration (Resend)
	ResendAPIKey    string `env:"RESEND_API_KEY"`
	ResendFromEmail string `env:"RESEND_FROM_EMAIL"`
	ContactToEmail  string `env:"CONTACT_TO_EMAIL"`

	// reCAPTCHA Configuration
	RecaptchaSecretKey string  `env:"RECAPTCHA_SECRET_KEY"`
	RecaptchaSiteKey   string  `env:"RECAPTCHA_SITE_KEY"`
	RecaptchaMinScore  float64 `env:"RECAPTCHA_MIN_SCORE" envDefault:"0.5"`
	RecaptchaAction    string  `env:"RECAPTCHA_ACTION" envDefault:"contact_form"`

	// Contact Rate Limit Configuration
	ContactRateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"10m"`
	ContactRateMax    int           `env:"CONTACT_RATE_MAX" envDefault:"5"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists. godotenv does not overwrite variables
	// that are already set, so the real environment always wins.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// EmailConfigured reports whether the outbound email provider is usable.
func (c *Config) EmailConfigured() bool {
	return c.ResendAPIKey != "" && c.ResendFromEmail != "" && c.ContactToEmail != ""
}

// RecaptchaConfigured reports whether server-side token verification is usable.
func (c *Config) RecaptchaConfigured() bool {
	return c.RecaptchaSecretKey != ""
}

// Validate checks that every field the contact pipeline depends on is set.
// Used by the server entrypoint to warn early on operator misconfiguration.
func (c *Config) Validate() error {
	if !c.EmailConfigured() {
		return fmt.Errorf("email provider not configured: RESEND_API_KEY, RESEND_FROM_EMAIL and CONTACT_TO_EMAIL are required")
	}
	if !c.RecaptchaConfigured() {
		return fmt.Errorf("recaptcha not configured: RECAPTCHA_SECRET_KEY is required")
	}
	if c.ContactRateMax <= 0 {
		return fmt.Errorf("CONTACT_RATE_MAX must be positive")
	}
	if c.ContactRateWindow <= 0 {
		return fmt.Errorf("CONTACT_RATE_WINDOW must be positive")
	}
	return nil
}
