package main

import (
	"os"

	"folio/internal/api"
	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logging.InitLogger(logging.DefaultLogConfig(cfg.LogFile)); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	// Misconfiguration is fatal in production. In development the server
	// still runs: the content endpoints stay up and the contact endpoint
	// reports the misconfiguration per request.
	if err := cfg.Validate(); err != nil {
		if cfg.Environment == "production" {
			logger.Error("Invalid configuration: %v", err)
			os.Exit(1)
		}
		logger.Warn("Configuration incomplete: %v", err)
	}

	verifier := service.NewRecaptchaService(cfg.RecaptchaSecretKey, cfg.RecaptchaMinScore, cfg.RecaptchaAction)
	mailer := service.NewResendMailer(cfg.ResendAPIKey, cfg.ResendFromEmail, cfg.ContactToEmail)

	srv := api.NewServer(cfg, verifier, mailer)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
