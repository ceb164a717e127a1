// Package cli provides the initialization steps used by cmd/caixa.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"caixa/internal/amqp"
	"caixa/internal/config"
	"caixa/internal/log"
	"caixa/internal/mailer"
	"caixa/internal/services"
)

// LoadEnvFile loads the .env file from the working directory.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging on stderr at the given level
// and sets it as the default logger.
func SetupLogger(level string) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level, _ = log.ParseLevel(level)
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	logger = logger.WithComponent(log.ComponentConfig)
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", log.FieldError, err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed",
			log.FieldOperation, log.OpValidate,
			log.FieldErrorType, log.ErrorTypeValidation,
			log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// NewTransport returns the mail transport selected by MAIL_PROVIDER.
func NewTransport(cfg *config.Config) mailer.Transport {
	if cfg.MailProvider == config.ProviderMailgun {
		return mailer.NewMailgunTransport(cfg.MailgunDomain)
	}
	return mailer.NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort)
}

// NewMailerConfig builds the mailer configuration from the loaded config.
func NewMailerConfig(cfg *config.Config) mailer.Config {
	return mailer.Config{
		From:     cfg.SenderEmail,
		Password: cfg.MailCredential(),
		To:       cfg.RecipientEmail,
		Subject:  cfg.MailSubject,
		Body:     cfg.MailBody,
	}
}

// InitPublisher connects to the broker when AMQP is configured. Events are
// optional, so a connection failure is logged and nil is returned.
func InitPublisher(logger *log.Logger, cfg *config.Config) services.Publisher {
	if !cfg.AMQPEnabled() {
		return nil
	}
	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
	if err != nil {
		logger.Warn("AMQP unavailable, events disabled", log.FieldError, err)
		return nil
	}
	logger.Info("Publishing cash events", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	return client
}
