package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"

	"caixa/internal/log"
)

const (
	ProviderSMTP    = "smtp"
	ProviderMailgun = "mailgun"
)

type Config struct {
	// Mail credentials. Missing values are reported when sending, not at startup.
	SenderEmail    string `env:"REMETENTE_EMAIL"`
	SenderPassword string `env:"REMETENTE_SENHA"`
	RecipientEmail string `env:"DESTINATARIO_EMAIL"`

	// Message
	MailSubject string        `env:"EMAIL_ASSUNTO" envDefault:"Registro Diário de Caixa"`
	MailBody    string        `env:"EMAIL_CORPO" envDefault:"Segue o registro de caixa de hoje."`
	SendTimeout time.Duration `env:"SEND_TIMEOUT" envDefault:"30s"`

	// Transport selection
	MailProvider  string `env:"MAIL_PROVIDER" envDefault:"smtp"`
	SMTPHost      string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"587"`
	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`

	// Day files
	MovementsDir string `env:"MOVIMENTACOES_DIR" envDefault:"movimentacoes"`

	// AMQP events, disabled when the URL is empty
	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"caixa"`
	AMQPQueue    string `env:"AMQP_QUEUE" envDefault:"movimentacoes"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

// Load decodes the process environment into a Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

// MailCredential returns the secret used to authenticate with the selected
// provider: the app password for SMTP, the API key for Mailgun.
func (c *Config) MailCredential() string {
	if c.MailProvider == ProviderMailgun {
		return c.MailgunAPIKey
	}
	return c.SenderPassword
}

// AMQPEnabled reports whether movement events should be published.
func (c *Config) AMQPEnabled() bool {
	return c.AMQPURL != ""
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.MovementsDir) == "" {
		errors = append(errors, "movements directory cannot be empty")
	}

	// Validate mail provider
	switch c.MailProvider {
	case ProviderSMTP:
		if c.SMTPHost == "" {
			errors = append(errors, "SMTP host cannot be empty when using smtp provider")
		}
		if c.SMTPPort < 1 || c.SMTPPort > 65535 {
			errors = append(errors, fmt.Sprintf("invalid SMTP port %d: must be between 1 and 65535", c.SMTPPort))
		}
	case ProviderMailgun:
		if c.MailgunDomain == "" {
			errors = append(errors, "Mailgun domain is required when using mailgun provider")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid mail provider '%s': must be one of [%s %s]", c.MailProvider, ProviderSMTP, ProviderMailgun))
	}

	if c.SendTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid send timeout %v: must be positive", c.SendTimeout))
	}

	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}
