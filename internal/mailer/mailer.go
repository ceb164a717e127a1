// Package mailer delivers a day file as an email attachment.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"caixa/internal/log"
)

// Config carries the addresses and credential used for every send.
type Config struct {
	From     string
	Password string
	To       string
	Subject  string
	Body     string
}

// Credentials authenticate a transport against the relay or API.
type Credentials struct {
	Username string
	Secret   string
}

// Transport delivers a fully built message.
type Transport interface {
	Send(ctx context.Context, cred Credentials, msg Message) error
}

type Status int

const (
	StatusSent Status = iota
	StatusConfigError
	StatusMissingAttachment
	StatusTransportError
)

func (s Status) String() string {
	switch s {
	case StatusSent:
		return "sent"
	case StatusConfigError:
		return "config_error"
	case StatusMissingAttachment:
		return "missing_attachment"
	case StatusTransportError:
		return "transport_error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of a send. Err is set for every status but StatusSent.
type Result struct {
	Status     Status
	Recipient  string
	Attachment string
	Size       int64
	Err        error
}

var (
	ErrMissingCredentials = errors.New("missing mail credentials")
	ErrMissingAttachment  = errors.New("attachment not found")
)

func (r Result) OK() bool {
	return r.Status == StatusSent
}

// Lines renders the operator-facing outcome.
func (r Result) Lines() []string {
	switch r.Status {
	case StatusSent:
		return []string{fmt.Sprintf("E-mail enviado com sucesso para %s!", r.Recipient)}
	case StatusConfigError:
		return []string{
			"Erro: As credenciais de e-mail (REMETENTE_EMAIL, REMETENTE_SENHA, DESTINATARIO_EMAIL) não foram configuradas no .env.",
			"Verifique seu arquivo .env e certifique-se de que as variáveis estão preenchidas.",
		}
	case StatusMissingAttachment:
		return []string{fmt.Sprintf("Erro: O arquivo '%s' não foi encontrado para envio.", r.Attachment)}
	default:
		return []string{
			fmt.Sprintf("Erro ao enviar e-mail: %v", r.Err),
			"Verifique as configurações de e-mail, especialmente a 'senha de aplicativo' para o Gmail.",
		}
	}
}

type Mailer struct {
	cfg       Config
	transport Transport
	logger    *log.Logger
}

func New(cfg Config, transport Transport, logger *log.Logger) *Mailer {
	if logger == nil {
		logger = log.Discard()
	}
	return &Mailer{
		cfg:       cfg,
		transport: transport,
		logger:    logger.WithComponent(log.ComponentMailer),
	}
}

// Send mails the file at path as an attachment. Credentials and the file are
// checked before any network I/O; failures are reported in the Result and
// never returned as errors.
func (m *Mailer) Send(ctx context.Context, path string) Result {
	res := Result{Recipient: m.cfg.To, Attachment: path}

	if m.cfg.From == "" || m.cfg.Password == "" || m.cfg.To == "" {
		res.Status, res.Err = StatusConfigError, ErrMissingCredentials
		m.logger.WarnContext(ctx, "Mail credentials not configured",
			log.FieldOperation, log.OpSend, log.FieldErrorType, log.ErrorTypeConfiguration)
		return res
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		res.Status, res.Err = StatusMissingAttachment, fmt.Errorf("%w: %s", ErrMissingAttachment, path)
		m.logger.WarnContext(ctx, "Day file not found for sending",
			log.FieldPath, path, log.FieldErrorType, log.ErrorTypeNotFound)
		return res
	}
	if err != nil {
		res.Status, res.Err = StatusTransportError, fmt.Errorf("read attachment: %w", err)
		return res
	}
	res.Size = int64(len(content))

	msg := Message{
		From:    m.cfg.From,
		To:      []string{m.cfg.To},
		Subject: m.cfg.Subject,
		Body:    m.cfg.Body,
		Attachments: []Attachment{{
			Name:        filepath.Base(path),
			ContentType: "text/plain",
			Content:     content,
		}},
	}

	cred := Credentials{Username: m.cfg.From, Secret: m.cfg.Password}
	if err := m.transport.Send(ctx, cred, msg); err != nil {
		res.Status, res.Err = StatusTransportError, err
		m.logger.ErrorContext(ctx, "Failed to send day file",
			log.FieldPath, path,
			log.FieldRecipient, m.cfg.To,
			log.FieldError, err,
			log.FieldErrorType, log.ErrorTypeNetwork)
		return res
	}

	res.Status = StatusSent
	m.logger.InfoContext(ctx, "Day file sent",
		log.FieldPath, path,
		log.FieldRecipient, m.cfg.To,
		log.FieldSize, humanize.Bytes(uint64(res.Size)))
	return res
}
