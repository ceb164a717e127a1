package mailer

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"
)

// MailgunTransport sends through the Mailgun HTTP API. The credential secret
// is the API key.
type MailgunTransport struct {
	Domain string

	// APIBase overrides the API endpoint, e.g. the EU region.
	APIBase string
}

func NewMailgunTransport(domain string) *MailgunTransport {
	return &MailgunTransport{Domain: domain}
}

func (t *MailgunTransport) Send(ctx context.Context, cred Credentials, msg Message) error {
	mg := mailgun.NewMailgun(t.Domain, cred.Secret)
	if t.APIBase != "" {
		mg.SetAPIBase(t.APIBase)
	}

	message := mg.NewMessage(msg.From, msg.Subject, msg.Body, msg.To...)
	for _, a := range msg.Attachments {
		message.AddBufferAttachment(a.Name, a.Content)
	}

	resp, _, err := mg.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("mailgun send failed: %w. Response: %s", err, resp)
	}
	return nil
}
