package mailer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	calls int
	cred  Credentials
	msg   Message
	err   error
}

func (f *fakeTransport) Send(_ context.Context, cred Credentials, msg Message) error {
	f.calls++
	f.cred = cred
	f.msg = msg
	return f.err
}

func validConfig() Config {
	return Config{
		From:     "caixa@example.com",
		Password: "app-password",
		To:       "dono@example.com",
		Subject:  "Registro Diário de Caixa",
		Body:     "Segue o registro de caixa de hoje.",
	}
}

func writeDayFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movimentacoes-2025-03-14.txt")
	content := "[10:30:00] Valor: R$150.75, Tipo: Entrada, Descrição: venda balcão\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSendShortCircuitsOnMissingCredentials(t *testing.T) {
	path := writeDayFile(t)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing sender", func(c *Config) { c.From = "" }},
		{"missing password", func(c *Config) { c.Password = "" }},
		{"missing recipient", func(c *Config) { c.To = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			transport := &fakeTransport{}

			res := New(cfg, transport, nil).Send(context.Background(), path)

			assert.Equal(t, StatusConfigError, res.Status)
			assert.ErrorIs(t, res.Err, ErrMissingCredentials)
			assert.Zero(t, transport.calls, "no network attempt expected")
			require.Len(t, res.Lines(), 2)
			assert.Contains(t, res.Lines()[0], "credenciais de e-mail")
		})
	}
}

func TestSendMissingDayFile(t *testing.T) {
	transport := &fakeTransport{}
	path := filepath.Join(t.TempDir(), "movimentacoes-2025-03-14.txt")

	res := New(validConfig(), transport, nil).Send(context.Background(), path)

	assert.Equal(t, StatusMissingAttachment, res.Status)
	assert.ErrorIs(t, res.Err, ErrMissingAttachment)
	assert.Zero(t, transport.calls)
	assert.Equal(t, []string{"Erro: O arquivo '" + path + "' não foi encontrado para envio."}, res.Lines())
}

func TestSendCredentialCheckPrecedesFileCheck(t *testing.T) {
	cfg := validConfig()
	cfg.Password = ""
	path := filepath.Join(t.TempDir(), "nope.txt")

	res := New(cfg, &fakeTransport{}, nil).Send(context.Background(), path)
	assert.Equal(t, StatusConfigError, res.Status)
}

func TestSendTransportError(t *testing.T) {
	path := writeDayFile(t)
	transport := &fakeTransport{err: errors.New("535 5.7.8 Username and Password not accepted")}

	res := New(validConfig(), transport, nil).Send(context.Background(), path)

	assert.Equal(t, StatusTransportError, res.Status)
	assert.False(t, res.OK())
	assert.Equal(t, 1, transport.calls)
	lines := res.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Erro ao enviar e-mail: 535 5.7.8 Username and Password not accepted", lines[0])
}

func TestSendSuccess(t *testing.T) {
	path := writeDayFile(t)
	transport := &fakeTransport{}

	res := New(validConfig(), transport, nil).Send(context.Background(), path)

	require.True(t, res.OK(), "unexpected result %+v", res)
	assert.Equal(t, []string{"E-mail enviado com sucesso para dono@example.com!"}, res.Lines())
	assert.Equal(t, Credentials{Username: "caixa@example.com", Secret: "app-password"}, transport.cred)
	assert.Equal(t, []string{"dono@example.com"}, transport.msg.To)
	assert.Equal(t, "Registro Diário de Caixa", transport.msg.Subject)
	require.Len(t, transport.msg.Attachments, 1)
	assert.Equal(t, "movimentacoes-2025-03-14.txt", transport.msg.Attachments[0].Name)
	assert.Contains(t, string(transport.msg.Attachments[0].Content), "venda balcão")
	assert.Equal(t, int64(len(transport.msg.Attachments[0].Content)), res.Size)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "sent", StatusSent.String())
	assert.Equal(t, "config_error", StatusConfigError.String())
	assert.Equal(t, "missing_attachment", StatusMissingAttachment.String())
	assert.Equal(t, "transport_error", StatusTransportError.String())
}
