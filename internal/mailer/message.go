package mailer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"
	"time"
)

const base64LineLength = 76

type Attachment struct {
	Name        string
	ContentType string
	Content     []byte
}

// Message is a plain-text email with optional attachments.
type Message struct {
	From        string
	To          []string
	Subject     string
	Body        string
	Date        time.Time
	Attachments []Attachment
}

// Bytes renders the message as a multipart/mixed RFC 5322 document with CRLF
// line endings.
func (m Message) Bytes() ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=utf-8")
	textHeader.Set("Content-Transfer-Encoding", "quoted-printable")
	pw, err := mw.CreatePart(textHeader)
	if err != nil {
		return nil, fmt.Errorf("create body part: %w", err)
	}
	qp := quotedprintable.NewWriter(pw)
	if _, err := qp.Write([]byte(m.Body)); err != nil {
		return nil, fmt.Errorf("write body: %w", err)
	}
	if err := qp.Close(); err != nil {
		return nil, fmt.Errorf("write body: %w", err)
	}

	for _, a := range m.Attachments {
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h := textproto.MIMEHeader{}
		h.Set("Content-Type", mime.FormatMediaType(contentType, map[string]string{"name": a.Name}))
		h.Set("Content-Transfer-Encoding", "base64")
		h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.Name}))
		pw, err := mw.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("create attachment part %s: %w", a.Name, err)
		}
		if err := writeBase64(pw, a.Content); err != nil {
			return nil, fmt.Errorf("write attachment %s: %w", a.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	date := m.Date
	if date.IsZero() {
		date = time.Now()
	}

	var out bytes.Buffer
	writeHeader(&out, "From", m.From)
	writeHeader(&out, "To", strings.Join(m.To, ", "))
	writeHeader(&out, "Subject", mime.QEncoding.Encode("utf-8", m.Subject))
	writeHeader(&out, "Date", date.Format(time.RFC1123Z))
	writeHeader(&out, "MIME-Version", "1.0")
	writeHeader(&out, "Content-Type", mime.FormatMediaType("multipart/mixed", map[string]string{"boundary": mw.Boundary()}))
	out.WriteString("\r\n")
	out.Write(body.Bytes())

	return out.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString("\r\n")
}

func writeBase64(w io.Writer, content []byte) error {
	encoded := base64.StdEncoding.EncodeToString(content)
	for len(encoded) > 0 {
		n := min(base64LineLength, len(encoded))
		if _, err := w.Write([]byte(encoded[:n] + "\r\n")); err != nil {
			return err
		}
		encoded = encoded[n:]
	}
	return nil
}
