// Package mailer sends plain-text email with optional attachments over SMTP.
package mailer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/smtp"
)

// Config holds SMTP transport configuration.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	From     string
}

// Message is one outgoing email.
type Message struct {
	To             string
	Subject        string
	Body           string
	Attachment     []byte
	AttachmentName string
}

// Mailer sends email through a configured SMTP transport.
type Mailer struct {
	config Config
}

// New creates a mailer with the given transport configuration.
func New(config Config) *Mailer {
	return &Mailer{config: config}
}

// IsConfigured reports whether the SMTP transport credentials are present.
// Callers treat a false result as a configuration error, not a send failure.
func (m *Mailer) IsConfigured() bool {
	c := m.config
	return c.Host != "" && c.Port != 0 && c.Username != "" && c.Password != "" && c.From != ""
}

// Send delivers the message. The caller is expected to have checked
// IsConfigured first; a transport failure here means the external mail
// dependency is unavailable.
func (m *Mailer) Send(msg Message) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{msg.To}, m.build(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// build assembles the MIME message, multipart when an attachment is present.
func (m *Mailer) build(msg Message) []byte {
	var buf bytes.Buffer

	from := m.config.From
	if m.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.config.FromName, m.config.From)
	}
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")

	if len(msg.Attachment) == 0 {
		buf.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		buf.WriteString(msg.Body)
		return buf.Bytes()
	}

	const boundary = "studioadmin-mail-boundary"
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	buf.WriteString(msg.Body)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: application/octet-stream\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", msg.AttachmentName)

	encoded := base64.StdEncoding.EncodeToString(msg.Attachment)
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)
	return buf.Bytes()
}
