// Package mailer sends the contact-form notification email over SMTP.
// Uses net/smtp directly (no SDK) to keep the outbound surface small.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/devfolio/backend/internal/model"
)

// Mailer delivers a notification for a newly submitted contact message.
// Delivery is best-effort everywhere this is called: errors are logged by
// the caller and never surfaced to the submitter.
type Mailer interface {
	SendContactNotification(ctx context.Context, msg *model.ContactMessage) error
}

// Config carries the SMTP settings read from the environment.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // sender address; defaults to Username
	To       string // notification recipient; defaults to Username
}

// New returns an SMTP-backed Mailer, or a logged no-op when the host or
// username is missing so the server runs fine without email configured.
func New(cfg Config) Mailer {
	if cfg.Host == "" || cfg.Username == "" {
		slog.Info("email disabled: missing SMTP config")
		return &disabledMailer{}
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.To == "" {
		cfg.To = cfg.Username
	}
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

// disabledMailer is used when SMTP is not configured.
type disabledMailer struct{}

func (d *disabledMailer) SendContactNotification(ctx context.Context, msg *model.ContactMessage) error {
	slog.Info("email disabled, would send contact notification",
		"from_name", msg.Name, "subject", msg.Subject)
	return nil
}

// SMTPMailer sends mail via smtp.SendMail with PLAIN auth.
type SMTPMailer struct {
	cfg Config

	// send is swappable in tests; production uses smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ Mailer = (*SMTPMailer)(nil)

// SendContactNotification builds and sends the notification email.
// net/smtp has no context support, so ctx only gates the call upfront.
func (m *SMTPMailer) SendContactNotification(ctx context.Context, msg *model.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := msg.Subject
	if subject == "" {
		subject = "No subject"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.cfg.To)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.Email)
	fmt.Fprintf(&b, "Subject: Portfolio Contact: %s - From %s\r\n", subject, msg.Name)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "From: %s (%s)\r\n", msg.Name, msg.Email)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	if msg.IPAddress != "" {
		fmt.Fprintf(&b, "IP: %s\r\n", msg.IPAddress)
	}
	b.WriteString("\r\n")
	b.WriteString(msg.Message)
	b.WriteString("\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	return m.send(addr, auth, m.cfg.From, []string{m.cfg.To}, []byte(b.String()))
}
