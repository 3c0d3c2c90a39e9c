package notify

import (
	"internhub_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// Sender delivers notification mail. Delivery is always best effort: the
// caller fires it from a goroutine and only logs failures.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends through the configured SMTP relay.
type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (e *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", e.cfg.Email.FromEmail, e.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.SMTPUser,
		e.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// NoopSender is used when email is disabled in config and in tests.
type NoopSender struct{}

func (NoopSender) Send(to, subject, body string) error { return nil }
