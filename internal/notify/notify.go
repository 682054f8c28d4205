// Package notify delivers best-effort email notifications. Callers treat the
// sink as fire-and-forget: delivery errors are logged by the caller and never
// fail the surrounding marketplace operation.
package notify

import (
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Sink sends a message to a recipient address.
type Sink interface {
	Send(to, subject, body string) error
}

// SMTPConfig holds the mail transport settings.
type SMTPConfig struct {
	Host   string
	Port   int
	User   string
	Pass   string
	Sender string
}

// SMTPSink delivers mail over SMTP.
type SMTPSink struct {
	dialer *gomail.Dialer
	sender string
}

// NewSMTPSink creates a sink that delivers over SMTP.
func NewSMTPSink(cfg SMTPConfig) *SMTPSink {
	return &SMTPSink{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		sender: cfg.Sender,
	}
}

// Send delivers a single plain-text message.
func (s *SMTPSink) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}

// LogSink writes notifications to the log instead of delivering them. Used
// when no SMTP host is configured.
type LogSink struct{}

// Send logs the would-be message.
func (LogSink) Send(to, subject, body string) error {
	zap.L().Info("notification (mail transport not configured)",
		zap.String("to", to),
		zap.String("subject", subject))
	return nil
}
