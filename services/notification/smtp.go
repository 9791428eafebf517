package notification

import (
	"context"
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers mail through an authenticated SMTP account.
type SMTPSender struct {
	dialer *gomail.Dialer
}

// NewSMTPSender builds a sender for host:port. secure selects implicit TLS
// (port 465); otherwise STARTTLS is used when the server offers it.
func NewSMTPSender(host string, port int, username, password string, secure bool) *SMTPSender {
	dialer := gomail.NewDialer(host, port, username, password)
	dialer.SSL = secure
	dialer.TLSConfig = &tls.Config{
		ServerName: host,
	}
	return &SMTPSender{dialer: dialer}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	// gomail has no context support; give up waiting when ctx ends.
	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("sending email to %s: %w", msg.To, ctx.Err())
	}
}
