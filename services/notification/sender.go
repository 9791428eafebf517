package notification

import (
	"context"
	"fmt"
	"strings"

	"pioneertravel/config"
)

const (
	ProviderSMTP = "smtp"
	ProviderSES  = "ses"
)

// NewSender picks the mail transport named by MAIL_PROVIDER.
func NewSender(ctx context.Context, cfg config.Config) (Sender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.MailProvider)) {
	case "", ProviderSMTP:
		return NewSMTPSender(cfg.SMTPHostName, cfg.SMTPPort, cfg.SMTPMail, cfg.SMTPPass, cfg.Secure), nil
	case ProviderSES:
		return NewSESSender(ctx, cfg.AWSRegion)
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}
}
